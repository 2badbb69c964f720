package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/store"
	"github.com/mkale/tutorloop/internal/track"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Record lesson progress",
}

var lessonStartCmd = &cobra.Command{
	Use:   "start <lesson-id>",
	Short: "Mark a lesson as in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(svc *track.Service) error {
			if err := svc.StartLesson(cmd.Context(), resolveUserID(cmd), args[0]); err != nil {
				return err
			}
			fmt.Printf("Lesson %s started.\n", args[0])
			return nil
		})
	},
}

var lessonDoneCmd = &cobra.Command{
	Use:   "done <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(svc *track.Service) error {
			if err := svc.CompleteLesson(cmd.Context(), resolveUserID(cmd), args[0]); err != nil {
				return err
			}
			fmt.Printf("Lesson %s completed.\n", args[0])
			return nil
		})
	},
}

var lessonAttemptCmd = &cobra.Command{
	Use:   "attempt <concept>",
	Short: "Record a practice attempt on a concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		return withTracker(cmd, func(svc *track.Service) error {
			if err := svc.RecordAttempt(cmd.Context(), resolveUserID(cmd), args[0], correct); err != nil {
				return err
			}
			fmt.Printf("Attempt on %s recorded.\n", args[0])
			return nil
		})
	},
}

func withTracker(cmd *cobra.Command, fn func(*track.Service) error) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := newTracker(st)
	return fn(svc)
}

func newTracker(st *store.Store) *track.Service {
	return track.NewService(track.DefaultConfig(),
		st.ProfileRepo(), st.ProgressRepo(), st.MasteryRepo(), zap.NewNop())
}

func init() {
	lessonAttemptCmd.Flags().Bool("correct", false, "The attempt was correct")

	lessonCmd.AddCommand(lessonStartCmd)
	lessonCmd.AddCommand(lessonDoneCmd)
	lessonCmd.AddCommand(lessonAttemptCmd)

	rootCmd.AddCommand(lessonCmd)
}
