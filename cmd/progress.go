package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/learner"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show curriculum progress without starting a chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := seedCurriculum(cmd.Context(), st); err != nil {
			return fmt.Errorf("seed curriculum: %w", err)
		}

		assembler := learner.NewAssembler(learner.DefaultConfig(), learner.RepoSet{
			Profiles:   st.ProfileRepo(),
			Progress:   st.ProgressRepo(),
			Mastery:    st.MasteryRepo(),
			Chats:      st.ChatRepo(),
			Curriculum: st.CurriculumRepo(),
		}, zap.NewNop())

		lc := assembler.Assemble(cmd.Context(), resolveUserID(cmd), "")

		fmt.Printf("%s (%s)\n", lc.Name, lc.SkillLevel)
		fmt.Printf("Streak: %d days   XP: %d   Lessons completed: %d\n\n",
			lc.StreakDays, lc.TotalXP, lc.LessonsCompleted)

		p := lc.Progression
		if p == nil {
			fmt.Println("No curriculum available.")
			return nil
		}

		fmt.Printf("Path: %s (%s) — %d%% complete\n", p.PathTitle, p.Difficulty, p.OverallPercent)
		fmt.Printf("Modules finished: %d of %d\n", p.ModulesCompleted, p.ModulesTotal)
		if p.CurrentLesson != nil {
			fmt.Printf("Current lesson: %s [%s]\n", p.CurrentLesson.Title, p.CurrentModule)
		} else {
			fmt.Println("Path complete!")
		}
		if len(p.NextLessons) > 0 {
			fmt.Printf("Up next: %s\n", strings.Join(p.NextLessons, ", "))
		}
		if len(lc.MasteredConcepts) > 0 {
			fmt.Printf("Mastered: %s\n", strings.Join(lc.MasteredConcepts, ", "))
		}
		if len(lc.StrugglingConcepts) > 0 {
			fmt.Printf("Needs work: %s\n", strings.Join(lc.StrugglingConcepts, ", "))
		}
		return nil
	},
}
