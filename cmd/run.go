package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/app"
	"github.com/mkale/tutorloop/internal/background"
	chatsvc "github.com/mkale/tutorloop/internal/chat"
	"github.com/mkale/tutorloop/internal/curriculum"
	"github.com/mkale/tutorloop/internal/learner"
	"github.com/mkale/tutorloop/internal/llm"
	"github.com/mkale/tutorloop/internal/signals"
	"github.com/mkale/tutorloop/internal/store"
	"github.com/mkale/tutorloop/internal/summarize"
)

// defaultUserID is the learner identity for a single-user install.
const defaultUserID = "local"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a tutoring chat (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := seedCurriculum(ctx, st); err != nil {
		return fmt.Errorf("seed curriculum: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set an API key (e.g. ANTHROPIC_API_KEY) and try again.")
		return err
	}

	runner := background.NewRunner(4, logger)
	defer runner.Close()

	svc, assembler := buildServices(st, provider, runner, logger)

	return app.Run(app.Deps{
		Chat:      svc,
		Assembler: assembler,
		UserID:    resolveUserID(cmd),
	})
}

// buildServices wires the chat pipeline from the store and provider.
func buildServices(st *store.Store, provider llm.Provider, runner *background.Runner, logger *zap.Logger) (*chatsvc.Service, *learner.Assembler) {
	assembler := learner.NewAssembler(learner.DefaultConfig(), learner.RepoSet{
		Profiles:   st.ProfileRepo(),
		Progress:   st.ProgressRepo(),
		Mastery:    st.MasteryRepo(),
		Chats:      st.ChatRepo(),
		Curriculum: st.CurriculumRepo(),
	}, logger)

	aggregator := signals.NewAggregator(signals.DefaultConfig(),
		st.ProfileRepo(), st.MasteryRepo(), st.ChatRepo(), logger)

	summarizer := summarize.NewService(summarize.DefaultConfig(), provider, st.ChatRepo(), logger)

	svc := chatsvc.NewService(chatsvc.DefaultConfig(), chatsvc.Deps{
		Provider:   provider,
		Chats:      st.ChatRepo(),
		Profiles:   st.ProfileRepo(),
		Assembler:  assembler,
		Aggregator: aggregator,
		Summarizer: summarizer,
		Runner:     runner,
		Logger:     logger,
	})

	return svc, assembler
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// seedCurriculum installs the built-in paths on first run.
func seedCurriculum(ctx context.Context, st *store.Store) error {
	repo := st.CurriculumRepo()
	published, err := repo.Published(ctx)
	if err != nil {
		return err
	}
	if len(published) > 0 {
		return nil
	}
	for _, p := range curriculum.DefaultPaths() {
		if err := repo.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("TUTORLOOP_USER"); u != "" {
		return u
	}
	return defaultUserID
}

// newLogger builds the process logger. The TUI owns the terminal, so
// logs go to the file named by TUTORLOOP_LOG; without it, logging is off.
func newLogger() (*zap.Logger, error) {
	path := os.Getenv("TUTORLOOP_LOG")
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
