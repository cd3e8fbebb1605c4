package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HM-aes/smbshield/internal/config"
	"github.com/HM-aes/smbshield/internal/gaps"
	"github.com/HM-aes/smbshield/internal/generator"
	"github.com/HM-aes/smbshield/internal/llm"
	"github.com/HM-aes/smbshield/internal/logger"
	"github.com/HM-aes/smbshield/internal/platform"
	"github.com/HM-aes/smbshield/internal/progress"
	"github.com/HM-aes/smbshield/internal/quiz"
	"github.com/HM-aes/smbshield/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "smbshield",
	Short: "Security training engine for small businesses",
	Long:  "SMBShield gates OWASP Top 10 learning content by subscription tier, tracks progress and knowledge gaps, and issues adaptive quizzes.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SMBSHIELD_DB)")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(billingCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path: --db flag first, then the
// configured path, then the default data directory.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// buildEngine opens the store and wires the full engine. The caller must
// Close the returned store.
func buildEngine(cmd *cobra.Command) (*platform.Engine, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	progSvc := progress.NewService(st.Progress(), st.Accounts(), log)
	selector := quiz.NewSelector(quiz.SelectorConfig{
		Size:      cfg.Quiz.Size,
		GapShare:  cfg.Quiz.GapShare,
		GapTopics: cfg.Quiz.GapTopics,
	}, time.Now().UnixNano())
	quizSvc := quiz.NewService(st.Quizzes(), st.Gaps(), selector, gaps.Config{
		WrongIncrement:   cfg.Gaps.WrongIncrement,
		CorrectDecrement: cfg.Gaps.CorrectDecrement,
		MaxScore:         cfg.Gaps.MaxScore,
	}, cfg.Quiz.PassThreshold, log)

	// Content drafting is optional; the engine runs without a provider.
	var gen generator.Generator
	provider, err := llm.NewProviderFromEnv(cmd.Context(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "model provider not configured:", err)
		fmt.Fprintln(os.Stderr, "content drafting will be unavailable")
	} else {
		gen = generator.New(provider, generator.DefaultGeneratorConfig())
		log.Info("model provider ready", zap.String("model", provider.ModelID()))
	}

	return platform.NewEngine(st.Accounts(), progSvc, quizSvc, gen, cfg, log), st, nil
}
