package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/logging"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui"
	"github.com/fragmede/modview/internal/watcher"
)

// Global flags
var configPath string

var rootCmd = &cobra.Command{
	Use:   "modview",
	Short: "Browse notifications and moderate comments in the terminal",
	Long: `modview is a terminal inbox for site notifications. Comment notes are
shown the way the moderation queue shows them: pending comments are tinted,
replies are indented, and a status change fades the comment back in.

Run without a subcommand to start the interactive viewer.`,
	Version:      "0.1.0",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default <config dir>/modview/config.yaml)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every command needs: config, a logger and the open store.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	db     *store.DB
}

func openEnv(cfg config.Config) (*env, error) {
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) Close() {
	e.db.Close()
	e.logger.Sync()
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return openEnv(cfg)
}

func runTUI() error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	origin := uuid.NewString()
	e.logger.Info("starting", zap.String("origin", origin), zap.String("db", e.cfg.DBPath))

	w := watcher.New(e.cfg, e.db, origin, e.logger.Named("watcher"))
	app := ui.NewApp(e.cfg, e.db, w, origin, e.logger.Named("ui"))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	app.SetProgram(p)
	defer w.Stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
