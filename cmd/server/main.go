package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fermm870-del/prompt-system-pro/internal/config"
	"github.com/fermm870-del/prompt-system-pro/internal/llm"
	"github.com/fermm870-del/prompt-system-pro/internal/logging"
	"github.com/fermm870-del/prompt-system-pro/internal/server"
	"github.com/fermm870-del/prompt-system-pro/internal/service"
	"github.com/fermm870-del/prompt-system-pro/internal/store"
	"github.com/fermm870-del/prompt-system-pro/internal/telemetry"
	"github.com/fermm870-del/prompt-system-pro/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr       string
		promptsDir string
	)

	cmd := &cobra.Command{
		Use:          "promptd",
		Short:        "Prompt System Pro server",
		Long:         "Serves the prompt library REST API and forwards generation and chat requests to the completion provider.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env is fine; real deployments set the environment directly.
			_ = godotenv.Load()

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ServerAddress = addr
			}
			if promptsDir != "" {
				cfg.PromptsDir = promptsDir
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides PROMPT_SYSTEM_SERVER_ADDRESS)")
	cmd.Flags().StringVar(&promptsDir, "prompts-dir", "", "prompt store root (overrides PROMPT_SYSTEM_PROMPTS_DIR)")
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger := logging.NewLogger("promptd")
	defer logger.Sync()

	st := store.New(cfg.PromptsDir, logger)
	if err := st.Bootstrap(); err != nil {
		logger.Error("failed to bootstrap prompt store",
			zap.String("root", cfg.PromptsDir), zap.Error(err))
		return err
	}

	gateway, err := llm.New(llm.Options{
		BaseURL:     cfg.ProviderBaseURL,
		APIKey:      cfg.ProviderAPIKey,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.GatewayTimeout,
	})
	if err != nil {
		logger.Error("failed to initialize completion gateway", zap.Error(err))
		return err
	}

	metrics := telemetry.NewMetrics()
	svc := service.NewService(st, gateway, metrics, logger, cfg.DefaultModel)
	srv := server.New(cfg, svc, metrics, logger, version.Version)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		return err
	}
	return nil
}
