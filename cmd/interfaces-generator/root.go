package main

import (
	"fmt"
	"os"

	"interfaces-generator/internal/infrastructure/config"
	"interfaces-generator/internal/infrastructure/container"
	"interfaces-generator/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

var (
	targetFlag string

	appContainer *container.Container
)

var rootCmd = &cobra.Command{
	Use:           "interfaces-generator",
	Short:         "Generate Debian/Ubuntu /etc/network/interfaces configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewEnvironmentConfigLoader().Load()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if targetFlag != "" {
			cfg.Generator.TargetPath = targetFlag
		}

		logger := logging.NewLogger(logging.LogConfig{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
		})
		appContainer = container.NewContainer(cfg, logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&targetFlag, "target", "", "Target path printed in the generated header (default $TARGET_PATH or /etc/network/interfaces)")
}

// Execute는 루트 커맨드를 실행하고 실패하면 종료 코드 1로 끝냅니다
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
