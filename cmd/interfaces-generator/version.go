package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version은 빌드 시 -ldflags "-X main.version=..."로 설정됩니다
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	// 설정 로드 없이 실행
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "interfaces-generator %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
