package main

import (
	"fmt"

	"interfaces-generator/internal/domain/services"

	"github.com/spf13/cobra"
)

var validateIPCmd = &cobra.Command{
	Use:   "validate-ip <value>...",
	Short: "Check dotted IPv4 addresses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, value := range args {
			result := services.ValidateIPv4(value)
			if result.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", value)
				continue
			}
			invalid++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", value, result.Message)
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d values are invalid", invalid, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateIPCmd)
}
