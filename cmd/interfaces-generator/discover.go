package main

import (
	"interfaces-generator/internal/application/usecases"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Print the host's links as an interface document (YAML)",
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := appContainer.GetDiscoverInterfacesUseCase().Execute(cmd.Context())
		if err != nil {
			return err
		}

		data, err := usecases.MarshalInterfaceDocument(document)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
