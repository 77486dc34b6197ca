package main

import (
	"fmt"

	"interfaces-generator/internal/application/usecases"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var documentFlag string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an interface document (YAML) to interfaces syntax on stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := appContainer.GetRenderConfigUseCase().Execute(cmd.Context(), usecases.RenderConfigInput{
			DocumentPath: documentFlag,
		})
		if err != nil {
			return err
		}

		if len(output.Warnings) > 0 {
			appContainer.GetLogger().WithFields(logrus.Fields{
				"warnings": len(output.Warnings),
			}).Warn("문서에 유효하지 않은 주소가 있습니다. 값은 그대로 출력됩니다")
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), output.Config)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVarP(&documentFlag, "file", "f", "", "Path to interface document (YAML)")
	if err := renderCmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(renderCmd)
}
