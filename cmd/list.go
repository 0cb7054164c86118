package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sabos.dev/pkg/sysport/internal/controller"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the patch descriptors",
		Long: `Print the descriptor table used by the patch command. With --format yaml the
output is a valid table that can be edited and passed back via --table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			specs, err := loadDescriptorSpecs(cmd)
			if err != nil {
				return err
			}

			switch controller.OutputFormat(listFormatFlag) {
			case controller.FormatTable:
				commandUI(cmd).DisplayDescriptors(cmd.Context(), specs)
				return nil
			case controller.FormatYAML:
				return descriptorStore.WriteDescriptors(cmd.OutOrStdout(), specs)
			default:
				return fmt.Errorf("unknown format %q (supported: %s, %s)", listFormatFlag, controller.FormatTable, controller.FormatYAML)
			}
		},
	}

	addTableFlag(cmd)
	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", string(controller.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
