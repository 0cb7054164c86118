package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sabos.dev/pkg/sysport/internal/adapter"
	"sabos.dev/pkg/sysport/internal/controller"
	"sabos.dev/pkg/sysport/internal/domain"
	m "sabos.dev/pkg/sysport/internal/model"
)

const checkLongDescription = `Verify that syscall numbers hard-coded in the std platform layer match the
canonical definitions in libs/sabos-syscall/src/lib.rs.

Two shapes are checked in every file of the scan directory:
  const SYS_NAME: u64 = N;        local redeclaration
  in("rax") Nu64, // SYS_NAME     inline literal with naming comment

Exit status: 0 consistent, 1 mismatches found, 2 canonical file missing.
A missing scan directory counts as consistent.`

var checkFormatFlag string
var checkReportFlag string
var checkReportFormatFlag string
var checkRootFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify syscall numbers against the canonical source",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			args, err := resolveCheckArgs(cmd.Context())
			if err != nil {
				return err
			}

			checker, err := domain.NewChecker(fsAdapter, domain.PatternConfig{
				Prefix:  viper.GetString(prefixKey),
				IntType: viper.GetString(intTypeKey),
			})
			if err != nil {
				return err
			}

			workflow := domain.NewCheckWorkflow(fsAdapter, reportStore, commandUI(cmd), checker)
			_, err = workflow.Check(cmd.Context(), args)

			return err
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&checkRootFlag, rootFlagName, viper.GetString(checkRootKey), "SABOS project root (default: nearest ancestor containing "+projectMarker+")")
	bindFlagToConfig(cmd.Flags().Lookup(rootFlagName), checkRootKey)

	cmd.Flags().StringVarP(&checkFormatFlag, formatFlagName, "f", viper.GetString(checkFormatKey), "console output format: text or table")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), checkFormatKey)

	cmd.Flags().StringVarP(&checkReportFlag, reportFlagName, "o", viper.GetString(reportKey), "also write the report to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportKey)

	cmd.Flags().StringVar(&checkReportFormatFlag, reportFormatFlagName, viper.GetString(reportFormatKey), "report file format: yaml or sarif")
	bindFlagToConfig(cmd.Flags().Lookup(reportFormatFlagName), reportFormatKey)
}

// resolveCheckArgs turns configuration into absolute paths below the project root.
func resolveCheckArgs(ctx context.Context) (domain.CheckArgs, error) {
	format := controller.OutputFormat(viper.GetString(checkFormatKey))
	if format != controller.FormatText && format != controller.FormatTable {
		return domain.CheckArgs{}, fmt.Errorf("unknown format %q (supported: text, table)", format)
	}

	reportFormat := adapter.ReportFormat(viper.GetString(reportFormatKey))
	if !slices.Contains(adapter.SupportedReportFormats(), reportFormat) {
		return domain.CheckArgs{}, fmt.Errorf("unknown report format %q (supported: %v)", reportFormat, adapter.SupportedReportFormats())
	}

	root, err := resolveProjectRoot(ctx)
	if err != nil {
		return domain.CheckArgs{}, err
	}

	return domain.CheckArgs{
		Root:         root,
		Canonical:    underRoot(root, viper.GetString(canonicalKey)),
		Dir:          underRoot(root, viper.GetString(scanDirKey)),
		Extension:    viper.GetString(extensionKey),
		Format:       format,
		Report:       m.Path(viper.GetString(reportKey)),
		ReportFormat: reportFormat,
	}, nil
}

// resolveProjectRoot uses the configured root, or searches upwards from the
// working directory for the SABOS checkout, falling back to the working
// directory itself.
func resolveProjectRoot(ctx context.Context) (m.Path, error) {
	if configured := viper.GetString(checkRootKey); configured != "" {
		abs, err := filepath.Abs(configured)
		if err != nil {
			return "", err
		}

		return m.Path(abs), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	root, err := fsAdapter.FindProjectRoot(ctx, m.Path(cwd), projectMarker)
	if err != nil {
		return m.Path(cwd), nil
	}

	return root, nil
}

func underRoot(root m.Path, path string) m.Path {
	if filepath.IsAbs(path) {
		return m.Path(path)
	}

	return m.Path(filepath.Join(string(root), path))
}
