// Package cmd provides the root command and CLI setup for sysport.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sabos.dev/pkg/sysport/internal/adapter"
	"sabos.dev/pkg/sysport/internal/controller"
	"sabos.dev/pkg/sysport/internal/domain"
	"sabos.dev/pkg/sysport/internal/domain/patches"
	m "sabos.dev/pkg/sysport/internal/model"
)

// Process exit codes.
const (
	exitOK               = 0
	exitFailure          = 1
	exitCanonicalMissing = 2
)

var fsAdapter adapter.SourceFSAdapter
var descriptorStore adapter.DescriptorStore
var reportStore adapter.ReportStore
var patcher domain.Patcher

// verboseFlag enables debug logging.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	descriptorStore = adapter.NewDescriptorStore()
	reportStore = adapter.NewReportStore(buildVersion())
	patcher = domain.NewPatcher(fsAdapter)
}

const rootLongDescription = `sysport keeps the SABOS target integrated into the Rust standard library
source tree and verifies that syscall numbers hard-coded in the platform
layer match the canonical definitions.

  patch   inject SABOS support into a std source tree (idempotent)
  check   verify duplicated syscall numbers against the canonical source`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sysport",
		Short: "SABOS sysroot patcher and syscall number checker",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := exitCode(rootCmd.Execute()); code != exitOK {
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit status: 2 when the
// canonical file is missing, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrCanonicalNotFound):
		return exitCanonicalMissing
	default:
		return exitFailure
	}
}

// commandUI builds the console UI bound to cmd's output streams.
func commandUI(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(os.Stdout) && cmd.OutOrStdout() == os.Stdout)
}

// addTableFlag registers --table on the commands that consume a descriptor
// table. The flag is read per command instead of bound to viper because
// several commands share the patch.table key.
func addTableFlag(cmd *cobra.Command) {
	cmd.Flags().String(tableFlagName, "", "YAML descriptor table to use instead of the built-in SABOS table (config "+patchTableKey+")")
}

// loadDescriptorSpecs returns the table given by --table or patch.table, the
// built-in SABOS table otherwise.
func loadDescriptorSpecs(cmd *cobra.Command) ([]m.DescriptorSpec, error) {
	tablePath := viper.GetString(patchTableKey)
	if flag := cmd.Flags().Lookup(tableFlagName); flag != nil && flag.Changed {
		tablePath = flag.Value.String()
	}

	if tablePath == "" {
		return patches.SABOS(), nil
	}

	specs, err := descriptorStore.LoadDescriptors(cmd.Context(), m.Path(tablePath))
	if err != nil {
		return nil, fmt.Errorf("load descriptor table %s: %w", tablePath, err)
	}

	return specs, nil
}
