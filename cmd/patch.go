package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sabos.dev/pkg/sysport/internal/domain"
	m "sabos.dev/pkg/sysport/internal/model"
)

const patchLongDescription = `Apply the SABOS descriptor table to a Rust std source tree.

STD_SRC_PATH is the library/std/src directory of the sysroot, e.g.
  $(rustc --print sysroot)/lib/rustlib/src/rust/library/std/src

Every descriptor is skipped when its completion marker is already present,
so the command can be re-run any number of times. A descriptor whose anchor
line is missing is reported as WARN; use --strict to make that fatal.`

var patchDryRunFlag bool
var patchStrictFlag bool

// patchCmd represents the patch command.
var patchCmd = newPatchCmd()

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch STD_SRC_PATH",
		Short: "Inject SABOS support into a std source tree",
		Long:  patchLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			specs, err := loadDescriptorSpecs(cmd)
			if err != nil {
				return err
			}

			descriptors, err := domain.CompileDescriptors(specs)
			if err != nil {
				return err
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			workflow := domain.NewPatchWorkflow(fsAdapter, commandUI(cmd), patcher)

			_, err = workflow.Patch(cmd.Context(), domain.PatchArgs{
				Root:        m.Path(root),
				Descriptors: descriptors,
				DryRun:      patchDryRunFlag,
				Strict:      viper.GetBool(patchStrictKey),
			})

			return err
		},
	}

	configurePatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(patchCmd)
}

func configurePatchFlags(cmd *cobra.Command) {
	addTableFlag(cmd)
	cmd.Flags().BoolVar(&patchDryRunFlag, dryRunFlagName, false, "print the changes as a unified diff without writing")
	cmd.Flags().BoolVar(&patchStrictFlag, strictFlagName, viper.GetBool(patchStrictKey), "fail when a descriptor finds no insertion point")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), patchStrictKey)
}
