package cmd

import (
	"os"

	"go-game-library/constants"

	"github.com/spf13/cobra"
)

// GUIFunc runs the desktop window. It is called when no subcommand is given.
type GUIFunc func(env *Env) error

type rootFlags struct {
	configDir string
	verbose   bool
}

func (f *rootFlags) env() (*Env, error) {
	return Bootstrap(Options{DataDir: f.configDir, Verbose: f.verbose})
}

// NewRootCmd builds the command tree.
func NewRootCmd(gui GUIFunc) *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Launch and organise your installed games",
		Long:          `Without a subcommand the desktop window is opened. Subcommands work on the same library file.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := Bootstrap(Options{DataDir: f.configDir, LogFile: true, Verbose: f.verbose})
			if err != nil {
				return err
			}
			defer env.Logger.Sync()
			return gui(env)
		},
	}
	root.PersistentFlags().StringVar(&f.configDir, "config-dir", "", "directory holding the library file and config.yaml")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(f),
		newAddCmd(f),
		newLaunchCmd(f),
		newRmCmd(f),
		newWishlistCmd(f),
		newCategoryCmd(f),
	)
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute(gui GUIFunc) {
	if err := NewRootCmd(gui).Execute(); err != nil {
		os.Exit(1)
	}
}
