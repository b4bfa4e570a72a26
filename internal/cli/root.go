// Package cli wires the linkcut command tree: cobra for commands and flags,
// viper for LINKCUT_* environment overrides.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "LINKCUT"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree, so it can be constructed more than
// once (tests).
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "linkcut",
		Short:         "Dynamic forest (link-cut tree) toolbox",
		Long:          "linkcut runs link/cut/connectivity scripts against a link-cut forest and stress-tests it against a rollback union-find.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newStressCmd())

	return root
}

// bindFlags returns a viper instance holding the flags of cmd, each of which
// can be overridden by LINKCUT_<FLAG> in the environment. Every command gets
// its own instance because subcommands reuse flag names.
func bindFlags(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})

	return v
}
