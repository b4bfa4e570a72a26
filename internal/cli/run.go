package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linkcut/internal/script"
	"github.com/katalvlaran/linkcut/lct"
)

func newRunCmd() *cobra.Command {
	var v *viper.Viper
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a link-cut script from a file or stdin",
		Long: "run parses a script (\"n <size>\" followed by link/cut/makeroot/connected/edge/root lines)\n" +
			"and prints one line per query.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			return runScript(in, cmd.OutOrStdout(), v.GetBool("unchecked"))
		},
	}
	cmd.Flags().Bool("unchecked", false, "skip link/cut precondition checks (invalid scripts corrupt the forest)")
	v = bindFlags(cmd)

	return cmd
}

func runScript(in io.Reader, out io.Writer, unchecked bool) error {
	n, ops, err := script.Parse(in)
	if err != nil {
		return err
	}

	var opts []lct.Option
	if unchecked {
		opts = append(opts, lct.WithUnchecked())
	}
	f, err := lct.New(n, opts...)
	if err != nil {
		return err
	}
	if err := script.Run(f, ops, out); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
