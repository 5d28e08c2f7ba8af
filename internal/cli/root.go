package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the tactile CLI with args, writing results to out and logs to
// errOut.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) error {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "tactile",
		Short:        "tactile replays input scripts through the gesture detector",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newReplayCmd())
	root.AddCommand(newDefaultsCmd())
	return root
}
