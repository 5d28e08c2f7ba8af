package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/tactile"
)

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default recognizer options as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := tactile.EncodeOptionsTOML(tactile.DefaultOptions())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
