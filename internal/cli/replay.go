package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tactile"
)

func newReplayCmd() *cobra.Command {
	var optionsPath string
	var disable []string

	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Play a gesture script and print the emitted gestures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			script, err := tactile.ParseScript(data)
			if err != nil {
				return err
			}

			opts := tactile.Options{}
			if optionsPath != "" {
				if opts, err = tactile.LoadOptionsFile(optionsPath); err != nil {
					return err
				}
				logger.Debug("loaded options", "path", optionsPath, "keys", len(opts))
			}
			for _, name := range disable {
				opts[name] = false
			}

			return replay(cmd.OutOrStdout(), logger, script, opts)
		},
	}
	cmd.Flags().StringVarP(&optionsPath, "options", "o", "", "option file (.toml, .yaml)")
	cmd.Flags().StringSliceVar(&disable, "disable", nil, "recognizers to disable (e.g. hold,swipe)")
	return cmd
}

// replay runs script through a fresh detector and writes one line per gesture.
func replay(w io.Writer, logger *log.Logger, script *tactile.Script, opts tactile.Options) error {
	d := tactile.NewDetector(opts)
	if logger.GetLevel() <= log.DebugLevel {
		d.SetLogger(logger)
	}
	rec := tactile.NewRecorder(d)

	start := time.Unix(0, 0)
	end := script.Play(d, start)
	logger.Info("replayed script", "steps", script.Len(), "gestures", len(rec.Gestures), "duration", end.Sub(start))

	for _, g := range rec.Gestures {
		ev := g.Event
		if _, err := fmt.Fprintf(w, "+%dms %s dir=%s dist=%.1f touches=%d\n",
			ev.Time.Sub(start).Milliseconds(), g.Gesture, directionLabel(ev.Direction), ev.Distance, len(ev.Touches)); err != nil {
			return err
		}
	}
	return nil
}

func directionLabel(d tactile.Direction) string {
	if d == tactile.DirectionNone {
		return "-"
	}
	return d.String()
}
