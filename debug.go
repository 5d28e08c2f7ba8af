package tactile

import (
	"os"

	"github.com/charmbracelet/log"
)

// newDebugLogger returns the logger used by SetDebugMode when no logger was
// attached explicitly.
func newDebugLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "tactile",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})
}

// SetLogger attaches a logger. Session start/stop, halts and every emitted
// gesture are logged at debug level. A nil logger silences the detector.
func (d *Detector) SetLogger(l *log.Logger) {
	d.logger = l
	d.debug = false
}

// Logger returns the attached logger, or nil.
func (d *Detector) Logger() *log.Logger {
	return d.logger
}

// SetDebugMode enables or disables debug logging to stderr. A logger set
// through SetLogger takes precedence and is left alone.
func (d *Detector) SetDebugMode(enabled bool) {
	switch {
	case enabled && d.logger == nil:
		d.logger = newDebugLogger()
		d.debug = true
	case !enabled && d.debug:
		d.logger = nil
		d.debug = false
	}
}
