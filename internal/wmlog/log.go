// Package wmlog wires a single package-level logrus logger, in the
// style alexzeitgeist/cortile uses for its store and desktop packages:
// one shared *logrus.Logger, fields attached per call site rather than
// per-package child loggers.
package wmlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Configure rebinds its level and
// formatter from parsed CLI flags; until then it logs at info level in
// text form, same default cortile ships with.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Configure applies a level name (trace/debug/info/warn/error/fatal/panic)
// and switches between the text and JSON formatters.
func Configure(level string, json bool) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(parsed)
	if json {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
