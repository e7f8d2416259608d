// Package log configures the process-wide logrus logger.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger. level is a logrus level
// name (unrecognized values fall back to info). When file is non-empty
// logs are appended there; otherwise they go to stderr — stdout carries
// the MCP wire protocol and must stay clean.
func Init(level, file string) error {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		logrus.SetOutput(f)
		return nil
	}
	logrus.SetOutput(os.Stderr)
	return nil
}
