package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitranox/lib-list/pkg/errors"
)

// Initialize logger (pre-config)
func initLogging() {
	log = logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&prefixed.TextFormatter{ForceFormatting: true})
}

// Initialize logger (post-config)
func configureLogging() {
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		errors.Fatal(log, errors.Wrapv(err, "invalid value for log-level", cfg.LogLevel))
	}
	log.SetLevel(logLevel)
}

func validLogLevels() []string {
	var logLevels []string
	for _, l := range logrus.AllLevels {
		logLevels = append(logLevels, l.String())
	}
	return logLevels
}
