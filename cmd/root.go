package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitranox/lib-list/pkg/conf"
	"github.com/bitranox/lib-list/pkg/errors"
	"github.com/bitranox/lib-list/pkg/exitcfg"
)

const (
	appName        = "lib-list"
	configFileName = "." + appName
	configFileExt  = "yaml"
)

var (
	rootCmd = &cobra.Command{
		Use:               appName,
		Short:             conf.Cnf.Title,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRun:  preRun,
		PersistentPostRun: postRun,
	}
	cfgFile      string
	log          *logrus.Logger
	commandStart time.Time
)

func init() {
	cobra.OnInitialize(initConfig, configureLogging)

	initArgs()
	initLogging()
}

// Execute runs the CLI and returns the process exit code. The traceback
// configuration active before the invocation is restored afterwards,
// whether the command succeeds or fails.
func Execute() (exitCode int) {
	previous := snapshotTracebackState()
	defer restoreTracebackState(previous)

	if err := rootCmd.Execute(); err != nil {
		printException(err)
		return 1
	}
	return 0
}

func preRun(*cobra.Command, []string) {
	applyTracebackPreferences(cfg.Traceback)
	commandStart = time.Now()
}

func postRun(*cobra.Command, []string) {
	elapsed := durafmt.Parse(time.Since(commandStart)).LimitFirstN(2)
	log.WithField("elapsed", elapsed.String()).Debug("command finished")
}

func printException(err error) {
	if !exitcfg.Cnf.Traceback {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	if exitcfg.Cnf.TracebackForceColor {
		log.SetFormatter(&prefixed.TextFormatter{ForceFormatting: true, ForceColors: true})
	}
	errors.WithStacktrace(logrus.NewEntry(log), err).Error(err.Error())
}

func initArgs() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(
		&cfgFile,
		"config",
		"",
		fmt.Sprintf("config file (default is $HOME/%s.%s)", configFileName, configFileExt),
	)

	flags.StringP(
		"log-level",
		"l",
		logrus.InfoLevel.String(),
		fmt.Sprintf("How detailed should the log be? Valid values: %s.", strings.Join(validLogLevels(), ", ")),
	)

	flags.Bool(
		"traceback",
		false,
		"Print the full traceback when a command fails.",
	)
}
