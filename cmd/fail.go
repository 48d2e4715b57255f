package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitranox/lib-list/pkg/errors"
)

var (
	failCmd = &cobra.Command{
		Use:   "fail",
		Short: "Fail on purpose, to exercise error output and exit codes.",
		RunE:  runFail,
	}
)

func init() {
	rootCmd.AddCommand(failCmd)
}

func runFail(*cobra.Command, []string) error {
	return errors.New("I should fail")
}
