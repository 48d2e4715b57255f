package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitranox/lib-list/pkg/conf"
	"github.com/bitranox/lib-list/pkg/errors"
)

var (
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Print program metadata.",
		RunE:  runInfo,
	}
)

func init() {
	initInfoArgs()
	rootCmd.AddCommand(infoCmd)
}

func initInfoArgs() {
	flags := infoCmd.Flags()

	flags.String(
		"format",
		"text",
		"Output format. Valid values: text, yaml.")
}

func runInfo(cmd *cobra.Command, _ []string) error {
	switch cfg.Format {
	case "", "text":
		conf.Cnf.PrintInfo(cmd.OutOrStdout())
	case "yaml":
		out, err := conf.Cnf.YAML()
		if err != nil {
			return errors.Wrap(err, "unable to render info as yaml")
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	default:
		return errors.Errorv("invalid value for format", cfg.Format)
	}
	return nil
}
