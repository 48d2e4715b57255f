package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitranox/lib-list/pkg/conf"
)

var (
	helloCmd = &cobra.Command{
		Use:   "hello",
		Short: "Print the canonical greeting.",
		RunE:  runHello,
	}
)

func init() {
	rootCmd.AddCommand(helloCmd)
}

func runHello(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), conf.CanonicalGreeting)
	return err
}
