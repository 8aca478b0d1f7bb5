package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "days",
		Short: "List solvable days",
		Run:   runDays,
	})
}

func runDays(cmd *cobra.Command, args []string) {
	reg, err := newRegistry()
	if err != nil {
		exitErr("registry", err)
	}
	for _, d := range reg.Days() {
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}
}
