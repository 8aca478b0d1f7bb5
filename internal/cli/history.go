package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/aoc2018/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded answers",
		Run:   runHistory,
	}

	cmd.Flags().Int("day", 0, "Filter by day")
	cmd.Flags().IntP("part", "p", 0, "Filter by part")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	day, _ := cmd.Flags().GetInt("day")
	part, _ := cmd.Flags().GetInt("part")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	answers, err := s.List(cmd.Context(), store.ListParams{
		Day:   day,
		Part:  part,
		Limit: limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if cfg.Format == "text" {
		for _, a := range answers {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  Day%02d part%d: %d  (%s)\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"), a.Day, a.Part, a.Value, a.Elapsed())
		}
		return
	}

	b, _ := json.MarshalIndent(answers, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
