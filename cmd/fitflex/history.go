package fitflex

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DnvLikhitha/FitFlex/internal/service"
)

var (
	historyType string
	historyFrom string
	historyTo   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the workout history with per-type totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			out := cmd.OutOrStdout()
			acts, offline, err := d.tracker().Activities(cmd.Context(), d.session.UserID, service.ActivityFilter{
				Type: historyType,
				From: historyFrom,
				To:   historyTo,
			})
			if err != nil {
				return err
			}
			offlineReadNotice(out, offline)
			if len(acts) == 0 {
				fmt.Fprintln(out, "No activities in this range")
				return nil
			}

			fmt.Fprintln(out, "DATE\tTYPE\tMIN\tKCAL\tSTEPS\tNOTES")
			for _, a := range acts {
				fmt.Fprintf(out, "%s\t%s\t%d\t%d\t%d\t%s\n", a.Date, a.Type, a.Duration, a.Calories, a.Steps, a.Notes)
			}

			totals := service.SumTotals(acts)
			fmt.Fprintf(out, "\nTotal: %d workouts, %d min, %d kcal, %d steps\n",
				totals.Workouts, totals.Duration, totals.Calories, totals.Steps)

			fmt.Fprintln(out, "\nBy type")
			for _, tc := range service.TypeDistribution(acts) {
				fmt.Fprintf(out, "  %-16s %d workouts, %d min\n", tc.Type, tc.Count, tc.Duration)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyType, "type", "", "Filter by activity type")
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "Earliest date YYYY-MM-DD")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "Latest date YYYY-MM-DD")
}
