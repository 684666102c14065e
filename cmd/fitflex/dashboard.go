package fitflex

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DnvLikhitha/FitFlex/internal/model"
	"github.com/DnvLikhitha/FitFlex/internal/service"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's totals, the weekly chart and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			acts, actsOffline, err := d.tracker().Activities(ctx, d.session.UserID, service.ActivityFilter{})
			if err != nil {
				return err
			}
			goals, goalsOffline, err := d.goals().List(ctx, d.session.UserID)
			if err != nil {
				return err
			}
			offlineReadNotice(out, actsOffline || goalsOffline)

			now := time.Now()
			todayStr := now.Format("2006-01-02")
			todayActs := make([]model.Activity, 0)
			for _, a := range acts {
				if a.Date == todayStr {
					todayActs = append(todayActs, a)
				}
			}
			totals := service.SumTotals(todayActs)
			fmt.Fprintf(out, "Today (%s)\n", todayStr)
			fmt.Fprintf(out, "  Calories: %d kcal\n  Steps: %d\n  Active: %d min\n  Workouts: %d\n\n",
				totals.Calories, totals.Steps, totals.Duration, totals.Workouts)

			fmt.Fprintln(out, "Last 7 days (calories)")
			renderWeek(cmd, service.WeeklyRollup(acts, now))

			if dist := service.TypeDistribution(acts); len(dist) > 0 {
				fmt.Fprintln(out, "\nActivity mix")
				for _, tc := range dist {
					fmt.Fprintf(out, "  %-16s %d workouts, %d min\n", tc.Type, tc.Count, tc.Duration)
				}
			}

			summary := service.SummarizeGoals(goals)
			fmt.Fprintf(out, "\nGoals: %d active, %d completed (%.0f%% done)\n",
				summary.Active, summary.Completed, summary.PercentComplete)
			return nil
		})
	},
}

// renderWeek draws the seven daily buckets as horizontal bars scaled to the
// busiest day.
func renderWeek(cmd *cobra.Command, week []service.DayBucket) {
	max := 0
	for _, b := range week {
		if b.Calories > max {
			max = b.Calories
		}
	}
	for _, b := range week {
		pct := service.PercentOfMax(b.Calories, max)
		bar := strings.Repeat("#", int(pct)/5)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %-20s %d kcal\n", b.Label, b.Date, bar, b.Calories)
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
