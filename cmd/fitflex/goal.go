package fitflex

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DnvLikhitha/FitFlex/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage fitness goals and track progress",
}

var (
	goalTitle    string
	goalType     string
	goalTarget   float64
	goalUnit     string
	goalDeadline string
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			g, offline, err := d.goals().Create(cmd.Context(), d.session.UserID, service.GoalInput{
				Title:    goalTitle,
				Type:     goalType,
				Target:   goalTarget,
				Unit:     goalUnit,
				Deadline: goalDeadline,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %q: 0/%.1f %s (id %s)\n", g.Title, g.Target, g.Unit, g.ID)
			offlineNotice(cmd.OutOrStdout(), offline)
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			goals, offline, err := d.goals().List(cmd.Context(), d.session.UserID)
			if err != nil {
				return err
			}
			offlineReadNotice(cmd.OutOrStdout(), offline)
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "TITLE\tPROGRESS\tDEADLINE\tSTATUS\tID")
			for _, g := range goals {
				status := "active"
				if g.Completed {
					status = "completed"
				}
				pct := 0.0
				if g.Target > 0 {
					pct = g.Current / g.Target * 100
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f/%.1f %s (%.0f%%)\t%s\t%s\t%s\n",
					g.Title, g.Current, g.Target, g.Unit, pct, orDash(g.Deadline), status, g.ID)
			}
			return nil
		})
	},
}

var progressBy float64

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id>",
	Short: "Add progress toward a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			g, offline, err := d.goals().AddProgress(cmd.Context(), d.session.UserID, args[0], progressBy)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %q: %.1f/%.1f %s\n", g.Title, g.Current, g.Target, g.Unit)
			if g.Completed {
				fmt.Fprintln(cmd.OutOrStdout(), "Goal completed!")
			}
			offlineNotice(cmd.OutOrStdout(), offline)
			return nil
		})
	},
}

var (
	goalEditID       string
	goalEditTitle    string
	goalEditTarget   float64
	goalEditCurrent  float64
	goalEditUnit     string
	goalEditDeadline string
)

var goalEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			svc := d.goals()
			g, _, err := svc.Get(cmd.Context(), d.session.UserID, goalEditID)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				g.Title = goalEditTitle
			}
			if flags.Changed("target") {
				g.Target = goalEditTarget
			}
			if flags.Changed("current") {
				g.Current = goalEditCurrent
			}
			if flags.Changed("unit") {
				g.Unit = goalEditUnit
			}
			if flags.Changed("deadline") {
				g.Deadline = goalEditDeadline
			}
			saved, offline, err := svc.Update(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %q: %.1f/%.1f %s\n", saved.Title, saved.Current, saved.Target, saved.Unit)
			offlineNotice(cmd.OutOrStdout(), offline)
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			offline, err := d.goals().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", args[0])
			offlineNotice(cmd.OutOrStdout(), offline)
			return nil
		})
	},
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalProgressCmd, goalEditCmd, goalDeleteCmd)

	goalAddCmd.Flags().StringVar(&goalTitle, "title", "", "Goal title")
	goalAddCmd.Flags().StringVar(&goalType, "type", "custom", "Goal type: "+strings.Join(service.GoalTypes(), ", "))
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target value")
	goalAddCmd.Flags().StringVar(&goalUnit, "unit", "", "Unit label (kg, km, steps, ...)")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "Deadline YYYY-MM-DD")
	_ = goalAddCmd.MarkFlagRequired("title")
	_ = goalAddCmd.MarkFlagRequired("target")

	goalProgressCmd.Flags().Float64Var(&progressBy, "by", 1, "Progress increment")

	goalEditCmd.Flags().StringVar(&goalEditID, "id", "", "Goal id")
	goalEditCmd.Flags().StringVar(&goalEditTitle, "title", "", "Goal title")
	goalEditCmd.Flags().Float64Var(&goalEditTarget, "target", 0, "Target value")
	goalEditCmd.Flags().Float64Var(&goalEditCurrent, "current", 0, "Current value")
	goalEditCmd.Flags().StringVar(&goalEditUnit, "unit", "", "Unit label")
	goalEditCmd.Flags().StringVar(&goalEditDeadline, "deadline", "", "Deadline YYYY-MM-DD")
	_ = goalEditCmd.MarkFlagRequired("id")
}
