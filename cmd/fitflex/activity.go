package fitflex

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DnvLikhitha/FitFlex/internal/service"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Log and manage workout activities",
}

var (
	logType      string
	logDate      string
	logDuration  int
	logCalories  int
	logSteps     int
	logIntensity string
	logNotes     string
)

var activityLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an activity (merges into the same day's entry of the same type)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			res, err := d.tracker().LogActivity(cmd.Context(), d.session.UserID, service.LogActivityInput{
				Type:      logType,
				Date:      logDate,
				Duration:  logDuration,
				Calories:  logCalories,
				Steps:     logSteps,
				Intensity: logIntensity,
				Notes:     logNotes,
			})
			if err != nil {
				return err
			}
			a := res.Activity
			verb := "Logged"
			if res.Merged {
				verb = "Merged into today's entry:"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s: %d min, %d kcal, %s intensity (id %s)\n",
				verb, a.Type, a.Date, a.Duration, a.Calories, a.Intensity, a.ID)
			offlineNotice(cmd.OutOrStdout(), res.Offline)
			return nil
		})
	},
}

var (
	listType string
	listFrom string
	listTo   string
)

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			acts, offline, err := d.tracker().Activities(cmd.Context(), d.session.UserID, service.ActivityFilter{
				Type: listType,
				From: listFrom,
				To:   listTo,
			})
			if err != nil {
				return err
			}
			offlineReadNotice(cmd.OutOrStdout(), offline)
			if len(acts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activities logged")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tTYPE\tMIN\tKCAL\tSTEPS\tINTENSITY\tID")
			for _, a := range acts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
					a.Date, a.Type, a.Duration, a.Calories, a.Steps, a.Intensity, a.ID)
			}
			return nil
		})
	},
}

var (
	editID        string
	editType      string
	editDate      string
	editDuration  int
	editCalories  int
	editSteps     int
	editIntensity string
	editNotes     string
)

var activityEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an activity in place (no merging)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			tr := d.tracker()
			a, _, err := tr.GetActivity(cmd.Context(), d.session.UserID, editID)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("type") {
				a.Type = editType
			}
			if flags.Changed("date") {
				a.Date = editDate
			}
			if flags.Changed("duration") {
				a.Duration = editDuration
			}
			if flags.Changed("calories") {
				a.Calories = editCalories
			}
			if flags.Changed("steps") {
				a.Steps = editSteps
			}
			if flags.Changed("intensity") {
				a.Intensity = editIntensity
			}
			if flags.Changed("notes") {
				a.Notes = editNotes
			}
			saved, offline, err := tr.UpdateActivity(cmd.Context(), a)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s on %s: %d min, %d kcal (id %s)\n",
				saved.Type, saved.Date, saved.Duration, saved.Calories, saved.ID)
			offlineNotice(cmd.OutOrStdout(), offline)
			return nil
		})
	},
}

var activityDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			offline, err := d.tracker().DeleteActivity(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity %s\n", args[0])
			offlineNotice(cmd.OutOrStdout(), offline)
			return nil
		})
	},
}

var activityTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List activity types and their calorie rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "TYPE\tKCAL/MIN")
		for _, name := range service.ActivityTypes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", name, service.Preset(name).CaloriesPerMin)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityLogCmd, activityListCmd, activityEditCmd, activityDeleteCmd, activityTypesCmd)

	activityLogCmd.Flags().StringVar(&logType, "type", "", "Activity type (walking, running, cycling, ...)")
	activityLogCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	activityLogCmd.Flags().IntVar(&logDuration, "duration", 0, "Duration in minutes")
	activityLogCmd.Flags().IntVar(&logCalories, "calories", 0, "Calories burned (default estimated from duration)")
	activityLogCmd.Flags().IntVar(&logSteps, "steps", 0, "Step count")
	activityLogCmd.Flags().StringVar(&logIntensity, "intensity", "", "Intensity: low, medium or high (default medium)")
	activityLogCmd.Flags().StringVar(&logNotes, "notes", "", "Free-form notes")
	_ = activityLogCmd.MarkFlagRequired("type")
	_ = activityLogCmd.MarkFlagRequired("duration")

	activityListCmd.Flags().StringVar(&listType, "type", "", "Filter by activity type")
	activityListCmd.Flags().StringVar(&listFrom, "from", "", "Earliest date YYYY-MM-DD")
	activityListCmd.Flags().StringVar(&listTo, "to", "", "Latest date YYYY-MM-DD")

	activityEditCmd.Flags().StringVar(&editID, "id", "", "Activity id")
	activityEditCmd.Flags().StringVar(&editType, "type", "", "Activity type")
	activityEditCmd.Flags().StringVar(&editDate, "date", "", "Date YYYY-MM-DD")
	activityEditCmd.Flags().IntVar(&editDuration, "duration", 0, "Duration in minutes")
	activityEditCmd.Flags().IntVar(&editCalories, "calories", 0, "Calories burned (0 re-estimates)")
	activityEditCmd.Flags().IntVar(&editSteps, "steps", 0, "Step count")
	activityEditCmd.Flags().StringVar(&editIntensity, "intensity", "", "Intensity: low, medium or high")
	activityEditCmd.Flags().StringVar(&editNotes, "notes", "", "Free-form notes")
	_ = activityEditCmd.MarkFlagRequired("id")
}
