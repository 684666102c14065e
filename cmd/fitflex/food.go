package fitflex

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DnvLikhitha/FitFlex/internal/model"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Search foods and track daily nutrition intake",
}

var searchLimit int

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Open Food Facts for a product",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(d *appDeps) error {
			products, err := d.nutrition().Search(cmd.Context(), strings.Join(args, " "), searchLimit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "#\tNAME\tBRAND\tKCAL/100g\tP\tC\tF")
			for i, p := range products {
				fmt.Fprintf(out, "%d\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
					i+1, p.Name, orDash(p.Brand), p.Macros.EnergyKcal, p.Macros.ProteinG, p.Macros.CarbsG, p.Macros.FatG)
			}
			return nil
		})
	},
}

var (
	foodAddServings float64
	foodAddPick     int
	foodAddDate     string
)

var foodAddCmd = &cobra.Command{
	Use:   "add <query>",
	Short: "Add a food to the day's intake (one serving = 100g)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			svc := d.nutrition()
			products, err := svc.Search(cmd.Context(), strings.Join(args, " "), searchLimit)
			if err != nil {
				return err
			}
			if foodAddPick < 1 || foodAddPick > len(products) {
				return fmt.Errorf("--pick %d is out of range (1-%d results)", foodAddPick, len(products))
			}
			p := products[foodAddPick-1]
			day, offline, err := svc.AddIntake(cmd.Context(), d.session.UserID, foodAddDate, p.Macros, foodAddServings)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %.1f serving(s) of %s\n", foodAddServings, p.Name)
			printIntake(cmd, day)
			offlineNotice(out, offline)
			return nil
		})
	},
}

var foodTodayDate string

var foodTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's accumulated intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			day, offline, err := d.nutrition().IntakeDay(cmd.Context(), d.session.UserID, foodTodayDate)
			if err != nil {
				return err
			}
			offlineReadNotice(cmd.OutOrStdout(), offline)
			printIntake(cmd, day)
			return nil
		})
	},
}

var watchInterval int

var foodWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll today's intake until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err := d.nutrition().Watch(ctx, d.session.UserID, time.Duration(watchInterval)*time.Second, func(day model.IntakeDay, offline bool) {
				printIntake(cmd, day)
				offlineReadNotice(cmd.OutOrStdout(), offline)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	},
}

func printIntake(cmd *cobra.Command, day model.IntakeDay) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
		day.Date, day.Calories, day.Protein, day.Carbs, day.Fat)
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd, foodAddCmd, foodTodayCmd, foodWatchCmd)

	foodSearchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Maximum results")
	foodAddCmd.Flags().IntVar(&searchLimit, "limit", 10, "Maximum results")
	foodAddCmd.Flags().Float64Var(&foodAddServings, "servings", 1, "Servings (multiples of 100g)")
	foodAddCmd.Flags().IntVar(&foodAddPick, "pick", 1, "Which search result to add (1-based)")
	foodAddCmd.Flags().StringVar(&foodAddDate, "date", "", "Date YYYY-MM-DD (default today)")
	foodTodayCmd.Flags().StringVar(&foodTodayDate, "date", "", "Date YYYY-MM-DD (default today)")
	foodWatchCmd.Flags().IntVar(&watchInterval, "interval", 30, "Poll interval in seconds")
}
