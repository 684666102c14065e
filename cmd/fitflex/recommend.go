package fitflex

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendFocus string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest activities for a goal focus, biased by your history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			suggestions := d.tracker().Recommend(cmd.Context(), d.session.UserID, recommendFocus)
			fmt.Fprintf(cmd.OutOrStdout(), "Suggestions for %q:\n", recommendFocus)
			for i, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, s)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendFocus, "goal", "general", "Goal focus: weight loss, endurance, strength, flexibility or general")
}
