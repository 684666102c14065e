package fitflex

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DnvLikhitha/FitFlex/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and edit the signed-in user's profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile with BMI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			u, offline, err := d.profiles().Get(cmd.Context(), d.session.UserID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			offlineReadNotice(out, offline)
			fmt.Fprintf(out, "Name: %s\nEmail: %s\n", u.Name, u.Email)
			if u.Age > 0 {
				fmt.Fprintf(out, "Age: %d\n", u.Age)
			}
			if u.Weight > 0 {
				fmt.Fprintf(out, "Weight: %.1f kg\n", u.Weight)
			}
			if u.Height > 0 {
				fmt.Fprintf(out, "Height: %.1f cm\n", u.Height)
			}
			if bmi, ok := service.BMI(u.Weight, u.Height); ok {
				fmt.Fprintf(out, "BMI: %.1f (%s)\n", bmi, service.BMICategory(bmi))
			}
			return nil
		})
	},
}

var (
	profileName   string
	profileAge    int
	profileWeight float64
	profileHeight float64
)

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			var in service.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = &profileName
			}
			if flags.Changed("age") {
				in.Age = &profileAge
			}
			if flags.Changed("weight") {
				in.Weight = &profileWeight
			}
			if flags.Changed("height") {
				in.Height = &profileHeight
			}
			u, offline, err := d.profiles().Update(cmd.Context(), d.session.UserID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile for %s\n", u.Name)
			offlineNotice(cmd.OutOrStdout(), offline)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileEditCmd)

	profileEditCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileEditCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileEditCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileEditCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
}
