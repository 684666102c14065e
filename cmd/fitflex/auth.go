package fitflex

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DnvLikhitha/FitFlex/internal/app"
	"github.com/DnvLikhitha/FitFlex/internal/auth"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
	signupAge      int
	signupWeight   float64
	signupHeight   float64
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(d *appDeps) error {
			svc := &auth.Service{API: d.api}
			session, err := svc.SignUp(cmd.Context(), auth.SignUpInput{
				Name:     signupName,
				Email:    signupEmail,
				Password: signupPassword,
				Age:      signupAge,
				Weight:   signupWeight,
				Height:   signupHeight,
			})
			if err != nil {
				return err
			}
			if err := app.SaveSession(d.sessionPath, session); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You are signed in.\n", session.Name)
			return nil
		})
	},
}

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(d *appDeps) error {
			svc := &auth.Service{API: d.api}
			session, err := svc.Login(cmd.Context(), loginEmail, loginPassword)
			if err != nil {
				return err
			}
			if err := app.SaveSession(d.sessionPath, session); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", session.Name, session.Email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(d *appDeps) error {
			if err := app.ClearSession(d.sessionPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(d *appDeps) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %s)\n", d.session.Name, d.session.Email, d.session.UserID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)

	signupCmd.Flags().StringVar(&signupName, "name", "", "Full name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email address")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password (8+ chars, upper, lower, digit, special)")
	signupCmd.Flags().IntVar(&signupAge, "age", 0, "Age in years")
	signupCmd.Flags().Float64Var(&signupWeight, "weight", 0, "Weight in kg")
	signupCmd.Flags().Float64Var(&signupHeight, "height", 0, "Height in cm")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
