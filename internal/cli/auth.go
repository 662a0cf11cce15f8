package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
	registerEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		accessToken, err := e.client.CustomerLogin(cmd.Context(), loginUsername, loginPassword)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := e.controller.Login(cmd.Context(), accessToken); err != nil {
			return fmt.Errorf("login rejected: %w", err)
		}

		// The controller reconciles in the background; run one more
		// synchronous pass so the printed count is settled.
		e.favorites.Reconcile(cmd.Context())

		user, _ := e.controller.User()
		if jsonOutput {
			return printJSON(map[string]any{"username": user.Username, "favorites": e.favorites.Len()})
		}

		fmt.Printf("Signed in as %s (%d favorites)\n", user.Username, e.favorites.Len())
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a customer account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		accessToken, err := e.client.Register(cmd.Context(), loginUsername, loginPassword, registerEmail)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		if err := e.controller.Login(cmd.Context(), accessToken); err != nil {
			return fmt.Errorf("login rejected: %w", err)
		}

		user, _ := e.controller.User()
		if jsonOutput {
			return printJSON(map[string]any{"username": user.Username})
		}

		fmt.Printf("Welcome, %s\n", user.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the customer session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		e.controller.Restore(cmd.Context())
		e.controller.Logout()

		if jsonOutput {
			return printJSON(map[string]any{"logged_out": true})
		}

		fmt.Println("Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current customer session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		e.controller.Restore(cmd.Context())

		user, ok := e.controller.User()
		if !ok {
			if jsonOutput {
				return printJSON(map[string]any{"logged_in": false})
			}
			fmt.Println("Not signed in")
			return nil
		}

		if jsonOutput {
			return printJSON(map[string]any{"logged_in": true, "id": user.ID, "username": user.Username, "role": user.Role})
		}

		fmt.Printf("Signed in as %s (id %d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
		cmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
		_ = cmd.MarkFlagRequired("username")
		_ = cmd.MarkFlagRequired("password")
	}
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address")
	_ = registerCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
