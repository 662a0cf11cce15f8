package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"property-portal/internal/model"
	"property-portal/internal/session"
	"property-portal/internal/tokenstore"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office commands (admin session required)",
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as an admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		accessToken, err := e.client.Login(cmd.Context(), loginUsername, loginPassword)
		if err != nil {
			return fmt.Errorf("admin login failed: %w", err)
		}

		if err := e.guard.AdminLogin(accessToken); err != nil {
			return fmt.Errorf("admin login rejected: %w", err)
		}

		fmt.Println("Admin session established")
		return nil
	},
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		e.guard.AdminLogout()
		fmt.Println("Admin session cleared")
		return nil
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, token, err := requireAdmin()
		if err != nil {
			return err
		}

		stats, err := e.client.Stats(cmd.Context(), token)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(stats)
		}

		fmt.Printf("Properties: %d (%d for sale, %d for rent)\n", stats.TotalProperties, stats.ForSale, stats.ForRent)
		fmt.Printf("Revenue: %.2f\n", stats.TotalRevenue)
		return nil
	},
}

var (
	adminKeyword string
	adminStatus  string
)

var adminPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List properties in the back office",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, token, err := requireAdmin()
		if err != nil {
			return err
		}

		properties, err := e.client.AdminProperties(cmd.Context(), token, adminKeyword, adminStatus)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(properties)
		}

		for _, p := range properties {
			printProperty(p)
		}
		return nil
	},
}

var adminRevenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Show monthly revenue",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, token, err := requireAdmin()
		if err != nil {
			return err
		}

		revenue, err := e.client.RevenueStats(cmd.Context(), token)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(revenue)
		}

		for _, entry := range revenue {
			fmt.Printf("%s  %.2f\n", entry.Month, entry.Revenue)
		}
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage registered accounts",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, token, err := requireAdmin()
		if err != nil {
			return err
		}

		users, err := e.client.Users(cmd.Context(), token)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(users)
		}

		for _, u := range users {
			fmt.Printf("#%d  %s  <%s>  %s\n", u.ID, u.Username, u.Email, u.Role)
		}
		return nil
	},
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || userID <= 0 {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		e, token, err := requireAdmin()
		if err != nil {
			return err
		}

		if err := e.client.DeleteUser(cmd.Context(), token, userID); err != nil {
			return fmt.Errorf("delete user failed: %w", err)
		}

		fmt.Printf("Deleted user #%d\n", userID)
		return nil
	},
}

// requireAdmin runs the session guard. A Redirecting outcome means the
// stored admin token is missing, malformed, mismatched, or expired; it
// has already been cleared, so the only remedy is a fresh login.
func requireAdmin() (*env, string, error) {
	e, err := newEnv()
	if err != nil {
		return nil, "", err
	}

	result := e.guard.Check()
	if result.State != session.Authorized {
		return nil, "", fmt.Errorf("admin session required; run '%s'", result.RedirectTo)
	}

	token, _ := adminToken(e.store)
	return e, token, nil
}

func adminToken(store *tokenstore.Store) (string, bool) {
	return store.Load(model.RoleAdmin)
}

func init() {
	adminLoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	adminLoginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
	_ = adminLoginCmd.MarkFlagRequired("username")
	_ = adminLoginCmd.MarkFlagRequired("password")

	adminPropertiesCmd.Flags().StringVar(&adminKeyword, "keyword", "", "Keyword filter")
	adminPropertiesCmd.Flags().StringVar(&adminStatus, "status", "", "Status filter")

	adminUsersCmd.AddCommand(adminUsersListCmd, adminUsersDeleteCmd)
	adminCmd.AddCommand(adminLoginCmd, adminLogoutCmd, adminStatsCmd, adminPropertiesCmd, adminRevenueCmd, adminUsersCmd)
	rootCmd.AddCommand(adminCmd)
}
