package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"property-portal/internal/model"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your account",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your account details",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, token, err := requireCustomer(cmd)
		if err != nil {
			return err
		}

		profile, err := e.client.Profile(cmd.Context(), token)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(profile)
		}

		name := profile.FullName
		if name == "" {
			name = profile.Username
		}
		fmt.Printf("%s <%s>\n", name, profile.Email)
		fmt.Printf("  username: %s\n", profile.Username)
		if profile.Phone != "" {
			fmt.Printf("  phone:    %s\n", profile.Phone)
		}
		return nil
	},
}

var (
	profileUsername string
	profileEmail    string
	profileFullName string
	profilePhone    string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your account details",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, token, err := requireCustomer(cmd)
		if err != nil {
			return err
		}

		// Start from the current profile so omitted flags keep their
		// stored values instead of blanking them.
		current, err := e.client.Profile(cmd.Context(), token)
		if err != nil {
			return err
		}

		req := model.UpdateProfileRequest{
			Username: current.Username,
			Email:    current.Email,
			FullName: current.FullName,
			Phone:    current.Phone,
		}
		if cmd.Flags().Changed("username") {
			req.Username = profileUsername
		}
		if cmd.Flags().Changed("email") {
			req.Email = profileEmail
		}
		if cmd.Flags().Changed("full-name") {
			req.FullName = profileFullName
		}
		if cmd.Flags().Changed("phone") {
			req.Phone = profilePhone
		}

		if err := e.client.UpdateProfile(cmd.Context(), token, req); err != nil {
			return fmt.Errorf("profile update failed: %w", err)
		}

		fmt.Println("Profile updated")
		return nil
	},
}

var (
	currentPassword string
	newPassword     string
)

var profileChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(newPassword) < 6 {
			return errors.New("new password must be at least 6 characters")
		}

		e, token, err := requireCustomer(cmd)
		if err != nil {
			return err
		}

		if err := e.client.ChangePassword(cmd.Context(), token, currentPassword, newPassword); err != nil {
			return fmt.Errorf("password change failed: %w", err)
		}

		fmt.Println("Password changed")
		return nil
	},
}

// requireCustomer restores the persisted session and returns its raw
// token, failing when no customer is signed in.
func requireCustomer(cmd *cobra.Command) (*env, string, error) {
	e, err := newEnv()
	if err != nil {
		return nil, "", err
	}

	e.controller.Restore(cmd.Context())
	token, ok := e.controller.Token()
	if !ok {
		return nil, "", errors.New("not signed in; run 'portal login' first")
	}

	return e, token, nil
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileUsername, "username", "", "New username")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "New email address")
	profileUpdateCmd.Flags().StringVar(&profileFullName, "full-name", "", "New full name")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "New phone number")

	profileChangePasswordCmd.Flags().StringVar(&currentPassword, "current", "", "Current password")
	profileChangePasswordCmd.Flags().StringVar(&newPassword, "new", "", "New password")
	_ = profileChangePasswordCmd.MarkFlagRequired("current")
	_ = profileChangePasswordCmd.MarkFlagRequired("new")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profileChangePasswordCmd)
	rootCmd.AddCommand(profileCmd)
}
