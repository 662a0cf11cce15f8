package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"property-portal/internal/model"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage your favorited listings",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorited property ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		e.controller.Restore(cmd.Context())
		if _, ok := e.controller.User(); !ok {
			return errors.New("not signed in; run 'portal login' first")
		}
		e.favorites.Reconcile(cmd.Context())

		ids := e.favorites.IDs()
		if jsonOutput {
			return printJSON(ids)
		}

		if len(ids) == 0 {
			fmt.Println("No favorites yet")
			return nil
		}
		for _, id := range ids {
			fmt.Printf("#%d\n", id)
		}
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <property-id>",
	Short: "Add a listing to your favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return mutateFavorite(cmd, args[0], true) },
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <property-id>",
	Short: "Remove a listing from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return mutateFavorite(cmd, args[0], false) },
}

func mutateFavorite(cmd *cobra.Command, rawID string, add bool) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid property id %q", rawID)
	}

	e, err := newEnv()
	if err != nil {
		return err
	}

	e.controller.Restore(cmd.Context())
	if _, ok := e.controller.User(); !ok {
		return errors.New("not signed in; run 'portal login' first")
	}
	e.favorites.Reconcile(cmd.Context())

	if add {
		err = e.favorites.Add(cmd.Context(), id)
	} else {
		err = e.favorites.Remove(cmd.Context(), id)
	}

	switch {
	case errors.Is(err, model.ErrAlreadyFavorite):
		fmt.Printf("#%d is already in your favorites\n", id)
		return nil
	case err != nil:
		return fmt.Errorf("favorites update failed: %w", err)
	}

	if add {
		fmt.Printf("Added #%d to favorites\n", id)
	} else {
		fmt.Printf("Removed #%d from favorites\n", id)
	}
	return nil
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd)
	rootCmd.AddCommand(favoritesCmd)
}
