package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"property-portal/internal/model"
)

var (
	listPage     int
	listLimit    int
	listStatus   string
	listType     string
	listKeyword  string
	listMinPrice float64
	listMaxPrice float64
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Browse property listings",
}

var propertiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties with optional filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		filter := model.PropertyFilter{
			Page:     listPage,
			Limit:    listLimit,
			Status:   listStatus,
			Type:     listType,
			Keyword:  listKeyword,
			MinPrice: listMinPrice,
			MaxPrice: listMaxPrice,
		}

		list, err := e.client.Properties(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(list)
		}

		for _, p := range list.Properties {
			printProperty(p)
		}
		fmt.Printf("page %d of %d (%d listings)\n", list.Pagination.CurrentPage, list.Pagination.TotalPages, list.Pagination.TotalItems)
		return nil
	},
}

var propertiesFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "Show the featured listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		properties, err := e.client.FeaturedProperties(cmd.Context())
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

var propertiesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid property id %q", args[0])
		}

		e, err := newEnv()
		if err != nil {
			return err
		}

		property, err := e.client.PropertyByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(property)
		}

		printProperty(property)
		if property.Description != "" {
			fmt.Printf("  %s\n", property.Description)
		}
		return nil
	},
}

func printProperty(p model.Property) {
	fmt.Printf("#%d  %s  [%s]  %.0f", p.ID, p.Title, p.Status, p.Price)
	if p.PricePeriod != "" && p.PricePeriod != "total" {
		fmt.Printf("/%s", p.PricePeriod)
	}
	if p.Bedrooms > 0 {
		fmt.Printf("  %dbd/%dba", p.Bedrooms, p.Bathrooms)
	}
	fmt.Println()
}

func init() {
	propertiesListCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	propertiesListCmd.Flags().IntVar(&listLimit, "limit", 10, "Listings per page")
	propertiesListCmd.Flags().StringVar(&listStatus, "status", "", "Status filter (For Sale, For Rent)")
	propertiesListCmd.Flags().StringVar(&listType, "type", "", "Property type filter")
	propertiesListCmd.Flags().StringVar(&listKeyword, "keyword", "", "Keyword search")
	propertiesListCmd.Flags().Float64Var(&listMinPrice, "min-price", 0, "Minimum price")
	propertiesListCmd.Flags().Float64Var(&listMaxPrice, "max-price", 0, "Maximum price")

	propertiesCmd.AddCommand(propertiesListCmd, propertiesFeaturedCmd, propertiesShowCmd)
	rootCmd.AddCommand(propertiesCmd)
}
