package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

func newTripsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Browse places that itineraries are built from",
	}

	cmd.AddCommand(newTripsListCmd(app), newTripsCategoriesCmd(app))

	return cmd
}

func newTripsListCmd(app *app) *cobra.Command {
	var query domain.TripQuery
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places, one page at a time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := app.catalog.ListTrips(cmd.Context(), query)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, page)
			}

			out := cmd.OutOrStdout()
			for _, trip := range page.Trips {
				id := int64(0)
				if trip.ID != nil {
					id = int64(*trip.ID)
				}
				if _, err := fmt.Fprintf(out, "%-7d %s  (%s, %s)\n", id, trip.Title, trip.CityName, trip.CategoryName); err != nil {
					return err
				}
			}

			footer := fmt.Sprintf("%d places", page.Count)
			if page.Next != "" {
				footer += ", more with --page"
			}
			_, err = fmt.Fprintln(out, footer)
			return err
		},
	}

	cmd.Flags().StringVar(&query.Search, "search", "", "Search text")
	cmd.Flags().Int64Var(&query.CategoryID, "category", 0, "Category ID")
	cmd.Flags().Int64Var(&query.RegionID, "region", 0, "Region ID")
	cmd.Flags().IntVar(&query.Page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newTripsCategoriesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List place categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := app.catalog.Categories(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, categories)
			}

			for _, category := range categories {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-5d %s\n", category.ID, category.Name); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
