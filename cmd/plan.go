package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	itineraryadapter "github.com/winter3671/TakeMeTrip/internal/adapters/render/itinerary"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

func newPlanCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an itinerary and save it as a course",
	}

	cmd.AddCommand(
		newPlanRegionsCmd(app),
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanSaveCmd(app),
	)

	return cmd
}

func newPlanRegionsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions and their cities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			regions, err := app.planner.LoadRegions(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, regions)
			}

			out := cmd.OutOrStdout()
			for _, region := range regions {
				if _, err := fmt.Fprintf(out, "%-5d %s\n", region.ID, region.Name); err != nil {
					return err
				}
				for _, city := range region.Cities {
					if _, err := fmt.Fprintf(out, "      %-5d %s\n", city.ID, city.Name); err != nil {
						return err
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newPlanGenerateCmd(app *app) *cobra.Command {
	var form domain.PlanRequest
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ask the planner for a day-by-day itinerary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var draft domain.Draft
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Generating itinerary...", func(ctx context.Context) error {
				generated, err := app.planner.Generate(ctx, form)
				draft = generated
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, draft)
			}

			return writeDraft(cmd, app, draft)
		},
	}

	cmd.Flags().Int64Var(&form.RegionID, "region", 0, "Region ID, see tmt plan regions")
	cmd.Flags().Int64Var(&form.CityID, "city", 0, "City ID within the region")
	cmd.Flags().StringVar(&form.StartDate, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&form.EndDate, "end", "", "Last day, YYYY-MM-DD")
	cmd.Flags().IntVar(&form.NumPeople, "people", 1, "Number of travellers")
	cmd.Flags().Float64Var(&form.MapX, "mapx", 0, "Current longitude")
	cmd.Flags().Float64Var(&form.MapY, "mapy", 0, "Current latitude")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newPlanShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the most recently generated itinerary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := app.planner.CurrentDraft(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, draft)
			}

			return writeDraft(cmd, app, draft)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newPlanSaveCmd(app *app) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the current itinerary as a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.planner.SaveDraft(cmd.Context(), title); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved course %q\n", strings.TrimSpace(title))
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Course title")

	return cmd
}

// writeDraft renders draft. Region names come from the catalog when it can
// be fetched; the itinerary is still shown without it.
func writeDraft(cmd *cobra.Command, app *app, draft domain.Draft) error {
	catalog, err := app.planner.LoadRegions(cmd.Context())
	if err != nil {
		app.logger.Debug().Err(err).Msg("region catalog unavailable for rendering")
	}

	rendered, err := app.itineraryRenderer(draft, itineraryadapter.RenderOptions{
		Now:     app.now(),
		Catalog: catalog,
	})
	if err != nil {
		return fmt.Errorf("render itinerary: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
