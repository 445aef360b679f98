package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/winter3671/TakeMeTrip/internal/application"
)

const skipWireAnnotation = "tmt/skip-wire"

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", application.Describe(err).Message)
	}

	return err
}

func newRootCmd() *cobra.Command {
	var debug bool
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "tmt",
		Short:         "TakeMeTrip CLI (tmt): plan trips and share them",
		Long:          "tmt signs you in to a TakeMeTrip server, generates day-by-day itineraries, saves them as courses and browses the community board from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}

			return app.wire(cmd.Context(), wireOptions{
				Debug:  debug,
				Output: cmd.ErrOrStderr(),
			})
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log API traffic and internal decisions to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newPlanCmd(app),
		newCommunityCmd(app),
		newTripsCmd(app),
	)

	return rootCmd
}
