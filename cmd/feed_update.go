package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wormsign/wormsign/internal/bus"
	"github.com/wormsign/wormsign/internal/ui"
	"github.com/wormsign/wormsign/wormsign/advisory"
)

var feedUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "download the latest advisory feed",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeedUpdateCmd(cmd, args)
	},
}

func init() {
	feedCmd.AddCommand(feedUpdateCmd)
}

func startFeedUpdateWorker() <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		ctx, cancel := context.WithTimeout(context.Background(), appConfig.Feed.DownloadTimeout)
		defer cancel()

		curator := advisory.NewCurator(appConfig.Feed.ToCuratorConfig())
		if err := curator.Update(ctx); err != nil {
			errs <- fmt.Errorf("unable to update advisory feed: %w", err)
			return
		}

		bus.Report("Advisory feed updated!")
	}()
	return errs
}

func runFeedUpdateCmd(_ *cobra.Command, _ []string) error {
	return eventLoop(
		startFeedUpdateWorker(),
		setupSignals(),
		eventSubscription,
		ui.NewLoggerUI(os.Stdout),
	)
}
