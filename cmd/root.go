package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"

	"github.com/wormsign/wormsign/internal"
	"github.com/wormsign/wormsign/internal/bus"
	"github.com/wormsign/wormsign/internal/config"
	"github.com/wormsign/wormsign/internal/log"
	"github.com/wormsign/wormsign/internal/stringutil"
	"github.com/wormsign/wormsign/internal/ui"
	"github.com/wormsign/wormsign/internal/version"
	"github.com/wormsign/wormsign/wormsign"
	"github.com/wormsign/wormsign/wormsign/event"
	"github.com/wormsign/wormsign/wormsign/presenter"
	"github.com/wormsign/wormsign/wormsign/presenter/models"
	"github.com/wormsign/wormsign/wormsign/wormsignerr"
)

var persistentOpts = config.CliOnlyOptions{}

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [DIR]", internal.ApplicationName),
	Short: "A scanner for compromised npm packages in project dependencies",
	Long: stringutil.Tprintf(`Cross-references the dependencies of an npm project against a feed of known-compromised package releases:
    {{.appName}}                  scan the current directory
    {{.appName}} path/to/project  scan the project at the given path
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		err := runDefaultCmd(dir)

		if err != nil {
			var expected wormsignerr.ExpectedErr
			if errors.As(err, &expected) {
				fmt.Fprintln(os.Stderr, color.Red.Sprint(expected.Error()))
				os.Exit(2)
			}
			log.Errorf("%+v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	flag := "quiet"
	rootCmd.PersistentFlags().BoolP(
		flag, "q", false,
		"suppress all logging output",
	)
	if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "output"
	rootCmd.Flags().StringP(
		flag, "o", presenter.TablePresenter.String(),
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)
	if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "offline"
	rootCmd.Flags().Bool(
		flag, false,
		"scan against the cached advisory feed without attempting a download",
	)
	if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}

func startWorker(dir string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		if appConfig.CheckForAppUpdate {
			checkForAppUpdate()
		}

		ctx, cancel := context.WithTimeout(context.Background(), appConfig.Feed.DownloadTimeout)
		defer cancel()

		advisories, err := wormsign.LoadAdvisorySet(ctx, appConfig.Feed.ToCuratorConfig(), !appConfig.Offline)
		if err != nil {
			errs <- fmt.Errorf("failed to load advisory feed: %w", err)
			return
		}

		matches, catalog, err := wormsign.FindInfections(afero.NewOsFs(), dir, advisories)
		if err != nil {
			errs <- err
			return
		}

		bus.Publish(partybus.Event{
			Type:  event.InfectionScanningFinished,
			Value: presenter.GetPresenter(appConfig.PresenterOpt, models.NewDocument(catalog, advisories, matches)),
		})

		if matches.Count() > 0 {
			errs <- wormsignerr.ErrInfectionFound
		}
	}()
	return errs
}

func runDefaultCmd(dir string) error {
	return eventLoop(
		startWorker(dir),
		setupSignals(),
		eventSubscription,
		ui.NewLoggerUI(os.Stdout),
	)
}

func checkForAppUpdate() {
	isAvailable, newVersion, err := version.IsUpdateAvailable()
	if err != nil {
		log.Errorf(err.Error())
	}
	if isAvailable {
		log.Infof("New version of %s is available: %s", internal.ApplicationName, newVersion)
		bus.Publish(partybus.Event{
			Type:  event.AppUpdateAvailable,
			Value: newVersion,
		})
	} else {
		log.Debugf("No new %s update available", internal.ApplicationName)
	}
}
