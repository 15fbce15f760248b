package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wormsign/wormsign/internal/log"
	"github.com/wormsign/wormsign/wormsign/advisory"
)

var feedDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "delete the cached advisory feed",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		ret := runFeedDeleteCmd(cmd, args)
		if ret != 0 {
			fmt.Println("Unable to delete advisory feed")
		}
		os.Exit(ret)
	},
}

func init() {
	feedCmd.AddCommand(feedDeleteCmd)
}

func runFeedDeleteCmd(_ *cobra.Command, _ []string) int {
	curator := advisory.NewCurator(appConfig.Feed.ToCuratorConfig())

	if err := curator.Delete(); err != nil {
		log.Errorf("unable to delete advisory feed: %+v", err)
		return 1
	}

	fmt.Println("Advisory feed deleted")

	return 0
}
