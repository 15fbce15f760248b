package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wormsign/wormsign/wormsign/advisory"
)

var feedStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "display advisory feed status",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runFeedStatusCmd(cmd, args))
	},
}

func init() {
	feedCmd.AddCommand(feedStatusCmd)
}

func runFeedStatusCmd(_ *cobra.Command, _ []string) int {
	curator := advisory.NewCurator(appConfig.Feed.ToCuratorConfig())

	status := curator.Status()

	fmt.Println("Location: ", status.Location)
	fmt.Println("Built:    ", status.Built.String())
	fmt.Println("Entries:  ", status.Count)
	if status.Err != nil {
		fmt.Printf("Status:    INVALID [%+v]\n", status.Err)
		return 1
	}

	fmt.Println("Status:    Valid")
	return 0
}
