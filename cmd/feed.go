package cmd

import (
	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "advisory feed operations",
}

func init() {
	rootCmd.AddCommand(feedCmd)
}
