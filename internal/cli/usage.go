package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/config"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show storage usage",
	Run:   runUsage,
}

func runUsage(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	usage, err := c.Store.Usage()
	if err != nil {
		exitError("failed to read usage: %v", err)
	}

	quota := c.Config.QuotaMiB
	if quota <= 0 {
		quota = config.DefaultQuotaMiB
	}
	fmt.Printf("%.2f MiB of %d MiB used\n", usage, quota)
}
