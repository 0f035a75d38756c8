package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show wardrobe summary",
	Run:   runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	w := c.Session.Wardrobe
	cyan := color.New(color.FgCyan)

	cyan.Println("Wardrobe")
	fmt.Printf("  Tops:    %d\n", len(w.Topwear))
	fmt.Printf("  Bottoms: %d\n", len(w.Bottomwear))
	fmt.Printf("  Outfits: %d\n", len(w.SavedOutfits))

	usage, err := c.Store.Usage()
	if err != nil {
		exitError("failed to read usage: %v", err)
	}

	quota := c.Config.QuotaMiB
	if quota <= 0 {
		quota = config.DefaultQuotaMiB
	}
	fmt.Printf("\nStorage: %.2f MiB of %d MiB used\n", usage, quota)

	if len(w.Topwear) == 0 || len(w.Bottomwear) == 0 {
		fmt.Println("\nAdd at least one top and one bottom to shuffle outfits.")
	}
}
