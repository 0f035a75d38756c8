package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/models"
)

var lsCmd = &cobra.Command{
	Use:   "ls [topwear|bottomwear]",
	Short: "List garments in insertion order",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLs,
}

func runLs(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	categories := []models.Category{models.CategoryTopwear, models.CategoryBottomwear}
	if len(args) == 1 {
		cat, err := models.ParseCategory(args[0])
		if err != nil {
			exitError("%v", err)
		}
		categories = []models.Category{cat}
	}

	cyan := color.New(color.FgCyan)
	for _, cat := range categories {
		garments := c.Session.Wardrobe.Garments(cat)
		cyan.Printf("%s (%d)\n", cat, len(garments))
		if len(garments) == 0 {
			fmt.Println("  (empty)")
			continue
		}
		for _, g := range garments {
			line := fmt.Sprintf("  %d  %s", g.ID, g.Label())
			if g.Link != "" {
				line += "  " + g.Link
			}
			fmt.Printf("%s  (added %s)\n", line, g.UploadedAt.Format("2006-01-02"))
		}
	}
}
