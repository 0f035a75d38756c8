package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/models"
)

var rmCmd = &cobra.Command{
	Use:   "rm <topwear|bottomwear> <id>",
	Short: "Remove a garment from the wardrobe",
	Long: `Remove a garment by id. Saved outfits keep their own copies of every
garment, so outfits that used this garment are unchanged.`,
	Args: cobra.ExactArgs(2),
	Run:  runRm,
}

func runRm(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	cat, err := models.ParseCategory(args[0])
	if err != nil {
		exitError("%v", err)
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		exitError("invalid garment id %q", args[1])
	}

	if !c.Session.RemoveGarment(cat, id) {
		fmt.Printf("No garment %d in %s, nothing to do\n", id, cat)
		return
	}

	c.persist()
	color.New(color.FgGreen).Printf("Removed garment %d from %s\n", id, cat)
}
