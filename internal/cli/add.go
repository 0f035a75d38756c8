package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/core"
	"github.com/kilupskalvis/closet/internal/models"
	"github.com/kilupskalvis/closet/internal/notify"
)

var (
	addBrand string
	addName  string
	addLink  string
)

var addCmd = &cobra.Command{
	Use:   "add <topwear|bottomwear> <image>...",
	Short: "Add garment images to the wardrobe",
	Long: `Add one or more images to a wardrobe category. Accepted formats are
JPEG and PNG up to 5 MiB per image. A file that fails validation is
skipped; the rest of the batch is still added.

Examples:
  closet add topwear shirt.jpg --brand Uniqlo --name "Linen shirt"
  closet add bottomwear jeans-front.png jeans-back.png`,
	Args: cobra.MinimumNArgs(2),
	Run:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addBrand, "brand", "", "Brand label")
	addCmd.Flags().StringVar(&addName, "name", "", "Display name (defaults to the file name)")
	addCmd.Flags().StringVar(&addLink, "link", "", "Product URL")
}

func runAdd(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	cat, err := models.ParseCategory(args[0])
	if err != nil {
		exitError("%v", err)
	}

	res := c.Session.BulkAdd(cat, args[1:], core.ItemDetails{
		Brand: addBrand,
		Name:  addName,
		Link:  addLink,
	})

	for _, ferr := range res.Errors {
		c.Notify.Notify(ferr.Error(), notify.Warning)
	}

	if res.Succeeded > 0 {
		c.persist()
	}

	green := color.New(color.FgGreen)
	switch {
	case res.Succeeded == 0:
		fmt.Println("No garments added")
	case res.Failed > 0:
		green.Printf("Added %d garment(s) to %s, %d skipped\n", res.Succeeded, cat, res.Failed)
	default:
		green.Printf("Added %d garment(s) to %s\n", res.Succeeded, cat)
	}
}
