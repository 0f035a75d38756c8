package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/core"
)

var outfitCmd = &cobra.Command{
	Use:   "outfit",
	Short: "Manage saved outfits",
}

var (
	outfitTopID    int64
	outfitBottomID int64
)

var outfitSaveCmd = &cobra.Command{
	Use:   "save --top <id> --bottom <id>",
	Short: "Save a top/bottom pairing as an outfit",
	Long: `Save an outfit from a top and a bottom picked by id. The outfit stores
its own copies of both garments, so later wardrobe changes do not
affect it.`,
	Run: runOutfitSave,
}

var outfitLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved outfits",
	Run:   runOutfitLs,
}

var outfitShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved outfit as it was saved",
	Args:  cobra.ExactArgs(1),
	Run:   runOutfitShow,
}

var outfitRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a saved outfit",
	Args:  cobra.ExactArgs(1),
	Run:   runOutfitRm,
}

func init() {
	outfitSaveCmd.Flags().Int64Var(&outfitTopID, "top", 0, "Topwear garment id")
	outfitSaveCmd.Flags().Int64Var(&outfitBottomID, "bottom", 0, "Bottomwear garment id")
	outfitSaveCmd.MarkFlagRequired("top")
	outfitSaveCmd.MarkFlagRequired("bottom")

	outfitCmd.AddCommand(outfitSaveCmd)
	outfitCmd.AddCommand(outfitLsCmd)
	outfitCmd.AddCommand(outfitShowCmd)
	outfitCmd.AddCommand(outfitRmCmd)
}

func runOutfitSave(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	if err := c.Session.SelectTopByID(outfitTopID); err != nil {
		exitError("no topwear garment %d", outfitTopID)
	}
	if err := c.Session.SelectBottomByID(outfitBottomID); err != nil {
		exitError("no bottomwear garment %d", outfitBottomID)
	}

	outfit, err := c.Session.SaveOutfit()
	if err != nil {
		exitError("%v", err)
	}

	if c.persist() {
		color.New(color.FgGreen).Printf("Saved outfit %d (%s + %s)\n",
			outfit.ID, outfit.Top.Label(), outfit.Bottom.Label())
	}
}

func runOutfitLs(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	outfits := c.Session.Wardrobe.SavedOutfits
	if len(outfits) == 0 {
		fmt.Println("No saved outfits")
		return
	}

	cyan := color.New(color.FgCyan)
	cyan.Printf("Saved outfits (%d)\n", len(outfits))
	for _, o := range outfits {
		fmt.Printf("  %d  %s + %s\n", o.ID, o.Top.Label(), o.Bottom.Label())
	}
}

func runOutfitShow(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitError("invalid outfit id %q", args[0])
	}

	if err := c.Session.LoadSavedOutfit(id); err != nil {
		if errors.Is(err, core.ErrOutfitNotFound) {
			exitError("no outfit %d", id)
		}
		exitError("%v", err)
	}

	// Selections now hold the outfit's snapshot copies, not the live
	// wardrobe entries.
	top, bottom := c.Session.Selection()
	fmt.Printf("Outfit %d\n", id)
	fmt.Printf("  Top:    %s (added %s)\n", top.Label(), top.UploadedAt.Format("2006-01-02"))
	fmt.Printf("  Bottom: %s (added %s)\n", bottom.Label(), bottom.UploadedAt.Format("2006-01-02"))
}

func runOutfitRm(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitError("invalid outfit id %q", args[0])
	}

	if !c.Session.RemoveOutfit(id) {
		fmt.Printf("No outfit %d, nothing to do\n", id)
		return
	}

	c.persist()
	color.New(color.FgGreen).Printf("Removed outfit %d\n", id)
}
