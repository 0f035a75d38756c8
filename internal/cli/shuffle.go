package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/core"
	"github.com/kilupskalvis/closet/internal/notify"
)

var shuffleSave bool

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Pick a random top and bottom",
	Long: `Select one top and one bottom uniformly at random. Needs at least one
garment in each category. With --save the pair is stored as an outfit.`,
	Run: runShuffle,
}

func init() {
	shuffleCmd.Flags().BoolVar(&shuffleSave, "save", false, "Save the shuffled pair as an outfit")
}

func runShuffle(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	top, bottom, err := c.Session.Shuffle()
	if err != nil {
		if errors.Is(err, core.ErrEmptyCollection) {
			c.Notify.Notify("add at least one top and one bottom before shuffling", notify.Warning)
			return
		}
		exitError("%v", err)
	}

	fmt.Printf("Top:    %s (%d)\n", top.Label(), top.ID)
	fmt.Printf("Bottom: %s (%d)\n", bottom.Label(), bottom.ID)

	if !shuffleSave {
		return
	}

	outfit, err := c.Session.SaveOutfit()
	if err != nil {
		exitError("%v", err)
	}
	if c.persist() {
		color.New(color.FgGreen).Printf("Saved outfit %d\n", outfit.ID)
	}
}
