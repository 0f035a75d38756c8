package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/backup"
	"github.com/kilupskalvis/closet/internal/core"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the wardrobe from a backup file",
	Long: `Replace the wardrobe with the contents of a backup file. The backup is
parsed before anything is touched: on a parse failure the wardrobe and
the store stay exactly as they were.`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitError("failed to read backup: %v", err)
	}

	w, err := backup.Import(data)
	if err != nil {
		exitError("import aborted, nothing changed: %v", err)
	}

	c.Session = core.NewSession(w)
	if !c.persist() {
		return
	}

	color.New(color.FgGreen).Printf("Imported %d top(s), %d bottom(s), %d outfit(s)\n",
		len(w.Topwear), len(w.Bottomwear), len(w.SavedOutfits))
}
