package cli

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/backup"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the wardrobe to a backup file",
	Long: `Write the full wardrobe to a portable JSON backup. The default file
name carries an export timestamp so repeated exports never collide.`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Output file (default closet-backup-<timestamp>.json)")
}

func runExport(cmd *cobra.Command, args []string) {
	c := initSessionContext()
	defer c.Close()

	now := time.Now()
	data, err := backup.Export(c.Session.Wardrobe, now)
	if err != nil {
		exitError("failed to export wardrobe: %v", err)
	}

	out := exportOut
	if out == "" {
		out = backup.Filename(now)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		exitError("failed to write backup: %v", err)
	}

	color.New(color.FgGreen).Printf("Exported wardrobe to %s\n", out)
}
