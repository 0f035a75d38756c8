package cli

import (
	"fmt"

	"github.com/kilupskalvis/closet/internal/config"
	"github.com/kilupskalvis/closet/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new closet wardrobe",
	Long: `Initialize a new closet wardrobe in the current directory.
This creates a .closet directory holding the config and the store.`,
	Run: runInit,
}

var initQuotaMiB int

func init() {
	initCmd.Flags().IntVar(&initQuotaMiB, "quota-mib", config.DefaultQuotaMiB, "Storage capacity in MiB")
}

func runInit(cmd *cobra.Command, args []string) {
	// Check if already initialized
	if _, err := config.FindClosetRoot(); err == nil {
		exitError("closet wardrobe already exists")
	}

	cfg, err := config.Initialize(initQuotaMiB)
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	st, err := store.New(cfg.DatabasePath(), cfg.QuotaBytes(), newLogger())
	if err != nil {
		exitError("failed to create store: %v", err)
	}
	defer st.Close()

	if err := st.Initialize(); err != nil {
		exitError("failed to initialize store: %v", err)
	}

	fmt.Printf("Initialized empty wardrobe in .closet/\n")
	fmt.Printf("Storage capacity: %d MiB\n", cfg.QuotaMiB)
	fmt.Printf("\nRun 'closet add topwear <image>' to catalog your first garment.\n")
}
