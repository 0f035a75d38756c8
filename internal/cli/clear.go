package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored wardrobe data",
	Long: `Delete the persisted wardrobe slot. This cannot be undone, so the
command asks for confirmation unless --force is given.`,
	Run: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	if !clearForce && !confirm("This permanently deletes the stored wardrobe.") {
		fmt.Println("Aborted")
		return
	}

	if err := c.Store.Clear(); err != nil {
		exitError("failed to clear store: %v", err)
	}

	color.New(color.FgGreen).Println("Wardrobe storage cleared")
}

// confirm asks the user to type "yes" before an irreversible action.
func confirm(warning string) bool {
	fmt.Printf("%s Type 'yes' to continue: ", warning)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(answer) == "yes"
}
