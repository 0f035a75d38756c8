// Package cli implements the command-line interface for closet.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/closet/internal/config"
	"github.com/kilupskalvis/closet/internal/core"
	"github.com/kilupskalvis/closet/internal/notify"
	"github.com/kilupskalvis/closet/internal/store"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config  *config.Config
	Store   *store.Store
	Session *core.Session
	Notify  notify.Notifier
	Log     zerolog.Logger
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
}

var verbose bool

// newLogger builds the console logger; --verbose raises it to debug.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// initContext initializes config and store (no wardrobe loaded)
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	log := newLogger()
	st, err := store.New(cfg.DatabasePath(), cfg.QuotaBytes(), log)
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	if err := st.Initialize(); err != nil {
		st.Close()
		exitError("failed to initialize store: %v", err)
	}

	return &cmdContext{
		Config: cfg,
		Store:  st,
		Notify: notify.NewConsole(os.Stdout),
		Log:    log,
	}
}

// initSessionContext initializes config and store, then loads the
// wardrobe into a fresh session. Selections always start empty.
func initSessionContext() *cmdContext {
	c := initContext()

	w, _, err := c.Store.Load()
	if err != nil {
		c.Close()
		exitError("failed to load wardrobe: %v", err)
	}

	c.Session = core.NewSession(w)
	return c
}

// persist saves the session's wardrobe. The in-memory mutation that
// triggered the save has already happened; a failed save only means the
// slot lags behind, so persist reports the failure and nothing else.
func (c *cmdContext) persist() bool {
	err := c.Store.Save(c.Session.Wardrobe)
	switch {
	case err == nil:
		if usage, uerr := c.Store.Usage(); uerr == nil {
			c.Log.Debug().Float64("used_mib", usage).Msg("wardrobe persisted")
		}
		return true
	case errors.Is(err, store.ErrQuotaExceeded):
		c.Notify.Notify("storage is full: remove garments or outfits to free space", notify.Error)
	default:
		c.Notify.Notify(fmt.Sprintf("could not save wardrobe: %v", err), notify.Error)
	}
	return false
}

var rootCmd = &cobra.Command{
	Use:   "closet",
	Short: "Local wardrobe catalog",
	Long: `Closet is a local-first CLI for cataloging clothing images. Pair a top
with a bottom, save favorite outfits, and keep everything in a small
size-bounded store with portable JSON backups.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(outfitCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statusCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
