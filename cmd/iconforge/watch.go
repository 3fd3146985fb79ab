package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aellingwood/iconforge/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate icons whenever the config file changes",
	Long: "Watch generates the icons once, then regenerates them each time the " +
		"config file is saved. Stop it with Ctrl+C.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		debounce, _ := cmd.Flags().GetDuration("debounce")
		out := cmd.OutOrStdout()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 1. Initial generation; a broken config is fatal here.
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if _, err := runGenerate(ctx, out, cfg, verbose); err != nil {
			return err
		}

		// 2. Regenerate on change. Failures are logged and watching continues.
		w, err := watch.New([]string{configPath}, debounce, regenerator(ctx, cmd, out, verbose))
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}

		finished := make(chan struct{})
		defer close(finished)
		go func() {
			select {
			case <-ctx.Done():
				fmt.Fprintln(out, "\nShutting down...")
				w.Stop()
			case <-finished:
			}
		}()

		fmt.Fprintf(out, "Watching %s for changes\n", configPath)
		if err := w.Start(); err != nil {
			stop()
			return fmt.Errorf("watcher error: %w", err)
		}
		return nil
	},
}

// regenerator returns the watch callback. Runs are serialised, and a callback
// that fires after ctx is done does nothing.
func regenerator(ctx context.Context, cmd *cobra.Command, out io.Writer, verbose bool) func() {
	var mu sync.Mutex
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}

		log.Println("Change detected, regenerating...")
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Printf("Reload failed: %v", err)
			return
		}
		if _, err := runGenerate(ctx, out, cfg, verbose); err != nil {
			log.Printf("Regeneration failed: %v", err)
		}
	}
}

func init() {
	watchCmd.Flags().Duration("debounce", 100*time.Millisecond, "delay before regenerating after a change")

	rootCmd.AddCommand(watchCmd)
}
