package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// vaultWatchCmd represents the vault watch command
var vaultWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a YAML file and import it when it changes",
	Long: `Watch a YAML file of key-value pairs and import it when it changes.

The file is imported once at startup and again on every modification. The
file must be visible to the process running "cryptoctl vault watch". Use this
to keep the vault in sync with secrets rendered by another tool.

Example:
  cryptoctl vault watch /run/secrets/entries.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		if err := watchEntries(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch entries: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	vaultCmd.AddCommand(vaultWatchCmd)
}

func watchEntries(filename string) error {
	store, err := loadVault()
	if err != nil {
		return err
	}

	// Import once before watching so a restart picks up missed changes
	if count, err := importEntriesFile(store, filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing entries: %v\n", err)
	} else {
		fmt.Printf("Imported %d entries from %s\n", count, filename)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for changes\n", filename)

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, importing entries...\n", time.Now().Format(time.RFC3339))

				if count, err := importEntriesFile(store, filename); err != nil {
					fmt.Fprintf(os.Stderr, "Error importing entries: %v\n", err)
				} else {
					fmt.Printf("Imported %d entries from %s\n", count, filename)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
