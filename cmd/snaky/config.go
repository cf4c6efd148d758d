package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snaky/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in snake.yaml. With --write, save it to
~/.snaky/configs/snake.yaml as a starting point (an existing file is kept).

Examples:
  snaky config > my-snake.yaml
  snaky config --write`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !flagConfigWrite {
			_, err := cmd.OutOrStdout().Write(config.DefaultSnakeYAML())
			return err
		}
		path := config.UserConfigPath("snake.yaml")
		if path == "" {
			return errors.New("config: home directory is unavailable")
		}
		return writeDefaultConfig(cmd.OutOrStdout(), path)
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the defaults to the user config directory")
}

// writeDefaultConfig creates path with the embedded defaults unless it exists.
func writeDefaultConfig(w io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "%s already exists, leaving it unchanged\n", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, config.DefaultSnakeYAML(), 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}
