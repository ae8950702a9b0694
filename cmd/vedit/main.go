package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	adapter "vedit/adapter-bubbletea"
	"vedit/config"
	"vedit/core"
)

var (
	configPath  string
	noClipboard bool
	lineNumbers bool
)

var rootCmd = &cobra.Command{
	Use:   "vedit [file]",
	Short: "A small modal text editor for the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ed := core.New()
		ed.SetKeymap(cfg.Keymap())
		if cfg.StartInInsert {
			ed.SetMode(core.InsertMode)
		}
		if !noClipboard {
			ed.UseClipboard(adapter.SystemClipboard{})
		}

		if len(args) == 1 {
			path := args[0]
			if err := ed.Open(path); err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				// New file: attach the name, save creates it.
				ed.SetFilename(path)
			}
		}

		m := adapter.New(ed).WithLineNumbers(lineNumbers)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./vedit.toml or $XDG_CONFIG_HOME/vedit/)")
	rootCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "do not mirror yanks to the system clipboard")
	rootCmd.Flags().BoolVar(&lineNumbers, "line-numbers", true, "show the line-number gutter")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
