package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/feel-arcade/internal/platform/tui"
	"github.com/vovakirdan/feel-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario in the terminal",
	Long: `Play a scenario in the terminal. Without an argument a picker opens,
and quitting a scenario returns to it.

Controls:
  WASD/Arrows/IJKL - Move (Tab cycles the scheme, arrows always work)
  Space            - Jump (platformer; Up also jumps)
  X                - Dash
  Enter            - Start / continue
  R                - Restart
  1 / 2 / F        - Boundary policy / control mode / feel preset
  3 4 5 6          - Toggle shake, flash, hitstop, particles
  F1               - Hitbox overlay
  ?                - All keys
  Q/Esc            - Quit

Terminals report key repeats but not releases, so a direction stays held
for a moment after its last repeat.

Examples:
  arcade play
  arcade play walls --control platformer
  arcade play feedback --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id := ""
	if len(args) == 1 {
		id = args[0]
		if !registry.Exists(id) {
			return fmt.Errorf("unknown scenario %q, run 'arcade list' to see available scenarios", id)
		}
	}

	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	s.runtime.ScreenW, s.runtime.ScreenH = width, height

	fromMenu := id == ""
	for {
		if fromMenu {
			picked, err := tui.RunMenu(width, height)
			if err != nil {
				return err
			}
			if picked == "" {
				return nil
			}
			id = picked
		}

		sm, sc, err := s.newSimulation(id)
		if err != nil {
			return err
		}
		err = tui.Run(sm, sc, tui.Options{Runtime: s.runtime, Logger: s.log, Watcher: s.watcher})
		if err != nil {
			return fmt.Errorf("running %s: %w", id, err)
		}
		if !fromMenu {
			return nil
		}
	}
}
