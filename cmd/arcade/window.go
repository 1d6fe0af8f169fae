package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/platform/window"
	"github.com/vovakirdan/feel-arcade/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <scenario>",
	Short: "Play a scenario in a desktop window",
	Long: `Open a desktop window running the scenario at the configured tick rate.

Controls:
  WASD/Arrows/IJKL - Move (Tab cycles the scheme, arrows always work)
  Space            - Jump (platformer; Up also jumps)
  Shift            - Dash
  Enter            - Start / continue
  R                - Restart
  1 / 2 / F        - Boundary policy / control mode / feel preset
  3 4 5 6          - Toggle shake, flash, hitstop, particles
  F1               - Hitbox overlay
  Q/Esc            - Quit

A gamepad's left stick moves and its bottom face button jumps.

Examples:
  arcade window bounds
  arcade window feedback --scale 1.5 --feel heavy`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 960x540 arena")
}

func runWindow(_ *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown scenario %q, run 'arcade list' to see available scenarios", id)
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	scale := flagScale
	if scale <= 0 {
		scale = 1
	}
	s.runtime.ScreenW = int(core.ArenaWidth * scale)
	s.runtime.ScreenH = int(core.ArenaHeight * scale)

	sm, sc, err := s.newSimulation(id)
	if err != nil {
		return err
	}
	s.log.Info("window opened", "scenario", id, "size", fmt.Sprintf("%dx%d", s.runtime.ScreenW, s.runtime.ScreenH))
	return window.Run(sm, sc, window.Options{Runtime: s.runtime, Logger: s.log, Watcher: s.watcher})
}
