// Package hud formats the status text both front ends draw over the arena.
package hud

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/feel-arcade/internal/feedback"
	"github.com/vovakirdan/feel-arcade/internal/sim"
)

// Stats is the gameplay line: hp, score, level and the countdown if any.
func Stats(s *sim.Simulation) string {
	p := s.Player()
	parts := []string{
		fmt.Sprintf("HP %s", strings.Repeat("♥", max(p.HP, 0))),
		fmt.Sprintf("Score %d", p.Score),
		fmt.Sprintf("Level %d", s.Level()),
	}
	if s.TimeLimited() {
		parts = append(parts, fmt.Sprintf("Time %.1f", s.TimeLeft()))
	}
	if g := s.World().Goal; g.Active {
		parts = append(parts, fmt.Sprintf("Goal x%d", g.Remaining+1))
	}
	if p.Dash.Ready() {
		parts = append(parts, "Dash ready")
	}
	return strings.Join(parts, "  ")
}

// Modes is the settings line: boundary, control, feel and feedback channels.
func Modes(s *sim.Simulation, scheme string) string {
	parts := []string{
		"[1] " + s.Boundary().String(),
		"[2] " + s.Control().String(),
		"[F] " + s.Feel().Name,
	}
	if scheme != "" {
		parts = append(parts, "[Tab] "+scheme)
	}
	t := s.Toggles()
	for i, ch := range feedback.Channels {
		parts = append(parts, fmt.Sprintf("[%d] %s %s", i+3, ch, onOff(t.Enabled(ch))))
	}
	return strings.Join(parts, "  ")
}

// Debug is the overlay line with the player's raw physics state.
func Debug(s *sim.Simulation) string {
	p := s.Player()
	return fmt.Sprintf("pos %.0f,%.0f  vel %.0f,%.0f  ground %v  anim %s  inv %.2f  tick %d",
		p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.OnGround, p.Anim.State, p.InvincibleFor, s.Ticks())
}

// Banner returns the centered message lines for non-play states, or nil
// while playing.
func Banner(state sim.GameState, title, description string) []string {
	switch state {
	case sim.StateTitle:
		return []string{title, description, "Press Enter to start"}
	case sim.StateWin:
		return []string{"YOU WIN", "Enter to continue, R to restart"}
	case sim.StateLose:
		return []string{"TIME UP", "Enter to retry, R to restart"}
	case sim.StateGameOver:
		return []string{"GAME OVER", "Enter to play again"}
	}
	return nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
