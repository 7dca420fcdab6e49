// Package tui renders game state for the console and prompts for input.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/loveletter/card"
	"github.com/lox/loveletter/internal/game"
)

// Renderer formats game state as styled console lines
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer for w. With color disabled all output is
// plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{styles: NewStyles(r)}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Title renders a banner line
func (r *Renderer) Title(text string) string {
	return r.styles.Header.Render(" " + text + " ")
}

// Game renders the face-up state of g, preceded by the replay line
func (r *Renderer) Game(g game.Game, replay string) string {
	var lines []string
	lines = append(lines, r.styles.Replay.Render("replay: "+replay))
	lines = append(lines, r.styles.Info.Render(fmt.Sprintf(
		"Turn %d | Round %d | Deck %d | Held out %s",
		g.TurnIndex(), g.Round(), len(g.Deck()), g.HeldOut())))

	current := g.CurrentPlayerIndex()
	for i, p := range g.Players() {
		lines = append(lines, r.player(i, p, i == current && !g.Over()))
	}

	if g.Active() && g.IsCurrentPlayerPlaying() {
		p := g.CurrentPlayer()
		lines = append(lines, r.styles.Current.Render(fmt.Sprintf(
			"Player %d to act, holding %s and drawing %s",
			current, r.card(p.HandCard), r.card(g.Drawn()))))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) player(i int, p game.Player, current bool) string {
	marker := "  "
	style := r.styles.Player
	if current {
		marker = "> "
		style = r.styles.Current
	}

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%sPlayer %d", marker, i)))
	if !p.IsPlaying() {
		b.WriteString(" " + r.styles.Eliminated.Render("out"))
	} else {
		b.WriteString(" " + r.card(p.HandCard))
	}
	if p.Protected {
		b.WriteString(" " + r.styles.Protected.Render("[protected]"))
	}
	if len(p.Actions) > 0 {
		played := make([]string, len(p.Actions))
		for j, a := range p.Actions {
			played[j] = a.String()
		}
		b.WriteString(" | " + strings.Join(played, ", "))
	}
	return b.String()
}

func (r *Renderer) card(c card.Card) string {
	return r.styles.Card.Render(c.String())
}

// Result renders the end of game summary
func (r *Renderer) Result(g game.Game, rewards []int) string {
	parts := make([]string, len(rewards))
	for i, v := range rewards {
		parts[i] = fmt.Sprint(v)
	}
	lines := []string{r.styles.Info.Render("rewards: [" + strings.Join(parts, ", ") + "]")}

	if winner, ok := g.Winner(); ok {
		lines = append(lines, r.styles.Success.Render(fmt.Sprintf("Game Over : Player %d Wins!", winner)))
	} else {
		lines = append(lines, r.styles.Error.Render("Game Over : Draw"))
	}
	return strings.Join(lines, "\n")
}

// Error renders an error message
func (r *Renderer) Error(msg string) string {
	return r.styles.Error.Render(msg)
}
