package main

import (
	"fmt"
	"strings"

	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/scenario"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	stateColors = map[locomotion.State]lipgloss.Color{
		locomotion.Grounded:      lipgloss.Color("#4488ff"),
		locomotion.Jumping:       lipgloss.Color("#88ccff"),
		locomotion.Falling:       lipgloss.Color("#aa99ff"),
		locomotion.WallSliding:   lipgloss.Color("#ff8855"),
		locomotion.WallJumping:   lipgloss.Color("#ffbb77"),
		locomotion.RoofClimbing:  lipgloss.Color("#66dd99"),
		locomotion.RoofJumping:   lipgloss.Color("#99eebb"),
		locomotion.LedgeGrabbing: lipgloss.Color("#ffdd55"),
		locomotion.LedgeClimbing: lipgloss.Color("#ffee99"),
	}
)

func stateText(s locomotion.State) string {
	return lipgloss.NewStyle().Foreground(stateColors[s]).Render(s.String())
}

// renderResult formats one run as a titled box of transitions.
func renderResult(name, level string, res *scenario.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  level %s, %d frames, %d ticks", level, res.Frames, res.Ticks)))
	b.WriteString("\n\n")

	if len(res.Transitions) == 0 {
		b.WriteString(dimStyle.Render("no transitions"))
		b.WriteString("\n")
	}
	for _, t := range res.Transitions {
		fmt.Fprintf(&b, "%s %s -> %s %s\n",
			dimStyle.Render(fmt.Sprintf("f%-5d t%-5d", t.Frame, t.Tick)),
			stateText(t.From),
			stateText(t.To),
			dimStyle.Render(fmt.Sprintf("(%.2f, %.2f)", t.Position.X, t.Position.Y)),
		)
	}

	fmt.Fprintf(&b, "\nfinal %s at feet (%.1f, %.1f)", stateText(res.Final), res.FeetX, res.FeetY)
	if res.FellOut {
		b.WriteString(" ")
		b.WriteString(warnStyle.Render("fell out of the map"))
	}
	return boxStyle.Render(b.String())
}
