package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"prime-catacombs/generation"
)

var (
	iterationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(6).Align(lipgloss.Right)
	primeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	compositeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	levelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("67"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true)
)

// explore prints the numbers reachable from start, one per line:
// "<n>: <value> (Level <k>)"
func explore(w io.Writer, start string, base int, allowComposite bool, limit int) error {
	found, err := generation.Explore(start, base, allowComposite, limit, func(d generation.Discovery) {
		value := primeStyle.Render(d.Number.Value)
		if !d.Number.IsPrime {
			value = compositeStyle.Render(d.Number.Value)
		}
		fmt.Fprintf(w, "%s: %s %s\n",
			iterationStyle.Render(fmt.Sprint(d.Iteration)),
			value,
			levelStyle.Render(fmt.Sprintf("(Level %d)", d.Level)))
	})
	if err != nil {
		return err
	}
	if found < limit {
		fmt.Fprintln(w, doneStyle.Render("No more numbers!"))
	}
	return nil
}
