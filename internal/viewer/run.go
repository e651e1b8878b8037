package viewer

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"schemascope/internal/traverse"
)

// Run launches the interactive browser over a traversal result. It refuses
// to start when stdout is not a terminal, so piped invocations fail loudly
// instead of emitting escape sequences into the pipe.
func Run(res *traverse.Result) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("viewer: stdout is not a terminal; drop --gui when piping output")
	}
	if res.Len() == 0 {
		return fmt.Errorf("viewer: nothing to browse, no domain types in schema")
	}
	p := tea.NewProgram(NewModel(res), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
