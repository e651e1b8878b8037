// Package viewer is the optional interactive tree browser behind --gui.
// It consumes the already-computed traversal result and nothing else: the
// type index and traversal internals stay out of reach, so the core keeps
// working (and stays testable) without any display dependency.
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"schemascope/internal/traverse"
)

// entry is one collapsible row of the tree.
type entry struct {
	label    string
	typ      string // empty for root rows
	depth    int
	children []*entry
	expanded bool
}

// Model is the bubbletea model for the schema tree browser.
type Model struct {
	roots   []*entry
	visible []*entry
	cursor  int
	vp      viewport.Model
	ready   bool
	width   int
	height  int
}

// NewModel builds the browser over a traversal result. Root types start
// collapsed; everything below unfolds on demand.
func NewModel(res *traverse.Result) Model {
	m := Model{}
	for _, root := range res.Roots() {
		e := &entry{label: root, depth: 0}
		e.children = buildEntries(res.Nodes(root), 1)
		m.roots = append(m.roots, e)
	}
	m.refresh()
	return m
}

func buildEntries(nodes []traverse.Node, depth int) []*entry {
	entries := make([]*entry, 0, len(nodes))
	for _, n := range nodes {
		e := &entry{label: n.Field, typ: n.Type, depth: depth}
		e.children = buildEntries(n.Fields, depth+1)
		entries = append(entries, e)
	}
	return entries
}

func (m *Model) refresh() {
	m.visible = m.visible[:0]
	var walk func(es []*entry)
	walk = func(es []*entry) {
		for _, e := range es {
			m.visible = append(m.visible, e)
			if e.expanded {
				walk(e.children)
			}
		}
	}
	walk(m.roots)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 3 // header + footer
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.visible) - 1
		case "enter", " ", "right", "l":
			if e := m.current(); e != nil && len(e.children) > 0 {
				e.expanded = !e.expanded
				m.refresh()
			}
		case "left", "h":
			if e := m.current(); e != nil && e.expanded {
				e.expanded = false
				m.refresh()
			}
		}
	}

	if m.ready {
		m.vp.SetContent(m.renderTree())
		m.scrollToCursor()
	}
	return m, nil
}

func (m *Model) current() *entry {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

func (m *Model) scrollToCursor() {
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	}
	if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m Model) renderTree() string {
	var b strings.Builder
	for i, e := range m.visible {
		b.WriteString(m.renderRow(e, i == m.cursor))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderRow(e *entry, selected bool) string {
	marker := leafMarker
	if len(e.children) > 0 {
		if e.expanded {
			marker = openMarker
		} else {
			marker = closedMarker
		}
	}
	indent := strings.Repeat("  ", e.depth)

	var row string
	if e.typ == "" {
		row = fmt.Sprintf("%s%s %s", indent, marker, rootStyle.Render(e.label))
	} else {
		row = fmt.Sprintf("%s%s %s %s", indent, marker,
			fieldStyle.Render(e.label), typeStyle.Render(e.typ))
	}
	if selected {
		return cursorStyle.Render(row)
	}
	return row
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	header := headerStyle.Render(fmt.Sprintf("schemascope - %d types", len(m.roots)))
	footer := footerStyle.Render("↑/↓ move · enter expand · h collapse · q quit")
	return header + "\n" + m.vp.View() + "\n" + footer
}
