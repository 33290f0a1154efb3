package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aslanistan/schemtex/pkg/errors"
	"github.com/aslanistan/schemtex/pkg/netlist"
	"github.com/aslanistan/schemtex/pkg/schematic"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing parsed components.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [circuit.sch]",
		Short: "Browse the parsed components interactively",
		Long: `Browse the parsed components interactively.

The inspect command parses the netlist and opens a scrollable list of its
components. The detail pane shows each component's nodes, options and solved
orientation, which is usually enough to find why an element refuses to sit
where it should.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}

	return cmd
}

func (c *CLI) runInspect(input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "netlist %s", input)
		}
		return fmt.Errorf("read netlist %s: %w", input, err)
	}

	sch, err := netlist.Build(string(data), nil)
	if err != nil {
		return err
	}

	model := newComponentListModel(input, sch.Components())
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run inspector: %w", err)
	}
	return nil
}

// =============================================================================
// ComponentListModel - Interactive component browsing
// =============================================================================

// ComponentListModel is the bubbletea model for the component browser.
type ComponentListModel struct {
	Title      string
	Components []schematic.Component
	Cursor     int
	Height     int
	Offset     int
}

func newComponentListModel(title string, components []schematic.Component) ComponentListModel {
	return ComponentListModel{
		Title:      title,
		Components: components,
		Height:     15,
	}
}

func (m ComponentListModel) Init() tea.Cmd {
	return nil
}

func (m ComponentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Components)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ComponentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Components · " + m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Components) {
		end = len(m.Components)
	}
	for i := m.Offset; i < end; i++ {
		c := m.Components[i]
		line := fmt.Sprintf("%-10s %s", c.Name(), strings.Join(c.Nodes(), " "))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.Components) > 0 {
		b.WriteString("\n")
		b.WriteString(m.detail(m.Components[m.Cursor]))
	}
	return b.String()
}

// detail formats the detail pane for the selected component.
func (m ComponentListModel) detail(c schematic.Component) string {
	var parts []string
	parts = append(parts, "netlist: "+c.String())
	if opts := c.Opts(); len(opts) > 0 {
		if dir, ok := opts["dir"]; ok {
			parts = append(parts, "orientation: "+dir)
		}
	}
	if vnodes := c.VNodes(); len(vnodes) != len(c.Nodes()) {
		parts = append(parts, "drawn nodes: "+strings.Join(vnodes, " "))
	}
	return listDimStyle.Render(strings.Join(parts, "\n"))
}
