package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/palletlab/warevis/pkg/warehouse"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// dashboardCommand creates the dashboard command for browsing layouts.
func (c *CLI) dashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard [config.json|layout.json]",
		Short: "Browse a warehouse layout interactively",
		Long: `Browse a warehouse layout interactively.

The dashboard opens a terminal UI with two levels: a block list showing each
block's envelope and cell counts, and a rack table for the selected block
showing every cell's indices, position, and pallet occupancy.

Keys: up/down navigate, enter drills into a block, esc goes back, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDashboard(cmd.Context(), args[0])
		},
	}
	return cmd
}

// runDashboard loads or resolves the layout and runs the TUI.
func (c *CLI) runDashboard(ctx context.Context, input string) error {
	layout, _, err := c.loadOrResolve(withLogger(ctx, c.Logger), input)
	if err != nil {
		return err
	}

	model := NewLayoutBrowserModel(layout)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// =============================================================================
// LayoutBrowserModel - Interactive layout browsing
// =============================================================================

// browseLevel selects which view the browser shows.
type browseLevel int

const (
	levelBlocks browseLevel = iota
	levelRacks
)

// LayoutBrowserModel is the bubbletea model for browsing a resolved layout.
type LayoutBrowserModel struct {
	Layout warehouse.Layout

	level       browseLevel
	blockCursor int
	rackCursor  int
	Height      int
	offset      int
}

// NewLayoutBrowserModel creates a browser positioned on the first block.
func NewLayoutBrowserModel(l warehouse.Layout) LayoutBrowserModel {
	return LayoutBrowserModel{Layout: l, Height: 15}
}

func (m LayoutBrowserModel) Init() tea.Cmd {
	return nil
}

func (m LayoutBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.level == levelRacks {
				m.level = levelBlocks
				m.rackCursor = 0
				m.offset = 0
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "enter":
			if m.level == levelBlocks && len(m.Layout.Blocks) > 0 {
				m.level = levelRacks
				m.rackCursor = 0
				m.offset = 0
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

// moveCursor moves the active cursor by delta and keeps it in view.
func (m *LayoutBrowserModel) moveCursor(delta int) {
	cursor, limit := &m.blockCursor, len(m.Layout.Blocks)
	if m.level == levelRacks {
		cursor, limit = &m.rackCursor, len(m.currentBlock().Racks)
	}

	next := *cursor + delta
	if next < 0 || next >= limit {
		return
	}
	*cursor = next

	if *cursor < m.offset {
		m.offset = *cursor
	}
	if *cursor >= m.offset+m.Height {
		m.offset = *cursor - m.Height + 1
	}
}

func (m LayoutBrowserModel) currentBlock() warehouse.Block {
	if m.blockCursor < len(m.Layout.Blocks) {
		return m.Layout.Blocks[m.blockCursor]
	}
	return warehouse.Block{}
}

func (m LayoutBrowserModel) View() string {
	if m.level == levelRacks {
		return m.viewRacks()
	}
	return m.viewBlocks()
}

func (m LayoutBrowserModel) viewBlocks() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Warehouse Blocks"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	if len(m.Layout.Blocks) == 0 {
		b.WriteString(listDimStyle.Render("  no blocks in this layout"))
		return b.String()
	}

	rows := [][]string{}
	end := m.offset + m.Height
	if end > len(m.Layout.Blocks) {
		end = len(m.Layout.Blocks)
	}
	for i := m.offset; i < end; i++ {
		blk := m.Layout.Blocks[i]
		cursor := "  "
		if i == m.blockCursor {
			cursor = "▸ "
		}

		pallets := 0
		for _, r := range blk.Racks {
			pallets += len(r.Pallets)
		}

		rows = append(rows, []string{
			cursor,
			blk.ID,
			formatExtent(blk.Dimensions),
			formatPoint(blk.Position),
			fmt.Sprintf("%d", len(blk.Racks)),
			fmt.Sprintf("%d", pallets),
		})
	}

	b.WriteString(renderBrowserTable(
		[]string{"", "Block", "L×W×H (cm)", "Center", "Cells", "Pallets"},
		rows, m.blockCursor-m.offset))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.blockCursor+1, len(m.Layout.Blocks))))

	return b.String()
}

func (m LayoutBrowserModel) viewRacks() string {
	var b strings.Builder
	blk := m.currentBlock()

	b.WriteString(StyleTitle.Render("Block " + blk.ID))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  esc back  q quit"))
	b.WriteString("\n\n")

	if len(blk.Racks) == 0 {
		b.WriteString(listDimStyle.Render("  no rack cells in this block"))
		return b.String()
	}

	rows := [][]string{}
	end := m.offset + m.Height
	if end > len(blk.Racks) {
		end = len(blk.Racks)
	}
	for i := m.offset; i < end; i++ {
		cell := blk.Racks[i]
		cursor := "  "
		if i == m.rackCursor {
			cursor = "▸ "
		}

		occupancy := "—"
		if n := len(cell.Pallets); n > 0 {
			occupancy = fmt.Sprintf("%d × %s", n, cell.Pallets[0].Type)
		}

		rows = append(rows, []string{
			cursor,
			cell.ID,
			fmt.Sprintf("F%d R%d C%d", cell.Indices.Floor, cell.Indices.Row, cell.Indices.Col),
			formatPoint(cell.Position),
			formatExtent(cell.Dimensions),
			occupancy,
		})
	}

	b.WriteString(renderBrowserTable(
		[]string{"", "Cell", "Index", "Center", "L×W×H (cm)", "Pallets"},
		rows, m.rackCursor-m.offset))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.rackCursor+1, len(blk.Racks))))

	return b.String()
}

// renderBrowserTable renders rows in a bordered table highlighting one row.
func renderBrowserTable(headers []string, rows [][]string, selected int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == selected {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	return t.Render()
}

// =============================================================================
// Helpers
// =============================================================================

func formatPoint(p warehouse.Point) string {
	return fmt.Sprintf("(%.0f, %.0f, %.0f)", p.X, p.Y, p.Z)
}

func formatExtent(e warehouse.Extent) string {
	return fmt.Sprintf("%.0f×%.0f×%.0f", e.Length, e.Width, e.Height)
}
