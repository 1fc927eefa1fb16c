package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/spatialnav/internal/board"
	"github.com/oakwood-commons/spatialnav/internal/config"
	"github.com/oakwood-commons/spatialnav/internal/toast"
)

// Animation classes map onto text attributes; unknown names render bold.
const (
	ClassPulse     = "pulse"
	ClassReverse   = "reverse"
	ClassUnderline = "underline"
	ClassBold      = "bold"
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	// Held keys arrive flagged as repeats so the dispatcher can drop them.
	v.KeyboardEnhancements.ReportEventTypes = true
	return v
}

// Render returns the full screen as a string.
func (m *Model) Render() string {
	if m.quitting {
		return ""
	}
	sections := []string{m.headerView(), m.boardView()}
	if t := m.toastView(); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections, m.statusView(), m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// chromeHeight is the number of lines outside the board viewport.
func (m *Model) chromeHeight() int {
	h := 2 // header and status
	h += lipgloss.Height(m.footerView())
	if t := m.toastView(); t != "" {
		h += lipgloss.Height(t)
	}
	return h
}

func (m *Model) headerView() string {
	title := m.AppName
	if id := m.FocusedID(); id != "" {
		title += " · " + id
	}
	style := lipgloss.NewStyle().Bold(true)
	if !m.NoColor {
		style = style.Foreground(lipgloss.Color("81"))
	}
	return style.Render(title)
}

func (m *Model) statusView() string {
	style := lipgloss.NewStyle()
	if !m.NoColor {
		style = style.Foreground(lipgloss.Color("245"))
	}
	return style.Render(m.Status)
}

func (m *Model) footerView() string {
	m.help.ShowAll = m.ShowFullHelp
	return m.help.View(m.keys)
}

// toastView renders active toasts right-aligned, newest last.
func (m *Model) toastView() string {
	active := m.Toasts.Active()
	if len(active) == 0 {
		return ""
	}
	lines := make([]string, 0, len(active))
	for _, t := range active {
		style := lipgloss.NewStyle().Padding(0, 1)
		if !m.NoColor {
			fg := lipgloss.Color("15")
			bg := lipgloss.Color("24")
			if t.Level == toast.Warning {
				bg = lipgloss.Color("130")
			}
			style = style.Foreground(fg).Background(bg)
		}
		lines = append(lines, lipgloss.PlaceHorizontal(m.WinWidth, lipgloss.Right, style.Render(t.Message)))
	}
	return strings.Join(lines, "\n")
}

// boardView renders every row, then crops to the viewport at ScrollY.
func (m *Model) boardView() string {
	rows := m.Board.Rows()
	gapCol := strings.Repeat(" ", m.Board.ColGap())
	rendered := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, 2*len(row))
		for j, t := range row {
			if j > 0 && gapCol != "" {
				cells = append(cells, gapCol)
			}
			cells = append(cells, m.tileView(t))
		}
		rendered[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	full := strings.Join(rendered, "\n"+strings.Repeat("\n", m.Board.RowGap()))

	lines := strings.Split(full, "\n")
	vh := m.viewportHeight()
	start := m.clampScroll(m.ScrollY)
	end := start + vh
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[start:end]
	for len(visible) < vh {
		visible = append(visible, "")
	}
	return lipgloss.NewStyle().MaxWidth(m.WinWidth).Render(strings.Join(visible, "\n"))
}

// tileView renders one tile with its focus treatment. Unfocused tiles keep a
// hidden border so every tile occupies the same cells either way.
func (m *Model) tileView(t board.Tile) string {
	tr := m.Presenter.Treatment(t.ID())
	style := lipgloss.NewStyle().Border(lipgloss.HiddenBorder())
	if strings.EqualFold(t.Kind(), config.KindLabel) && !m.NoColor {
		style = style.Faint(true)
	}
	if tr == nil {
		return style.Render(t.Text())
	}
	if tr.Outline != nil {
		style = style.Border(borderFor(tr.Outline.Thickness, tr.Radius))
		if !m.NoColor && tr.Outline.Color != "" {
			style = style.BorderForeground(lipgloss.Color(tr.Outline.Color))
		}
	}
	if tr.Background != "" && !m.NoColor {
		style = style.Background(lipgloss.Color(tr.Background))
	}
	for _, class := range tr.ClassNames() {
		switch class {
		case ClassPulse:
			style = style.Blink(true)
		case ClassReverse:
			style = style.Reverse(true)
		case ClassUnderline:
			style = style.Underline(true)
		default:
			style = style.Bold(true)
		}
	}
	return style.Render(t.Text())
}

// borderFor picks the terminal border closest to a CSS outline: a non-zero
// radius rounds the corners, otherwise thickness selects normal, thick or
// double lines.
func borderFor(thickness, radius string) lipgloss.Border {
	if parseLength(radius) > 0 {
		return lipgloss.RoundedBorder()
	}
	switch w := parseLength(thickness); {
	case w >= 3:
		return lipgloss.DoubleBorder()
	case w >= 2:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
