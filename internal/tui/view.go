package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mobil-koeln/trex/internal/explorer"
	"github.com/mobil-koeln/trex/internal/models"
	"github.com/mobil-koeln/trex/internal/selection"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	statusBar := m.renderStatusBar()
	bodyHeight := max(m.height-lipgloss.Height(statusBar), 4)

	var body string
	switch v := m.nav.View().(type) {
	case *explorer.PickerView:
		body = renderPicker(v, m.width, bodyHeight)
	case *explorer.MapView:
		body = renderMapView(v, m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

// renderPicker renders the infrastructure list over the full body.
func renderPicker(v *explorer.PickerView, width, height int) string {
	list := renderList(v.List(), models.InfrastructureSummary.Label, true, width-2, height-3)
	return renderPanel("Infrastrukturen", list, true, width, height)
}

// renderMapView renders the two lists stacked on the left 30% and the map
// on the remaining 70%.
func renderMapView(v *explorer.MapView, width, height int) string {
	leftWidth := max(width*30/100, 12)
	rightWidth := max(width-leftWidth, 12)
	topHeight := height / 2
	bottomHeight := height - topHeight

	stationsFocused := v.Active() == explorer.PaneStations
	stations := renderPanel("Betriebsstellen",
		renderList(v.Stations(), models.Station.Label, stationsFocused, leftWidth-2, topHeight-3),
		stationsFocused, leftWidth, topHeight)
	segments := renderPanel("Streckensegmente",
		renderList(v.Segments(), models.Segment.Label, !stationsFocused, leftWidth-2, bottomHeight-3),
		!stationsFocused, leftWidth, bottomHeight)
	left := lipgloss.JoinVertical(lipgloss.Left, stations, segments)

	graph := v.Graph()
	title := "Karte " + styleMuted.Render(truncate(graph.Label(), rightWidth-10))
	canvas := renderMapCanvas(v, rightWidth-2, height-3)
	right := renderPanel(title, canvas, false, rightWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderPanel wraps content in a bordered box of the given outer size with
// a title line.
func renderPanel(title, content string, focused bool, width, height int) string {
	border := stylePanelNormal
	if focused {
		border = stylePanelFocused
	}
	return border.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		Render(styleHeader.Render(title) + "\n" + content)
}

// renderList renders the window of list that keeps the cursor visible.
// width and height are the space available for items.
func renderList[T any](list *selection.List[T], label func(T) string, focused bool, width, height int) string {
	if list.Len() == 0 {
		return styleMuted.Render(" (leer)")
	}

	cursor, hasCursor := list.Selected()
	start, end := visibleRange(max(cursor, 0), list.Len(), max(height, 1))
	items := list.Items()

	var b strings.Builder
	for i := start; i < end; i++ {
		name := truncate(label(items[i]), width-3)
		switch {
		case hasCursor && i == cursor && focused:
			b.WriteString(styleSelected.Render(" > " + name))
		case hasCursor && i == cursor:
			b.WriteString(" > " + name)
		default:
			b.WriteString("   " + name)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderStatusBar renders the load state or last error followed by the
// keys that work in the current view.
func (m Model) renderStatusBar() string {
	var state string
	switch {
	case m.err != nil:
		state = styleError.Render("Error: " + m.err.Error())
	case m.busy():
		state = m.spinner.View() + styleLoading.Render(" Loading...")
	}

	bindings := m.keys.bindingsFor(m.nav.View())
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, styleKey.Render(h.Key)+" "+h.Desc)
	}

	line := " " + strings.Join(hints, "  ")
	if state != "" {
		line = " " + state + "  " + line
	}
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), max(m.width, 1), "")

	return styleStatusBar.Width(m.width).Render(line)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate shortens s to the given display width, marking the cut with ~.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, "~")
}
