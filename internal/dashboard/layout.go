package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"spacewx/internal/config"
	"spacewx/internal/models"
)

// Panel titles and border colors mirror the fixed display layout: header,
// footer, and eight content regions arranged left/center/right.
var (
	colorBlue    = lipgloss.Color("12")
	colorCyan    = lipgloss.Color("14")
	colorYellow  = lipgloss.Color("11")
	colorMagenta = lipgloss.Color("13")
	colorRed     = lipgloss.Color("9")
	colorGreen   = lipgloss.Color("10")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue)

	footerStyle = lipgloss.NewStyle().
			Faint(true).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen)
)

// panel is one renderable region of the frame.
type panel struct {
	title  string
	body   string
	border lipgloss.Color
}

// Layout geometry. Side columns are fixed-width; the center column takes
// the remainder.
const (
	minFrameWidth  = 140
	minFrameHeight = 24
	sideColWidth   = 50
	chromeHeight   = 3 // header and footer rows, border included
)

// BuildFrame composes one complete display frame from a snapshot. Every
// feed gets a panel whether or not it produced data; unavailable feeds
// render their placeholder text instead of records.
func BuildFrame(snap models.Snapshot, width, height int) string {
	if width < minFrameWidth {
		width = minFrameWidth
	}
	if height < minFrameHeight {
		height = minFrameHeight
	}

	mainH := height - 2*chromeHeight
	halfH := mainH / 2
	thirdH := mainH / 3
	centerW := width - 2*sideColWidth

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderPanel(panel{"Solar Wind (ACE)", solarWindPanel(snap.Wind), colorBlue}, sideColWidth, halfH),
		renderPanel(panel{"Geomagnetic K-Index", geomagneticPanel(snap.KIndex), colorYellow}, sideColWidth, mainH-halfH),
	)
	center := lipgloss.JoinVertical(lipgloss.Left,
		renderPanel(panel{"Recent Coronal Mass Ejections", cmePanel(snap.CMEs), colorCyan}, centerW, thirdH),
		renderPanel(panel{"Recent Solar Flares", flarePanel(snap.Flares), colorRed}, centerW, thirdH),
		renderPanel(panel{"Space Weather Alerts", alertsPanel(snap.Alerts), colorRed}, centerW, mainH-2*thirdH),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderPanel(panel{"Sunspot Regions", sunspotPanel(snap.Sunspots), colorYellow}, sideColWidth, thirdH),
		renderPanel(panel{"Solar Flux Index", fluxPanel(snap.Flux), colorMagenta}, sideColWidth, thirdH),
		renderPanel(panel{"Recent Geomagnetic Storms", stormPanel(snap.Storms), colorGreen}, sideColWidth, mainH-2*thirdH),
	)

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, center, right)

	header := headerStyle.Width(width - 2).Render("🚀 Space Weather CLI Dashboard")
	footer := footerStyle.Width(width - 2).Render(fmt.Sprintf(
		"Last Updated: %s UTC | v%s",
		snap.FetchedAt.UTC().Format("2006-01-02 15:04:05"),
		config.GetVersion(),
	))

	return lipgloss.JoinVertical(lipgloss.Left, header, main, footer)
}

// renderPanel draws one bordered region of w×h cells with a styled title
// line above the body.
func renderPanel(p panel, w, h int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.border).Render(p.title)
	body := lipgloss.JoinVertical(lipgloss.Left, title, p.body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1).
		Width(w - 2).
		Height(h - 2).
		MaxHeight(h).
		Render(body)
}
