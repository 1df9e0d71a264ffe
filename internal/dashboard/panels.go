package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"spacewx/internal/models"
	"spacewx/internal/plot"
)

// windPlotSamples is how many of the most recent wind samples feed the
// sparkline block.
const windPlotSamples = 30

// solarWindPanel renders the wind sparkline block plus the latest reading.
func solarWindPanel(res models.Result[models.WindSample]) string {
	if !res.Available() {
		return "No solar wind data available."
	}

	samples := res.Records
	latest := samples[len(samples)-1]

	recent := samples
	if len(recent) > windPlotSamples {
		recent = recent[len(recent)-windPlotSamples:]
	}

	speeds := make([]float64, len(recent))
	for i, s := range recent {
		speeds[i] = s.Speed
	}
	summary := plot.Summarize(speeds)

	lines := []string{
		fmt.Sprintf(" Speed (km/s)  %s", summary.Sparkline),
		fmt.Sprintf(" Min: %.1f    Median: %.1f    Max: %.1f", summary.Min, summary.Median, summary.Max),
		fmt.Sprintf(" Time: %s     %s", formatClock(recent[0].TimeTag), formatClock(recent[len(recent)-1].TimeTag)),
		"",
		fmt.Sprintf("Speed: %.1f km/s", latest.Speed),
		fmt.Sprintf("Density: %.2f p/cm³", latest.Density),
	}
	return strings.Join(lines, "\n")
}

// geomagneticPanel renders the current Kp index with a 9-step bar.
func geomagneticPanel(res models.Result[models.KIndexSample]) string {
	if !res.Available() {
		return "No K-index data available."
	}

	kp := res.Records[len(res.Records)-1].KIndex

	level := "Quiet"
	if kp >= 6 {
		level = "Storm"
	} else if kp >= 4 {
		level = "Active"
	}

	filled := int(kp)
	if filled < 0 {
		filled = 0
	}
	if filled > 9 {
		filled = 9
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 9-filled)

	return fmt.Sprintf("Kp Index: %.1f/9\nStatus: %s\n[%s]", kp, level, bar)
}

// fluxPanel renders today's F10.7cm flux with a trend arrow against the
// previous reading.
func fluxPanel(res models.Result[models.FluxSample]) string {
	if !res.Available() {
		return "No solar flux data available."
	}

	samples := res.Records
	today := samples[len(samples)-1].Flux
	yesterday := today
	if len(samples) > 1 {
		yesterday = samples[len(samples)-2].Flux
	}

	trend := "➡️"
	if today > yesterday {
		trend = "🔺"
	} else if today < yesterday {
		trend = "🔻"
	}

	return fmt.Sprintf("F10.7 cm Flux: %.1f sfu\nYesterday: %.1f sfu\nTrend: %s", today, yesterday, trend)
}

// sunspotPanel aggregates the region report into counts.
func sunspotPanel(res models.Result[models.SunspotRegion]) string {
	if !res.Available() {
		return "No sunspot data available."
	}

	total := 0
	for _, r := range res.Records {
		total += r.SpotCount
	}
	return fmt.Sprintf("Active Regions: %d\nTotal Sunspots: %d", len(res.Records), total)
}

// cmePanel renders recent CME events as table rows.
func cmePanel(res models.Result[models.CmeEvent]) string {
	if !res.Available() {
		return "No recent CME data."
	}

	rows := []string{fmt.Sprintf("%-22s %-12s %s", "Start Time", "Location", "Link")}
	for _, e := range res.Records {
		rows = append(rows, fmt.Sprintf("%-22s %-12s %s", e.StartTime, e.SourceLocation, linkOrPlaceholder(e.Link)))
	}
	return strings.Join(rows, "\n")
}

// flarePanel renders recent solar flares as table rows.
func flarePanel(res models.Result[models.FlareEvent]) string {
	if !res.Available() {
		return "No recent flare data."
	}

	rows := []string{fmt.Sprintf("%-20s %-8s %-12s %s", "Begin", "Class", "Location", "Link")}
	for _, f := range res.Records {
		rows = append(rows, fmt.Sprintf("%-20s %-8s %-12s %s", f.BeginTime, f.ClassType, f.SourceLocation, linkOrPlaceholder(f.Link)))
	}
	return strings.Join(rows, "\n")
}

// stormPanel renders recent geomagnetic storms as table rows.
func stormPanel(res models.Result[models.GeomagStorm]) string {
	if !res.Available() {
		return "No recent storms found."
	}

	rows := []string{fmt.Sprintf("%-22s %-9s %s", "Start Time", "Kp Index", "Link")}
	for _, s := range res.Records {
		kp := "N/A"
		if s.KpIndex != nil {
			kp = strconv.FormatFloat(*s.KpIndex, 'g', -1, 64)
		}
		rows = append(rows, fmt.Sprintf("%-22s %-9s %s", s.StartTime, kp, linkOrPlaceholder(s.Link)))
	}
	return strings.Join(rows, "\n")
}

// alertsPanel lists recent notifications with their issue dates.
func alertsPanel(res models.Result[models.Alert]) string {
	if !res.Available() {
		return "No recent space weather alerts."
	}

	var lines []string
	for _, a := range res.Records {
		date := []rune(a.MessageIssueTime)
		if len(date) > 10 {
			date = date[:10]
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", a.MessageType, string(date)))
	}
	return strings.Join(lines, "\n")
}

func linkOrPlaceholder(link string) string {
	if link == "" {
		return "#"
	}
	return link
}

// formatClock reduces a provider time tag to HH:MM. Both timestamp shapes
// the providers emit are accepted; anything else is shown as its first
// eight characters.
func formatClock(tag string) string {
	if tag == "" {
		return ""
	}

	s := tag
	if idx := strings.Index(s, "."); idx != -1 {
		s = s[:idx]
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if dt, err := time.Parse(layout, s); err == nil {
			return dt.Format("15:04")
		}
	}

	r := []rune(tag)
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r)
}
