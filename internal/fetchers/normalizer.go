package fetchers

import (
	"strconv"
	"strings"

	"spacewx/internal/models"
)

// Windowing and truncation policy per feed.
const (
	// EventHistoryCount is how many DONKI events are kept per category.
	EventHistoryCount = 5
	// AlertBodyRunes is the fixed truncation length for alert bodies. The
	// ellipsis is appended unconditionally, even to shorter bodies.
	AlertBodyRunes = 200
	// WindHistorySamples is how many qualifying wind samples are kept.
	WindHistorySamples = 60
	// KIndexHistorySamples is how many K-index entries are kept.
	KIndexHistorySamples = 20
	// FluxHistorySamples is how many F10.7cm flux entries are kept.
	FluxHistorySamples = 5
)

// DataNormalizer shapes raw provider JSON into typed records. All lookups
// are permissive: a missing or malformed field yields a placeholder or a
// skipped element, never an error. A non-list top-level value for a feed
// that expects a list is reported as no-data.
type DataNormalizer struct{}

// NewDataNormalizer creates a new data normalizer instance
func NewDataNormalizer() *DataNormalizer {
	return &DataNormalizer{}
}

// NormalizeCMEs shapes a DONKI CME response, keeping the first
// EventHistoryCount events (input order is assumed reverse-chronological).
func (n *DataNormalizer) NormalizeCMEs(raw any) models.Result[models.CmeEvent] {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return models.NoData[models.CmeEvent]()
	}

	events := make([]models.CmeEvent, 0, EventHistoryCount)
	for _, el := range list {
		if len(events) == EventHistoryCount {
			break
		}
		m, ok := asMap(el)
		if !ok {
			continue
		}
		events = append(events, models.CmeEvent{
			StartTime:      stringField(m, "startTime", "N/A"),
			SourceLocation: stringField(m, "sourceLocation", "N/A"),
			Catalog:        stringField(m, "catalog", "N/A"),
			Link:           stringField(m, "link", ""),
		})
	}
	if len(events) == 0 {
		return models.NoData[models.CmeEvent]()
	}
	return models.OK(events)
}

// NormalizeFlares shapes a DONKI FLR response.
func (n *DataNormalizer) NormalizeFlares(raw any) models.Result[models.FlareEvent] {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return models.NoData[models.FlareEvent]()
	}

	flares := make([]models.FlareEvent, 0, EventHistoryCount)
	for _, el := range list {
		if len(flares) == EventHistoryCount {
			break
		}
		m, ok := asMap(el)
		if !ok {
			continue
		}
		flares = append(flares, models.FlareEvent{
			BeginTime:      stringField(m, "beginTime", "N/A"),
			PeakTime:       stringField(m, "peakTime", "N/A"),
			ClassType:      stringField(m, "classType", "N/A"),
			SourceLocation: stringField(m, "sourceLocation", "N/A"),
			Link:           stringField(m, "link", ""),
		})
	}
	if len(flares) == 0 {
		return models.NoData[models.FlareEvent]()
	}
	return models.OK(flares)
}

// NormalizeStorms shapes a DONKI GST response. The Kp index is taken from
// the first element of the event's nested allKpIndex list when present;
// an absent or empty nested list yields a nil Kp, never an error.
func (n *DataNormalizer) NormalizeStorms(raw any) models.Result[models.GeomagStorm] {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return models.NoData[models.GeomagStorm]()
	}

	storms := make([]models.GeomagStorm, 0, EventHistoryCount)
	for _, el := range list {
		if len(storms) == EventHistoryCount {
			break
		}
		m, ok := asMap(el)
		if !ok {
			continue
		}

		var kp *float64
		if nested, ok := m["allKpIndex"].([]any); ok && len(nested) > 0 {
			if first, ok := asMap(nested[0]); ok {
				if v, ok := coerceFloat(first["kpIndex"]); ok {
					kp = &v
				}
			}
		}

		storms = append(storms, models.GeomagStorm{
			StartTime: stringField(m, "startTime", "N/A"),
			KpIndex:   kp,
			Link:      stringField(m, "link", ""),
		})
	}
	if len(storms) == 0 {
		return models.NoData[models.GeomagStorm]()
	}
	return models.OK(storms)
}

// NormalizeAlerts shapes a DONKI notifications response. Bodies are
// truncated to their first AlertBodyRunes runes with an ellipsis appended
// regardless of original length; this is a fixed policy, not adaptive.
func (n *DataNormalizer) NormalizeAlerts(raw any) models.Result[models.Alert] {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return models.NoData[models.Alert]()
	}

	alerts := make([]models.Alert, 0, EventHistoryCount)
	for _, el := range list {
		if len(alerts) == EventHistoryCount {
			break
		}
		m, ok := asMap(el)
		if !ok {
			continue
		}

		body := []rune(stringField(m, "messageBody", ""))
		if len(body) > AlertBodyRunes {
			body = body[:AlertBodyRunes]
		}

		alerts = append(alerts, models.Alert{
			MessageType:      stringField(m, "messageType", "Alert"),
			MessageIssueTime: stringField(m, "messageIssueTime", "N/A"),
			MessageBody:      string(body) + "...",
		})
	}
	if len(alerts) == 0 {
		return models.NoData[models.Alert]()
	}
	return models.OK(alerts)
}

// NormalizeWind shapes the NOAA real-time solar wind feed. Elements whose
// speed or density is present but uncoercible are skipped; an absent field
// defaults to zero. Only samples with speed > 0 qualify, and the last
// WindHistorySamples qualifying samples are kept in original order.
func (n *DataNormalizer) NormalizeWind(raw any) models.Result[models.WindSample] {
	list, ok := asList(raw)
	if !ok {
		return models.NoData[models.WindSample]()
	}

	var samples []models.WindSample
	for _, el := range list {
		m, ok := asMap(el)
		if !ok {
			continue
		}
		speed, ok := coerceFieldFloat(m, "proton_speed")
		if !ok {
			continue
		}
		density, ok := coerceFieldFloat(m, "proton_density")
		if !ok {
			continue
		}
		if speed <= 0 {
			continue
		}
		samples = append(samples, models.WindSample{
			TimeTag: stringField(m, "time_tag", ""),
			Speed:   speed,
			Density: density,
		})
	}
	if len(samples) == 0 {
		return models.NoData[models.WindSample]()
	}
	if len(samples) > WindHistorySamples {
		samples = samples[len(samples)-WindHistorySamples:]
	}
	return models.OK(samples)
}

// NormalizeKIndex shapes the NOAA planetary K-index feed, keeping the last
// KIndexHistorySamples entries verbatim (lenient coercion, default 0).
func (n *DataNormalizer) NormalizeKIndex(raw any) models.Result[models.KIndexSample] {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return models.NoData[models.KIndexSample]()
	}

	start := 0
	if len(list) > KIndexHistorySamples {
		start = len(list) - KIndexHistorySamples
	}

	samples := make([]models.KIndexSample, 0, KIndexHistorySamples)
	for _, el := range list[start:] {
		m, ok := asMap(el)
		if !ok {
			continue
		}
		samples = append(samples, models.KIndexSample{
			TimeTag: stringField(m, "time_tag", ""),
			KIndex:  lenientFloat(m, "k_index"),
		})
	}
	if len(samples) == 0 {
		return models.NoData[models.KIndexSample]()
	}
	return models.OK(samples)
}

// NormalizeFlux shapes the NOAA F10.7cm flux feed, keeping the last
// FluxHistorySamples entries.
func (n *DataNormalizer) NormalizeFlux(raw any) models.Result[models.FluxSample] {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return models.NoData[models.FluxSample]()
	}

	start := 0
	if len(list) > FluxHistorySamples {
		start = len(list) - FluxHistorySamples
	}

	samples := make([]models.FluxSample, 0, FluxHistorySamples)
	for _, el := range list[start:] {
		m, ok := asMap(el)
		if !ok {
			continue
		}
		samples = append(samples, models.FluxSample{
			TimeTag: stringField(m, "time_tag", ""),
			Flux:    lenientFloat(m, "flux"),
		})
	}
	if len(samples) == 0 {
		return models.NoData[models.FluxSample]()
	}
	return models.OK(samples)
}

// NormalizeSunspots shapes the NOAA sunspot report. No windowing; the
// region count and spot total are aggregated at render time.
func (n *DataNormalizer) NormalizeSunspots(raw any) models.Result[models.SunspotRegion] {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return models.NoData[models.SunspotRegion]()
	}

	regions := make([]models.SunspotRegion, 0, len(list))
	for _, el := range list {
		m, ok := asMap(el)
		if !ok {
			continue
		}
		regions = append(regions, models.SunspotRegion{
			TimeTag:   stringField(m, "time_tag", ""),
			Region:    stringField(m, "region", ""),
			SpotCount: intField(m, "spot_count"),
		})
	}
	if len(regions) == 0 {
		return models.NoData[models.SunspotRegion]()
	}
	return models.OK(regions)
}

// asList returns the value as a JSON list.
func asList(raw any) ([]any, bool) {
	list, ok := raw.([]any)
	return list, ok
}

// asMap returns the element as a JSON object.
func asMap(el any) (map[string]any, bool) {
	m, ok := el.(map[string]any)
	return m, ok
}

// stringField extracts a string field, falling back to def when the key is
// absent or the value is not a string.
func stringField(m map[string]any, key, def string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// coerceFloat coerces a JSON value (number or numeric string) to float64.
func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceFieldFloat coerces a field strictly: an absent key defaults to 0,
// but a present, uncoercible value (null, bool, object) reports failure so
// the caller can skip the element.
func coerceFieldFloat(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, true
	}
	return coerceFloat(v)
}

// lenientFloat coerces a field, defaulting to 0 on any failure.
func lenientFloat(m map[string]any, key string) float64 {
	if v, ok := coerceFloat(m[key]); ok {
		return v
	}
	return 0
}

// intField extracts an integer field leniently.
func intField(m map[string]any, key string) int {
	if v, ok := coerceFloat(m[key]); ok {
		return int(v)
	}
	return 0
}
