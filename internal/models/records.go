package models

// WindSample is one solar wind measurement from the NOAA real-time feed.
type WindSample struct {
	TimeTag string  `json:"time_tag"`
	Speed   float64 `json:"speed"`   // km/s
	Density float64 `json:"density"` // protons/cm³
}

// KIndexSample is one planetary K-index measurement.
type KIndexSample struct {
	TimeTag string  `json:"time_tag"`
	KIndex  float64 `json:"k_index"`
}

// FluxSample is one F10.7cm solar flux measurement.
type FluxSample struct {
	TimeTag string  `json:"time_tag"`
	Flux    float64 `json:"flux"` // sfu
}

// SunspotRegion is one active region from the NOAA sunspot report.
type SunspotRegion struct {
	TimeTag   string `json:"time_tag"`
	Region    string `json:"region"`
	SpotCount int    `json:"spot_count"`
}

// CmeEvent is a coronal mass ejection event from DONKI.
type CmeEvent struct {
	StartTime      string `json:"start_time"`
	SourceLocation string `json:"source_location"`
	Catalog        string `json:"catalog"`
	Link           string `json:"link"`
}

// FlareEvent is a solar flare event from DONKI.
type FlareEvent struct {
	BeginTime      string `json:"begin_time"`
	PeakTime       string `json:"peak_time"`
	ClassType      string `json:"class_type"`
	SourceLocation string `json:"source_location"`
	Link           string `json:"link"`
}

// GeomagStorm is a geomagnetic storm event from DONKI. KpIndex is taken
// from the first entry of the event's nested allKpIndex list and is nil
// when that list is absent or empty.
type GeomagStorm struct {
	StartTime string   `json:"start_time"`
	KpIndex   *float64 `json:"kp_index"`
	Link      string   `json:"link"`
}

// Alert is a space weather notification from DONKI.
type Alert struct {
	MessageType      string `json:"message_type"`
	MessageIssueTime string `json:"message_issue_time"`
	MessageBody      string `json:"message_body"`
}
