package models

import "time"

// Status describes the outcome of one feed fetch-and-normalize step.
type Status int

const (
	// StatusOK means the feed produced at least one usable record.
	StatusOK Status = iota
	// StatusNoData means the call succeeded but yielded nothing usable:
	// an empty list, a non-list body, or every element filtered out.
	StatusNoData
	// StatusFailed means the call itself failed (network error, non-2xx
	// status, or an unparsable body).
	StatusFailed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no_data"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result carries a feed outcome as a plain value. Failures are never
// propagated as errors; a Result with StatusFailed or StatusNoData simply
// renders as a placeholder panel.
type Result[T any] struct {
	Status  Status `json:"status"`
	Records []T    `json:"records,omitempty"`
}

// OK wraps records in a successful result.
func OK[T any](records []T) Result[T] {
	return Result[T]{Status: StatusOK, Records: records}
}

// NoData marks a successful call that produced no usable records.
func NoData[T any]() Result[T] {
	return Result[T]{Status: StatusNoData}
}

// Failed marks a transport-level failure.
func Failed[T any]() Result[T] {
	return Result[T]{Status: StatusFailed}
}

// Available reports whether the result holds renderable records.
func (r Result[T]) Available() bool {
	return r.Status == StatusOK && len(r.Records) > 0
}

// Snapshot holds the outcome of one refresh cycle across all feeds. It is
// built fresh every tick and discarded after the frame is rendered; no
// snapshot state survives into the next cycle.
type Snapshot struct {
	FetchedAt time.Time             `json:"fetched_at"`
	Wind      Result[WindSample]    `json:"wind"`
	KIndex    Result[KIndexSample]  `json:"k_index"`
	Flux      Result[FluxSample]    `json:"flux"`
	Sunspots  Result[SunspotRegion] `json:"sunspots"`
	CMEs      Result[CmeEvent]      `json:"cmes"`
	Flares    Result[FlareEvent]    `json:"flares"`
	Storms    Result[GeomagStorm]   `json:"storms"`
	Alerts    Result[Alert]         `json:"alerts"`
}
