package fetchers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"

	"spacewx/internal/logger"
	"spacewx/internal/models"
)

// DONKI endpoint paths, relative to the configured base URL.
const (
	donkiCMEPath           = "CME"
	donkiFlarePath         = "FLR"
	donkiStormPath         = "GST"
	donkiNotificationsPath = "notifications"

	dateLayout = "2006-01-02"
)

// DonkiFetcher handles fetching event data from the NASA DONKI API. Every
// operation returns a plain result value: transport failures are logged
// and surfaced as StatusFailed, never raised to the caller, so one bad
// feed cannot hold back the rest of a cycle.
type DonkiFetcher struct {
	client     *resty.Client
	baseURL    string
	apiKey     string
	normalizer *DataNormalizer
	log        *logger.Logger
}

// NewDonkiFetcher creates a new DONKI fetcher instance
func NewDonkiFetcher(client *resty.Client, baseURL, apiKey string) *DonkiFetcher {
	return &DonkiFetcher{
		client:     client,
		baseURL:    baseURL,
		apiKey:     apiKey,
		normalizer: NewDataNormalizer(),
		log:        logger.Global().WithComponent("donki"),
	}
}

// FetchCMEs fetches coronal mass ejection events for the date range.
func (f *DonkiFetcher) FetchCMEs(ctx context.Context, start, end time.Time) models.Result[models.CmeEvent] {
	raw, ok := f.getJSON(ctx, donkiCMEPath, f.rangeParams(start, end))
	if !ok {
		return models.Failed[models.CmeEvent]()
	}
	return f.normalizer.NormalizeCMEs(raw)
}

// FetchFlares fetches solar flare events for the date range.
func (f *DonkiFetcher) FetchFlares(ctx context.Context, start, end time.Time) models.Result[models.FlareEvent] {
	raw, ok := f.getJSON(ctx, donkiFlarePath, f.rangeParams(start, end))
	if !ok {
		return models.Failed[models.FlareEvent]()
	}
	return f.normalizer.NormalizeFlares(raw)
}

// FetchStorms fetches geomagnetic storm events for the date range.
func (f *DonkiFetcher) FetchStorms(ctx context.Context, start, end time.Time) models.Result[models.GeomagStorm] {
	raw, ok := f.getJSON(ctx, donkiStormPath, f.rangeParams(start, end))
	if !ok {
		return models.Failed[models.GeomagStorm]()
	}
	return f.normalizer.NormalizeStorms(raw)
}

// FetchNotifications fetches the latest space weather notifications.
func (f *DonkiFetcher) FetchNotifications(ctx context.Context) models.Result[models.Alert] {
	params := map[string]string{
		"type":    "all",
		"api_key": f.apiKey,
	}
	raw, ok := f.getJSON(ctx, donkiNotificationsPath, params)
	if !ok {
		return models.Failed[models.Alert]()
	}
	return f.normalizer.NormalizeAlerts(raw)
}

// rangeParams builds the query parameters shared by the event endpoints.
func (f *DonkiFetcher) rangeParams(start, end time.Time) map[string]string {
	return map[string]string{
		"startDate": start.Format(dateLayout),
		"endDate":   end.Format(dateLayout),
		"api_key":   f.apiKey,
	}
}

// getJSON performs a GET and decodes the body. Any transport-level
// failure (network error, non-2xx status, unparsable body) is logged as a
// warning and reported as not-ok.
func (f *DonkiFetcher) getJSON(ctx context.Context, path string, params map[string]string) (any, bool) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(f.baseURL + path)

	if err != nil {
		f.log.Warnf("DONKI %s request failed: %v", path, err)
		return nil, false
	}

	if resp.StatusCode() != 200 {
		f.log.Warnf("DONKI %s returned status %d", path, resp.StatusCode())
		return nil, false
	}

	var raw any
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		f.log.Warnf("failed to parse DONKI %s response: %v", path, err)
		return nil, false
	}
	return raw, true
}
