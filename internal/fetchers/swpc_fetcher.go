package fetchers

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"spacewx/internal/logger"
	"spacewx/internal/models"
)

// SWPC endpoint paths, relative to the configured base URL. These live
// feeds take no parameters.
const (
	swpcWindPath    = "json/rtsw/rtsw_wind_1m.json"
	swpcKIndexPath  = "json/planetary_k_index_1m.json"
	swpcFluxPath    = "json/f10_7cm.json"
	swpcSunspotPath = "json/sunspot_report.json"
)

// SwpcFetcher handles fetching live data from the NOAA SWPC services.
// Failure isolation matches DonkiFetcher: results, never errors.
type SwpcFetcher struct {
	client     *resty.Client
	baseURL    string
	normalizer *DataNormalizer
	log        *logger.Logger
}

// NewSwpcFetcher creates a new SWPC fetcher instance
func NewSwpcFetcher(client *resty.Client, baseURL string) *SwpcFetcher {
	return &SwpcFetcher{
		client:     client,
		baseURL:    baseURL,
		normalizer: NewDataNormalizer(),
		log:        logger.Global().WithComponent("swpc"),
	}
}

// FetchWind fetches the real-time solar wind feed (ACE).
func (f *SwpcFetcher) FetchWind(ctx context.Context) models.Result[models.WindSample] {
	raw, ok := f.getJSON(ctx, swpcWindPath)
	if !ok {
		return models.Failed[models.WindSample]()
	}
	return f.normalizer.NormalizeWind(raw)
}

// FetchKIndex fetches 1-minute planetary K-index values.
func (f *SwpcFetcher) FetchKIndex(ctx context.Context) models.Result[models.KIndexSample] {
	raw, ok := f.getJSON(ctx, swpcKIndexPath)
	if !ok {
		return models.Failed[models.KIndexSample]()
	}
	return f.normalizer.NormalizeKIndex(raw)
}

// FetchFlux fetches the F10.7cm solar flux index.
func (f *SwpcFetcher) FetchFlux(ctx context.Context) models.Result[models.FluxSample] {
	raw, ok := f.getJSON(ctx, swpcFluxPath)
	if !ok {
		return models.Failed[models.FluxSample]()
	}
	return f.normalizer.NormalizeFlux(raw)
}

// FetchSunspots fetches the sunspot region report.
func (f *SwpcFetcher) FetchSunspots(ctx context.Context) models.Result[models.SunspotRegion] {
	raw, ok := f.getJSON(ctx, swpcSunspotPath)
	if !ok {
		return models.Failed[models.SunspotRegion]()
	}
	return f.normalizer.NormalizeSunspots(raw)
}

// getJSON performs a GET and decodes the body, logging and swallowing any
// transport-level failure.
func (f *SwpcFetcher) getJSON(ctx context.Context, path string) (any, bool) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.baseURL + path)

	if err != nil {
		f.log.Warnf("SWPC %s request failed: %v", path, err)
		return nil, false
	}

	if resp.StatusCode() != 200 {
		f.log.Warnf("SWPC %s returned status %d", path, resp.StatusCode())
		return nil, false
	}

	var raw any
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		f.log.Warnf("failed to parse SWPC %s response: %v", path, err)
		return nil, false
	}
	return raw, true
}
