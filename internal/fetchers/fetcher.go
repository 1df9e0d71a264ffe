package fetchers

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"spacewx/internal/models"
)

const userAgent = "SpaceWeatherDashboard/2.0"

// Options configures the data fetcher.
type Options struct {
	DonkiBaseURL string
	SwpcBaseURL  string
	APIKey       string
	Timeout      time.Duration
}

// DataFetcher coordinates fetching from both providers. A single resty
// client (and its connection pool) is shared by all feeds; it is safe for
// concurrent reuse within and across cycles.
type DataFetcher struct {
	donki *DonkiFetcher
	swpc  *SwpcFetcher
}

// NewDataFetcher creates a new data fetcher instance
func NewDataFetcher(opts Options) *DataFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 12 * time.Second
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(2 * time.Second)
	client.SetHeader("User-Agent", userAgent)

	return &DataFetcher{
		donki: NewDonkiFetcher(client, opts.DonkiBaseURL, opts.APIKey),
		swpc:  NewSwpcFetcher(client, opts.SwpcBaseURL),
	}
}

// FetchAll fetches every feed concurrently and returns one snapshot. Each
// feed is independently isolated: a failing feed yields a failed result in
// its slot while the others complete normally. The snapshot is only
// returned once all eight operations have finished, so the caller can swap
// the whole frame at once.
func (f *DataFetcher) FetchAll(ctx context.Context, start, end time.Time) models.Snapshot {
	snap := models.Snapshot{FetchedAt: time.Now().UTC()}

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	// Each goroutine writes a distinct snapshot field.
	run(func() { snap.Wind = f.swpc.FetchWind(ctx) })
	run(func() { snap.KIndex = f.swpc.FetchKIndex(ctx) })
	run(func() { snap.Flux = f.swpc.FetchFlux(ctx) })
	run(func() { snap.Sunspots = f.swpc.FetchSunspots(ctx) })
	run(func() { snap.CMEs = f.donki.FetchCMEs(ctx, start, end) })
	run(func() { snap.Flares = f.donki.FetchFlares(ctx, start, end) })
	run(func() { snap.Storms = f.donki.FetchStorms(ctx, start, end) })
	run(func() { snap.Alerts = f.donki.FetchNotifications(ctx) })
	wg.Wait()

	return snap
}
