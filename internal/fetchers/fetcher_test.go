package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"spacewx/internal/models"
)

func testClient() *resty.Client {
	client := resty.New()
	client.SetTimeout(2 * time.Second)
	return client
}

func TestDonkiFetcherSendsKeyAndDateRange(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"api_key":   r.URL.Query().Get("api_key"),
			"startDate": r.URL.Query().Get("startDate"),
			"endDate":   r.URL.Query().Get("endDate"),
		}
		w.Write([]byte(`[{"startTime":"2025-08-20T12:00Z","sourceLocation":"N05E12","link":"https://example.com/cme/1"}]`))
	}))
	defer srv.Close()

	fetcher := NewDonkiFetcher(testClient(), srv.URL+"/", "TESTKEY")
	end := time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -7)

	res := fetcher.FetchCMEs(context.Background(), start, end)
	if res.Status != models.StatusOK {
		t.Fatalf("Expected OK, got %v", res.Status)
	}
	if len(res.Records) != 1 || res.Records[0].SourceLocation != "N05E12" {
		t.Errorf("Unexpected records: %+v", res.Records)
	}

	if gotQuery["api_key"] != "TESTKEY" {
		t.Errorf("Expected api_key TESTKEY, got %q", gotQuery["api_key"])
	}
	if gotQuery["startDate"] != "2025-08-15" || gotQuery["endDate"] != "2025-08-22" {
		t.Errorf("Expected YYYY-MM-DD date range, got %v", gotQuery)
	}
}

func TestFetcherTransportFailureReturnsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusNotFound)
	}))
	defer srv.Close()

	donki := NewDonkiFetcher(testClient(), srv.URL+"/", "TESTKEY")
	swpc := NewSwpcFetcher(testClient(), srv.URL+"/")
	ctx := context.Background()
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -7)

	if res := donki.FetchFlares(ctx, start, end); res.Status != models.StatusFailed {
		t.Errorf("Expected failed result for non-2xx status, got %v", res.Status)
	}
	if res := swpc.FetchWind(ctx); res.Status != models.StatusFailed {
		t.Errorf("Expected failed result for non-2xx status, got %v", res.Status)
	}
}

func TestFetcherMalformedBodyReturnsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"truncated": `))
	}))
	defer srv.Close()

	swpc := NewSwpcFetcher(testClient(), srv.URL+"/")
	if res := swpc.FetchKIndex(context.Background()); res.Status != models.StatusFailed {
		t.Errorf("Expected failed result for malformed JSON, got %v", res.Status)
	}
}

func TestFetcherNonListBodyIsNoData(t *testing.T) {
	// Valid JSON that is not a list parses fine but yields no data
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"rate limit exceeded"}`))
	}))
	defer srv.Close()

	swpc := NewSwpcFetcher(testClient(), srv.URL+"/")
	if res := swpc.FetchFlux(context.Background()); res.Status != models.StatusNoData {
		t.Errorf("Expected no-data for non-list body, got %v", res.Status)
	}
}

func TestFetchAllIsolatesFailingFeed(t *testing.T) {
	// One failing feed must not prevent the others from succeeding in the
	// same cycle.
	mux := http.NewServeMux()
	mux.HandleFunc("/donki/CME", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"startTime":"2025-08-20T12:00Z"}]`))
	})
	mux.HandleFunc("/donki/FLR", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusNotFound)
	})
	mux.HandleFunc("/donki/GST", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"startTime":"2025-08-19T03:00Z","allKpIndex":[{"kpIndex":6.33}]}]`))
	})
	mux.HandleFunc("/donki/notifications", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"messageType":"CME","messageIssueTime":"2025-08-20T01:02Z","messageBody":"watch"}]`))
	})
	mux.HandleFunc("/swpc/json/rtsw/rtsw_wind_1m.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"time_tag":"2025-08-22 10:00:00.000","proton_speed":"412.5","proton_density":"4.2"}]`))
	})
	mux.HandleFunc("/swpc/json/planetary_k_index_1m.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"time_tag":"2025-08-22 10:00:00","k_index":2.67}]`))
	})
	mux.HandleFunc("/swpc/json/f10_7cm.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"time_tag":"2025-08-21","flux":135.2},{"time_tag":"2025-08-22","flux":140.1}]`))
	})
	mux.HandleFunc("/swpc/json/sunspot_report.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"region":"AR3842","spot_count":12},{"region":"AR3843","spot_count":5}]`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher := NewDataFetcher(Options{
		DonkiBaseURL: srv.URL + "/donki/",
		SwpcBaseURL:  srv.URL + "/swpc/",
		APIKey:       "TESTKEY",
		Timeout:      2 * time.Second,
	})

	end := time.Now().UTC()
	snap := fetcher.FetchAll(context.Background(), end.AddDate(0, 0, -7), end)

	if snap.Flares.Status != models.StatusFailed {
		t.Errorf("Expected flares to fail, got %v", snap.Flares.Status)
	}

	if snap.CMEs.Status != models.StatusOK {
		t.Errorf("Expected CMEs OK despite flare failure, got %v", snap.CMEs.Status)
	}
	if snap.Storms.Status != models.StatusOK {
		t.Errorf("Expected storms OK, got %v", snap.Storms.Status)
	}
	if snap.Alerts.Status != models.StatusOK {
		t.Errorf("Expected alerts OK, got %v", snap.Alerts.Status)
	}
	if snap.Wind.Status != models.StatusOK || snap.Wind.Records[0].Speed != 412.5 {
		t.Errorf("Expected wind OK with speed 412.5, got %+v", snap.Wind)
	}
	if snap.KIndex.Status != models.StatusOK {
		t.Errorf("Expected k-index OK, got %v", snap.KIndex.Status)
	}
	if snap.Flux.Status != models.StatusOK || len(snap.Flux.Records) != 2 {
		t.Errorf("Expected 2 flux samples, got %+v", snap.Flux)
	}
	if snap.Sunspots.Status != models.StatusOK || len(snap.Sunspots.Records) != 2 {
		t.Errorf("Expected 2 sunspot regions, got %+v", snap.Sunspots)
	}

	if snap.FetchedAt.IsZero() {
		t.Error("Expected snapshot timestamp to be set")
	}
}
