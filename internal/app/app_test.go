package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"deal-analytics/internal/models"
	"deal-analytics/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, mode string) *configs.Config {
	t.Helper()

	return &configs.Config{
		Server: configs.ServerConfig{Port: 8080, ReadHeaderTimeout: 5, ReadTimeout: 10, WriteTimeout: 10, IdleTimeout: 60},
		Log:    configs.LogConfig{Level: "error"},
		Database: configs.DatabaseConfig{
			Driver:           "sqlite3",
			DSN:              filepath.Join(t.TempDir(), "webhooks.db"),
			OperationTimeout: 5,
			MaxOpenConns:     4,
		},
		Queue:         configs.QueueConfig{Capacity: 1000, DequeueTimeoutMs: 50},
		Worker:        configs.WorkerConfig{MaxAttempts: 3, RetryBackoffMs: 10},
		Ingestion:     configs.IngestionConfig{Mode: mode},
		BusinessClock: configs.BusinessClockConfig{Timezone: "Europe/Moscow", Cutoff: "21:00:00"},
	}
}

// webhookRequest renders deal i as a webhook, rotating through every transport senders use.
func webhookRequest(t *testing.T, baseURL string, hook models.HookType, i int) *http.Request {
	t.Helper()

	name := fmt.Sprintf("Deal %d", i)
	amount := fmt.Sprintf("%d", i*10)
	hookURL := fmt.Sprintf("%s/hook%d", baseURL, int(hook))

	var req *http.Request
	var err error
	switch i % 4 {
	case 0:
		body := fmt.Sprintf(`{"name": %q, "summa": %q}`, name, amount)
		req, err = http.NewRequest(http.MethodPost, hookURL, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
	case 1:
		form := url.Values{"name": {name}, "amount": {amount}}
		req, err = http.NewRequest(http.MethodPost, hookURL+"/", strings.NewReader(form.Encode()))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	case 2:
		req, err = http.NewRequest(http.MethodGet, hookURL+"?"+url.Values{"name": {name}, "summa": {amount}}.Encode(), nil)
		require.NoError(t, err)
	default:
		req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("%s/name=Deal%d&summa=%s", hookURL, i, amount), nil)
		require.NoError(t, err)
	}
	return req
}

func fetchJSON(rawURL string, out any) error {
	resp, err := http.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func getJSON(t *testing.T, rawURL string, out any) {
	t.Helper()
	require.NoError(t, fetchJSON(rawURL, out))
}

// dailyTotals sums the wide stats rows over every processing date, so a test running
// across the cutoff still sees all of its events.
func dailyTotals(baseURL string) (count, sum int64, hookCounts map[string]int64, err error) {
	var dates []string
	if err := fetchJSON(baseURL+"/api/dates", &dates); err != nil {
		return 0, 0, nil, err
	}

	hookCounts = map[string]int64{}
	for _, date := range dates {
		var stats map[string]any
		if err := fetchJSON(baseURL+"/api/stats?date="+url.QueryEscape(date), &stats); err != nil {
			return 0, 0, nil, err
		}
		count += asInt64(stats["total_count"])
		sum += asInt64(stats["total_sum"])
		for _, hook := range models.AllHookTypes() {
			hookCounts[hook.CountColumn()] += asInt64(stats[hook.CountColumn()])
		}
	}
	return count, sum, hookCounts, nil
}

func asInt64(value any) int64 {
	number, _ := value.(float64)
	return int64(number)
}

func TestApp_WebhooksFlowIntoStatistics(t *testing.T) {
	const (
		totalWebhooks = 250
		parallel      = 8
	)

	app, err := New(context.Background(), testConfig(t, "async"))
	require.NoError(t, err)
	app.StartConsumer()

	server := httptest.NewServer(app.Handler())
	defer server.Close()

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var accepted int64
	var expectedSum int64
	expectedCounts := map[string]int64{}

	for i := 0; i < totalWebhooks; i++ {
		hook := models.HookType(i%models.HookCount + 1)
		expectedSum += int64(i * 10)
		expectedCounts[hook.CountColumn()]++

		req := webhookRequest(t, server.URL, hook, i)
		wg.Add(1)
		workerChan <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-workerChan }()

			resp, err := http.DefaultClient.Do(req)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusAccepted {
				atomic.AddInt64(&accepted, 1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(totalWebhooks), atomic.LoadInt64(&accepted))

	require.Eventually(t, func() bool {
		count, _, _, err := dailyTotals(server.URL)
		return err == nil && count == totalWebhooks
	}, 10*time.Second, 50*time.Millisecond)

	count, sum, hookCounts, err := dailyTotals(server.URL)
	require.NoError(t, err)
	assert.Equal(t, int64(totalWebhooks), count)
	assert.Equal(t, expectedSum, sum)
	assert.Equal(t, expectedCounts, hookCounts)

	var dates []string
	getJSON(t, server.URL+"/api/dates", &dates)
	for _, date := range dates {
		var stored, replayed map[string]any
		getJSON(t, server.URL+"/api/stats?date="+url.QueryEscape(date), &stored)
		getJSON(t, server.URL+"/api/stats?time_from=00:00&time_to=23:59&date="+url.QueryEscape(date), &replayed)
		assert.Equal(t, stored, replayed, "full-day replay for %s", date)
	}

	var rawEvents []models.RawEvent
	getJSON(t, server.URL+"/api/events?limit=5", &rawEvents)
	assert.Len(t, rawEvents, 5)

	var deals []models.Deal
	getJSON(t, server.URL+"/api/deals/7", &deals)
	for _, deal := range deals {
		assert.True(t, strings.HasPrefix(deal.Name, "Deal"), deal.Name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))
}

func TestApp_ShutdownDrainsQueuedWebhooks(t *testing.T) {
	const totalWebhooks = 100

	config := testConfig(t, "async")
	app, err := New(context.Background(), config)
	require.NoError(t, err)

	server := httptest.NewServer(app.Handler())
	defer server.Close()

	// The worker is not running yet, so every webhook stays queued until shutdown.
	for i := 0; i < totalWebhooks; i++ {
		resp, err := http.DefaultClient.Do(webhookRequest(t, server.URL, 7, i))
		require.NoError(t, err)
		require.Equal(t, http.StatusAccepted, resp.StatusCode)
		_ = resp.Body.Close()
	}

	app.StartConsumer()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))

	eventStore, err := OpenEventStore(context.Background(), config)
	require.NoError(t, err)
	defer eventStore.Close()

	dates, err := eventStore.AvailableDates(context.Background())
	require.NoError(t, err)
	var persisted int64
	for _, date := range dates {
		aggregate, err := eventStore.ReadAggregate(context.Background(), date)
		require.NoError(t, err)
		persisted += aggregate.Hook(7).Count
	}
	assert.Equal(t, int64(totalWebhooks), persisted)
}

func TestApp_ServeReturnsAfterShutdown(t *testing.T) {
	config := testConfig(t, "async")
	config.Server.Port = 0

	app, err := New(context.Background(), config)
	require.NoError(t, err)
	app.StartConsumer()

	serveErr := make(chan error, 1)
	go func() { serveErr <- app.Serve() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))

	select {
	case err := <-serveErr:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestApp_SyncModePersistsBeforeResponding(t *testing.T) {
	app, err := New(context.Background(), testConfig(t, "sync"))
	require.NoError(t, err)
	app.StartConsumer()

	server := httptest.NewServer(app.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/hook18?name=Acme&summa=1%20500")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Stage  string `json:"stage"`
			Amount int64  `json:"amount"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, models.DealStageLabels.Label(18), body.Data.Stage)
	assert.Equal(t, int64(1500), body.Data.Amount)

	var report models.KPIReport
	getJSON(t, server.URL+"/api/kpis", &report)
	assert.Equal(t, int64(1500), report.KPIs.ConfirmedOrdersSum+sumOtherDays(t, server.URL, report.Date))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))
}

// sumOtherDays covers a request that landed on the far side of the cutoff from the KPI read.
func sumOtherDays(t *testing.T, baseURL, skipDate string) int64 {
	t.Helper()

	var dates []string
	getJSON(t, baseURL+"/api/dates", &dates)
	var total int64
	for _, date := range dates {
		if date == skipDate {
			continue
		}
		var report models.KPIReport
		getJSON(t, baseURL+"/api/kpis?date="+url.QueryEscape(date), &report)
		total += report.KPIs.ConfirmedOrdersSum
	}
	return total
}
