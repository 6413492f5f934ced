package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"profile-matcher/internal/config"
	"profile-matcher/internal/core/ports"
	"profile-matcher/internal/core/services/clientconfig"
)

type mockStore struct {
	ports.Repository
	closed bool
}

func (m *mockStore) Close() {
	m.closed = true
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DatabaseURL:        "sqlite://" + filepath.Join(t.TempDir(), "app.db"),
		HTTPAddr:           "127.0.0.1:0",
		MetricsAddr:        "127.0.0.1:0",
		RequestTimeout:     time.Second,
		ShutdownTimeout:    time.Second,
		LogLevel:           "info",
		AutoMigrate:        true,
		EnableSeedEndpoint: true,
	}
}

func TestApp_Shutdown(t *testing.T) {
	store := &mockStore{}

	metricsServer := &http.Server{Addr: "127.0.0.1:0"}
	go func() {
		_ = metricsServer.ListenAndServe()
	}()
	time.Sleep(10 * time.Millisecond)

	app := &App{
		config:        &config.Config{},
		store:         store,
		httpServer:    &http.Server{},
		metricsServer: metricsServer,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if !store.closed {
		t.Error("Store was not closed")
	}
}

func TestApp_Shutdown_NilComponents(t *testing.T) {
	app := &App{
		config: &config.Config{},
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed with nil components: %v", err)
	}
}

func TestStartMetricsServer(t *testing.T) {
	app := &App{
		config: &config.Config{MetricsAddr: "127.0.0.1:0"},
	}

	app.startMetricsServer()

	if app.metricsServer == nil {
		t.Fatal("Metrics server not initialized")
	}

	_ = app.metricsServer.Close()
}

func TestNewApp_InvalidDatabaseURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseURL = "mysql://db/app"

	if _, err := NewApp(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unsupported database url")
	}
}

func TestApp_ServesSeededPlayer(t *testing.T) {
	ctx := context.Background()

	app, err := NewApp(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		_ = app.Shutdown(shutdownCtx)
	}()

	base := "http://" + app.httpAddr
	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get(base + "/get_client_config/" + clientconfig.MockPlayerID)
	if err != nil {
		t.Fatalf("GET before seed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 before seeding, got %d", resp.StatusCode)
	}

	resp, err = client.Post(base+"/create_mock_data", "application/json", nil)
	if err != nil {
		t.Fatalf("POST create_mock_data: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from seed, got %d", resp.StatusCode)
	}

	resp, err = client.Get(base + "/get_client_config/" + clientconfig.MockPlayerID)
	if err != nil {
		t.Fatalf("GET after seed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after seeding, got %d", resp.StatusCode)
	}

	var body struct {
		PlayerID        string   `json:"player_id"`
		ActiveCampaigns []string `json:"active_campaigns"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.PlayerID != clientconfig.MockPlayerID {
		t.Errorf("unexpected player id %q", body.PlayerID)
	}
	if body.ActiveCampaigns == nil {
		t.Error("active_campaigns should be an empty list, not null")
	}
}

func TestApp_ReportServerError(t *testing.T) {
	app := &App{serverErrs: make(chan error, 1)}

	want := errors.New("bind failed")
	app.reportServerError(want)
	app.reportServerError(errors.New("dropped"))

	select {
	case got := <-app.ServerErrors():
		if !errors.Is(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	default:
		t.Fatal("expected a reported error")
	}
}
