package main

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleLinkJSON = `{
  "profile": [
    {"distance_km": 0, "height_asl_m": 0, "zone": "sea"},
    {"distance_km": 15, "height_asl_m": 0, "zone": "sea"},
    {"distance_km": 30, "height_asl_m": 0, "zone": "sea"}
  ],
  "height_tx_agl_m": 10,
  "height_rx_agl_m": 10,
  "center_lat_deg": 51.0,
  "freq_ghz": 2,
  "p_percent": 50,
  "polarization": "horizontal",
  "temp_k": 288.15,
  "dry_pressure_hpa": 1013,
  "dist_coast_tx_km": 0,
  "dist_coast_rx_km": 0,
  "delta_n": 45,
  "n0": 325,
  "tx_horizon_gain_dbi": 0,
  "rx_horizon_gain_dbi": 0,
  "tx_clutter": "none",
  "rx_clutter": "none"
}`

func writeTempLinkFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "link.json")
	if err := os.WriteFile(p, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp link file: %v", err)
	}
	return p
}

func TestLoadLinkParameters_DecodesValidFile(t *testing.T) {
	p := writeTempLinkFile(t, sampleLinkJSON)
	params, err := loadLinkParameters(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.RawPath.Len() != 3 {
		t.Errorf("expected 3 profile points, got %d", params.RawPath.Len())
	}
	if params.FreqGHz != 2 {
		t.Errorf("FreqGHz = %v, want 2", params.FreqGHz)
	}
}

func TestLoadLinkParameters_RejectsUnknownZone(t *testing.T) {
	p := writeTempLinkFile(t, `{"profile":[{"distance_km":0,"height_asl_m":0,"zone":"lunar"}]}`)
	if _, err := loadLinkParameters(p); err == nil {
		t.Error("expected an error for an unknown zone, got nil")
	}
}

func TestLoadLinkParameters_RejectsMissingFile(t *testing.T) {
	if _, err := loadLinkParameters("/nonexistent/path/link.json"); err == nil {
		t.Error("expected an error for a missing file, got nil")
	}
}
