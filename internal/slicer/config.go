package slicer

import (
	"os"
	"strconv"
)

// Config holds all configuration for talking to the slicing service.
type Config struct {
	Endpoint  string
	TimeoutMs int // 0 disables the request deadline
	LogCalls  bool

	// Default presets attached to every slice request unless overridden.
	PrinterPreset  string
	FilamentPreset string
	ProcessPreset  string
}

// DefaultConfig returns a Config with sensible defaults: a local service
// and the stock Bambu Lab A1 preset family.
func DefaultConfig() Config {
	return Config{
		Endpoint:       "http://localhost:8080",
		TimeoutMs:      300000,
		LogCalls:       false,
		PrinterPreset:  "Bambu Lab A1",
		FilamentPreset: "Bambu PLA Basic @BBL A1",
		ProcessPreset:  "0.20mm Standard @BBL A1",
	}
}

// LoadConfig reads slicer configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SLICECTL_SERVER_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SLICECTL_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SLICECTL_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SLICECTL_PRINTER_PRESET"); v != "" {
		cfg.PrinterPreset = v
	}
	if v := os.Getenv("SLICECTL_FILAMENT_PRESET"); v != "" {
		cfg.FilamentPreset = v
	}
	if v := os.Getenv("SLICECTL_PROCESS_PRESET"); v != "" {
		cfg.ProcessPreset = v
	}

	return cfg
}
