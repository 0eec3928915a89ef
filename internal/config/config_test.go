package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	toasterrors "github.com/vango-dev/toastkit/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	perSec, burst := cfg.RateLimit()
	assert.Equal(t, float64(DefaultRatePerSec), perSec)
	assert.Equal(t, DefaultRatePerSec, burst)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
	assert.Nil(t, cfg.Toast.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)

	var te *toasterrors.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "E100", te.Code)
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "toastkit.json"), `{
  "server": {"host": "0.0.0.0", "port": 8080},
  "toast": {"duration": 2500, "style": {"color": "blue"}},
  "log": {"level": "debug", "format": "json"}
}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	require.NotNil(t, cfg.Toast.Duration)
	assert.Equal(t, 2500, *cfg.Toast.Duration)
	assert.Equal(t, "blue", cfg.Toast.Style["color"])
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path, "defaults should fill unset fields")
	assert.Equal(t, filepath.Join(dir, "toastkit.json"), cfg.Path())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toastkit.yaml")
	writeFile(t, path, `
server:
  port: 9000
toast:
  duration: 0
  style:
    background: black
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	require.NotNil(t, cfg.Toast.Duration)
	assert.Equal(t, 0, *cfg.Toast.Duration)
	assert.Equal(t, "black", cfg.Toast.Style["background"])
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "toastkit.toml"), `
[server]
port = 7000
ratePerSec = 5.0

[toast]
duration = 1200

[toast.style]
color = "red"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	require.NotNil(t, cfg.Server.RatePerSec)
	assert.Equal(t, 5.0, *cfg.Server.RatePerSec)
	assert.Equal(t, 5, cfg.Server.Burst, "burst follows the configured rate")
	require.NotNil(t, cfg.Toast.Duration)
	assert.Equal(t, 1200, *cfg.Toast.Duration)
	assert.Equal(t, "red", cfg.Toast.Style["color"])
}

func TestLoadRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantRate  float64
		wantBurst int
	}{
		{"unset uses default", `{}`, DefaultRatePerSec, DefaultRatePerSec},
		{"rate only derives burst", `{"server": {"ratePerSec": 3}}`, 3, 3},
		{"fractional rate keeps burst of one", `{"server": {"ratePerSec": 0.5}}`, 0.5, 1},
		{"explicit burst wins", `{"server": {"ratePerSec": 3, "burst": 10}}`, 3, 10},
		{"zero disables limiting", `{"server": {"ratePerSec": 0}}`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "toastkit.json")
			writeFile(t, path, tt.body)

			cfg, err := LoadFile(path)
			require.NoError(t, err)

			perSec, burst := cfg.RateLimit()
			assert.Equal(t, tt.wantRate, perSec)
			assert.Equal(t, tt.wantBurst, burst)
		})
	}
}

func TestLoadNegativeRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toastkit.yaml")
	writeFile(t, path, "server:\n  ratePerSec: -1\n")

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "toastkit.json")
	writeFile(t, bad, `{"server": `)
	_, err := LoadFile(bad)
	assertCode(t, err, "E101")

	unsupported := filepath.Join(dir, "toastkit.ini")
	writeFile(t, unsupported, `port=1`)
	_, err = LoadFile(unsupported)
	assertCode(t, err, "E103")

	negative := filepath.Join(dir, "negative.json")
	writeFile(t, negative, `{"toast": {"duration": -5}}`)
	_, err = LoadFile(negative)
	assertCode(t, err, "E104")

	port := filepath.Join(dir, "port.json")
	writeFile(t, port, `{"server": {"port": 70000}}`)
	_, err = LoadFile(port)
	assertCode(t, err, "E102")
}

func TestValidateLog(t *testing.T) {
	cfg := New()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			cfg := New()
			cfg.Server.Port = 4242
			cfg.Toast.Duration = intPtr(900)
			cfg.Toast.Style = map[string]string{"color": "green"}

			path := filepath.Join(t.TempDir(), "toastkit"+ext)
			require.NoError(t, cfg.SaveTo(path))

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, 4242, loaded.Server.Port)
			require.NotNil(t, loaded.Toast.Duration)
			assert.Equal(t, 900, *loaded.Toast.Duration)
			assert.Equal(t, "green", loaded.Toast.Style["color"])
		})
	}
}

func TestToastDefaults(t *testing.T) {
	cfg := New()
	p := cfg.ToastDefaults()
	assert.Nil(t, p.Duration)
	assert.Nil(t, p.Style)

	cfg.Toast.Duration = intPtr(100)
	cfg.Toast.Style = map[string]string{"a": "1"}
	p = cfg.ToastDefaults()
	require.NotNil(t, p.Duration)
	assert.Equal(t, 100, *p.Duration)

	p.Style["a"] = "2"
	assert.Equal(t, "1", cfg.Toast.Style["a"], "partial should not alias config style")
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toastkit.json")
	writeFile(t, path, `{"toast": {"duration": 1000}}`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var latest atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(cfg *Config) {
			if cfg.Toast.Duration != nil {
				latest.Store(int64(*cfg.Toast.Duration))
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, `{"toast": {"duration": 3000}}`)

	assert.Eventually(t, func() bool { return latest.Load() == 3000 }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var te *toasterrors.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, code, te.Code)
}

func intPtr(v int) *int { return &v }
