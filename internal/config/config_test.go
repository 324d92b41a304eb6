package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxegems/internal/domain"
	"luxegems/internal/eventbus"
)

func newTestService(path string, env map[string]string) *configService {
	cs := NewConfigService(path).(*configService)
	cs.getenv = func(key string) string { return env[key] }
	return cs
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := newTestService(filepath.Join(t.TempDir(), "missing.toml"), nil)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, domain.DefaultCategories, cfg.Categories)
	assert.Equal(t, domain.DefaultMaterials, cfg.Materials)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_url = "https://shop.example.com/"
request_timeout = "3s"
categories = ["ring", "anklet"]

[ui]
card_width = 34
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := newTestService(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", cfg.APIURL, "trailing slash is trimmed")
	assert.Equal(t, 3*time.Second, cfg.Timeout())
	assert.Equal(t, []string{"ring", "anklet"}, cfg.Categories)
	assert.Equal(t, domain.DefaultMaterials, cfg.Materials, "missing list falls back to defaults")
	assert.Equal(t, 34, cfg.UISettings.CardWidth)
	assert.Equal(t, 1, cfg.Version)
}

func TestEnvironmentOverridesAPIURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url = "https://file.example"`), 0644))

	cs := newTestService(path, map[string]string{APIURLEnv: "http://staging.example:9000/"})
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://staging.example:9000", cfg.APIURL)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_url = [unterminated"), 0644))

	_, err := newTestService(path, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveAndReload(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent).Path
	})

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceWithBus(path, bus)

	cfg := DefaultConfig()
	cfg.APIURL = "https://shop.example.com"
	cfg.Materials = []string{"gold"}
	require.NoError(t, cs.SaveToPath(cfg, path))

	select {
	case got := <-saved:
		assert.Equal(t, path, got)
	case <-time.After(time.Second):
		t.Fatal("ConfigSavedEvent not published")
	}

	reloaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.APIURL, reloaded.APIURL)
	assert.Equal(t, []string{"gold"}, reloaded.Materials)
	assert.Equal(t, cfg.UISettings, reloaded.UISettings)
}

func TestTimeoutFallsBackOnGarbage(t *testing.T) {
	cfg := &Config{RequestTimeout: "soon"}
	assert.Equal(t, defaultRequestTimeout, cfg.Timeout())

	cfg.RequestTimeout = "-1s"
	assert.Equal(t, defaultRequestTimeout, cfg.Timeout())
}

func TestSetAPIURL(t *testing.T) {
	cfg := DefaultConfig()

	cfg.SetAPIURL("  ")
	assert.Equal(t, DefaultAPIURL, cfg.APIURL, "blank keeps the current url")

	cfg.SetAPIURL("https://shop.example.com/")
	assert.Equal(t, "https://shop.example.com", cfg.APIURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non-http url", `api_url = "ftp://shop.example.com"`},
		{"blank category", `categories = ["ring", ""]`},
		{"narrow cards", "[ui]\ncard_width = 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := newTestService(path, nil).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestFallbackConfigKeepsOnlyValidEnvironmentURL(t *testing.T) {
	cfg := FallbackConfig(func(string) string { return "http://staging.example:9000/" })
	assert.Equal(t, "http://staging.example:9000", cfg.APIURL)

	cfg = FallbackConfig(func(string) string { return "not a url" })
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultAPIURL, FallbackConfig(nil).APIURL)
}
