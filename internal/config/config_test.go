package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advselect/internal/engine"
	"advselect/internal/eventbus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 36, cfg.UI.RowHeight)
	assert.Equal(t, 240, cfg.UI.ViewportHeight)
	assert.Equal(t, 6, cfg.UI.Overscan)
	assert.Equal(t, 20, cfg.UI.PreviewLimit)
	assert.Equal(t, SourceSynthetic, cfg.Catalog.Source)
	assert.Equal(t, 128, cfg.Catalog.Size)
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, engine.DefaultOptions(), opts)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ZeroRowHeight", func(c *Config) { c.UI.RowHeight = 0 }},
		{"NegativeViewport", func(c *Config) { c.UI.ViewportHeight = -10 }},
		{"NegativeOverscan", func(c *Config) { c.UI.Overscan = -1 }},
		{"UnknownSource", func(c *Config) { c.Catalog.Source = "http" }},
		{"FileWithoutPath", func(c *Config) { c.Catalog.Source = SourceFile }},
		{"NegativeSize", func(c *Config) { c.Catalog.Size = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, engine.ErrInvalidConfig))
		})
	}
}

func TestSaveAndLoadFromPath(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := DefaultConfig()
	cfg.UI.RowHeight = 2
	cfg.UI.Placeholder = "Pick skills"
	cfg.Catalog = CatalogSettings{Source: SourceFile, Path: "items.toml", Size: 128}

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[ui]\noverscan = 2\n"), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.UI.Overscan)
	assert.Equal(t, 36, cfg.UI.RowHeight)
	assert.Equal(t, SourceSynthetic, cfg.Catalog.Source)
}

func TestLoadFromPath_Errors(t *testing.T) {
	svc := NewConfigService()
	dir := t.TempDir()

	_, err := svc.LoadFromPath(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[ui\n"), 0644))
	_, err = svc.LoadFromPath(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[ui]\nrow_height = 0\n"), 0644))
	_, err = svc.LoadFromPath(invalid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidConfig))
}

func TestConfigServiceWithBus_PublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan eventbus.ConfigSavedEvent, 1)
	loaded := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent)
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent)
	})

	svc := NewConfigServiceWithBus(bus)
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))
	_, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	select {
	case ev := <-saved:
		assert.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("ConfigSaved not published")
	}

	select {
	case ev := <-loaded:
		assert.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("ConfigLoaded not published")
	}
}

func TestConfigServiceWithBus_DefaultsPublishNothing(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	var loaded atomic.Int32
	bus.Subscribe(eventbus.EventConfigLoaded, func(eventbus.DomainEvent) { loaded.Add(1) })

	cs := NewConfigServiceWithBus(bus).(*configService)
	cs.filePath = filepath.Join(t.TempDir(), "advselect", "config.toml")

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// a later event proves the bus has caught up
	saved := make(chan struct{}, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(eventbus.DomainEvent) { saved <- struct{}{} })
	bus.Publish(eventbus.ConfigSavedEvent{Path: "marker"})
	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("bus stalled")
	}
	assert.Equal(t, int32(0), loaded.Load())
}
