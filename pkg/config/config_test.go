package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte("assets_url: https://cdn.example.com/echarts/\ntheme: dark\nvariant: contrast\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/echarts/", cfg.AssetsURL())
	assert.Equal(t, DefaultLocale, cfg.Locale())
	assert.Equal(t, DefaultRenderer, cfg.Renderer())
	name, variant := cfg.Theme()
	assert.Equal(t, "dark", name)
	assert.Equal(t, "contrast", variant)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAssetsURL, cfg.AssetsURL())
}

func TestParseRejectsInvalidURL(t *testing.T) {
	_, err := Parse([]byte("assets_url: ftp://example.com/\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.SetAssetsURL("http://localhost:8080/assets"))
	cfg.SetTheme("light", "")
	cfg.SetSize("100%", "400px")

	path := filepath.Join(t.TempDir(), "nested", "chartopts.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/assets/", loaded.AssetsURL())
	w, h := loaded.Size()
	assert.Equal(t, "100%", w)
	assert.Equal(t, "400px", h)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOnAssetsURLChange(t *testing.T) {
	cfg := Default()
	var calls [][2]string
	cancel := cfg.OnAssetsURLChange(func(prev, next string) {
		calls = append(calls, [2]string{prev, next})
	})

	require.NoError(t, cfg.SetAssetsURL("http://127.0.0.1:9000/assets/"))
	require.NoError(t, cfg.SetAssetsURL("http://127.0.0.1:9000/assets/"))
	cancel()
	cancel()
	require.NoError(t, cfg.SetAssetsURL("http://127.0.0.1:9001/assets/"))

	assert.Equal(t, [][2]string{{DefaultAssetsURL, "http://127.0.0.1:9000/assets/"}}, calls)
}

func TestSetAssetsURLRejectsRelative(t *testing.T) {
	cfg := Default()
	err := cfg.SetAssetsURL("assets/")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, DefaultAssetsURL, cfg.AssetsURL())
}

func TestResolveAsset(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultAssetsURL+"echarts.min.js", cfg.ResolveAsset("echarts.min.js"))
	assert.Equal(t, DefaultAssetsURL+"maps/china.js", cfg.ResolveAsset("/maps/china.js"))
	assert.Equal(t, "https://cdn.example.com/x.js", cfg.ResolveAsset("https://cdn.example.com/x.js"))
}
