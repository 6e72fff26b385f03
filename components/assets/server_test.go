package assets_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-chartopts/components/assets"
	"github.com/goliatone/go-chartopts/pkg/config"
)

func writeScript(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "echarts.min.js"), []byte("var echarts = {};"), 0o644))
	return dir
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlerServesDirectory(t *testing.T) {
	srv, err := assets.New(assets.WithDir(writeScript(t)), assets.WithLogger(quietLogger()))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/echarts.min.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "var echarts = {};", rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/assets/echarts.min.js", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := assets.New(assets.WithDir(filepath.Join(t.TempDir(), "nope")))
	require.Error(t, err)

	file := filepath.Join(writeScript(t), "echarts.min.js")
	_, err = assets.New(assets.WithDir(file))
	require.Error(t, err)
}

func TestStartUpdatesConfig(t *testing.T) {
	cfg := config.Default()
	var seen []string
	cancel := cfg.OnAssetsURLChange(func(_, next string) { seen = append(seen, next) })
	defer cancel()

	srv, err := assets.New(
		assets.WithDir(writeScript(t)),
		assets.WithAddr("127.0.0.1", 0),
		assets.WithConfig(cfg),
		assets.WithLogger(quietLogger()),
	)
	require.NoError(t, err)

	_, err = srv.URL()
	require.ErrorIs(t, err, assets.ErrNotStarted)

	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	url, err := srv.URL()
	require.NoError(t, err)
	assert.Equal(t, url, cfg.AssetsURL())
	assert.Equal(t, []string{url}, seen)

	resp, err := http.Get(cfg.ResolveAsset("echarts.min.js"))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "var echarts = {};", string(body))

	require.Error(t, srv.Start())
}

func TestRunStopsWithContext(t *testing.T) {
	srv, err := assets.New(assets.WithDir(writeScript(t)), assets.WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, srv.Run(ctx))
}

func TestExtraRoutes(t *testing.T) {
	hello := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})
	srv, err := assets.New(
		assets.WithDir(writeScript(t)),
		assets.WithRoute("/api/hello", hello),
		assets.WithRoute("", hello),
		assets.WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	assert.Len(t, srv.Options().Routes, 1)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hello", nil))
	assert.Equal(t, "hi", rec.Body.String())

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrefixIsNormalised(t *testing.T) {
	opts := assets.NewOptions(assets.WithPrefix("static"))
	assert.Equal(t, "/static/", opts.Prefix)
	assert.Equal(t, "127.0.0.1", opts.Host)
	assert.NotNil(t, opts.Logger)
}
