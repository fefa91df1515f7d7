package populationDashboard

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/siherrmann/populationDashboard/binding"
	"github.com/siherrmann/populationDashboard/config"
	"github.com/siherrmann/populationDashboard/dataset"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.Config) *echo.Echo {
	e, err := NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewDashboardApp(t *testing.T) {
	ds, err := dataset.LoadBundled()
	require.NoError(t, err)

	app := NewDashboardApp(ds)
	assert.Equal(t, []string{GRAPH_POPULATION_ID, GRAPH_SHARE_ID, GRAPH_SCATTER_ID, GRAPH_BOX_ID}, app.Outputs(ContinentTrigger))

	layout := NewLayout(ds)
	assert.Equal(t, "Análisis de Población por Continente (2007)", layout.Title)
	assert.Equal(t, DEFAULT_CONTINENT, layout.DefaultValue)
}

func TestServer(t *testing.T) {
	e := newTestServer(t, config.Default())

	t.Run("Should serve the dashboard page", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		body := rec.Body.String()
		assert.Contains(t, body, "Análisis de Población por Continente (2007)")
		assert.Contains(t, body, `name="csrf-token"`)
		assert.Contains(t, body, `<option value="Asia" selected>Asia</option>`)
	})

	t.Run("Should swap charts on a selection change", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/update/dropdown-continent/change?value=Oceania", nil)
		req.Header.Set("HX-Request", "true")
		rec := serve(e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/?continent=Oceania", rec.Header().Get("HX-Push-Url"))
		assert.Equal(t, 4, strings.Count(rec.Body.String(), `class="graph"`))
	})

	t.Run("Should return 404 for an unknown input", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/update/dropdown-year/change?value=2007", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Should return figures as json", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/figure/getFigures?continent=Europe", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		updates := []binding.Update{}
		err := json.Unmarshal(rec.Body.Bytes(), &updates)
		require.NoError(t, err)
		require.Len(t, updates, 4)
		assert.Equal(t, "Población en Europe (2007)", updates[0].Figure.Title)
	})

	t.Run("Should serve the embedded static assets", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/static/dashboard.js", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Plotly.react")
	})

	t.Run("Should report health", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"records":142`)
	})

	t.Run("Should return json for unknown routes", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "message")
	})
}

func TestServerMemoryStorage(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Mode = config.STORAGE_MODE_MEMORY
	e := newTestServer(t, cfg)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/dataset/getRecords?continent=Oceania", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "New Zealand")
}

func TestInitDashboardHandlerErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Should fail on an unsupported storage mode", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Mode = "ftp"

		_, err := InitDashboardHandler(cfg, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported storage mode")
	})

	t.Run("Should fail on a missing dataset file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Mode = config.STORAGE_MODE_LOCAL
		cfg.Storage.Path = t.TempDir()

		_, err := InitDashboardHandler(cfg, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load dataset")
	})
}
