package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("AVAILABILITY_LOG_LEVEL", "error")
}

func runRoot(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	if args == nil {
		args = []string{} // иначе cobra возьмет os.Args
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.Bytes()
}

func TestRoot_MissingArgument(t *testing.T) {
	isolateConfig(t)

	out := runRoot(t)

	assert.JSONEq(t, `{"error": "Se requiere al menos un argumento (citas_json)"}`, string(out))
}

func TestRoot_MalformedJSON(t *testing.T) {
	isolateConfig(t)

	out := runRoot(t, `{"citas": `)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, "Error al interpretar JSON de citas: unexpected end of JSON input", resp.Error)
}

func TestRoot_UnsupportedJSON(t *testing.T) {
	isolateConfig(t)

	out := runRoot(t, `42`)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, getAvailableSlotsHandler.MsgComputationFailed, resp.Error)
	assert.NotEmpty(t, resp.Detail)
}

func TestRoot_ComputesDays(t *testing.T) {
	isolateConfig(t)

	out := runRoot(t, `{"citas": {"result": []}, "minutos": 60, "Cantidad_dias": 3}`, "ignored")

	var days []getAvailableSlotsHandler.DayResponse
	require.NoError(t, json.Unmarshal(out, &days))
	require.Len(t, days, 3)
	for i, d := range days {
		day, err := time.Parse("2006-01-02", d.Dia)
		require.NoError(t, err)
		assert.NotEqual(t, time.Sunday, day.Weekday())
		if i > 0 {
			assert.Greater(t, d.Dia, days[i-1].Dia)
		}
		require.NotEmpty(t, d.Citas)
		assert.Equal(t, "08:00", d.Citas[0].HoraInicio)
		assert.LessOrEqual(t, len(d.Citas), 9)
	}
}

func TestRoot_BrokenConfigFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\n"), 0o600))
	t.Setenv(envConfigPath, path)

	out := runRoot(t, `{"Cantidad_dias": 1}`)

	var days []getAvailableSlotsHandler.DayResponse
	require.NoError(t, json.Unmarshal(out, &days))
	assert.Len(t, days, 1)
}

func newTestApp(t *testing.T, mutate func(*config.Config)) *application {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	app, err := newApplication(cfg, logger.NewNop())
	require.NoError(t, err)
	return app
}

func TestRouter(t *testing.T) {
	router := newRouter(newTestApp(t, nil))

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	})

	for _, path := range []string{"/", "/api/v1/availability"} {
		t.Run("compute "+path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"Cantidad_dias": 2}`)))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
			var days []getAvailableSlotsHandler.DayResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
			assert.Len(t, days, 2)
		})
	}

	t.Run("empty body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "No se recibió ningún cuerpo en la solicitud"}`, rec.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://agenda.example.co")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("holidays", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/holidays/2025", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"fecha":"2025-07-20"`)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "availability_computations_total")
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}

func TestRouter_RateLimit(t *testing.T) {
	router := newRouter(newTestApp(t, func(c *config.Config) {
		c.RateLimit.RequestsPerSecond = 0.001
		c.RateLimit.Burst = 1
		c.Metrics.Enabled = false
	}))

	send := func() int {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPost(t *testing.T) {
	isolateConfig(t)
	remote := httptest.NewServer(newRouter(newTestApp(t, nil)))
	defer remote.Close()

	out := runRoot(t, "post", "--url", remote.URL, `{"Cantidad_dias": 2}`)

	var days []getAvailableSlotsHandler.DayResponse
	require.NoError(t, json.Unmarshal(out, &days))
	assert.Len(t, days, 2)
}

func TestPost_RemoteError(t *testing.T) {
	isolateConfig(t)
	remote := httptest.NewServer(newRouter(newTestApp(t, nil)))
	defer remote.Close()

	out := runRoot(t, "post", "--url", remote.URL, `{"citas": [`)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, getAvailableSlotsHandler.MsgComputationFailed, resp.Error)
	assert.Contains(t, resp.Detail, "Error al interpretar JSON de citas")
}

func TestHolidaysCommand(t *testing.T) {
	isolateConfig(t)

	out := runRoot(t, "holidays", "2026", "--domingos")

	var resp struct {
		Anio int `json:"anio"`
		Dias []struct {
			Fecha   string `json:"fecha"`
			Domingo bool   `json:"domingo"`
		} `json:"dias"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, 2026, resp.Anio)
	assert.Greater(t, len(resp.Dias), 60)
}

func TestHolidaysCommand_InvalidYear(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs([]string{"holidays", "veinte"})

	assert.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestHolidaysCommand_ConfigFlag(t *testing.T) {
	isolateConfig(t)
	unsupported := filepath.Join(t.TempDir(), "unsupported.toml")
	require.NoError(t, os.WriteFile(unsupported, []byte("[holidays]\ncountry = \"AR\"\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs([]string{"holidays", "2026", "--config", unsupported})

	assert.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestRoot_FirstArgumentIsAlwaysPayload(t *testing.T) {
	isolateConfig(t)

	out := runRoot(t, "--config", "config.toml", `{"Cantidad_dias": 1}`)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.True(t, strings.HasPrefix(resp.Error, "Error al interpretar JSON de citas"))
}
