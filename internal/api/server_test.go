package api_test

import (
	"bytes"
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmezukan/cosme-server/internal/api"
	"github.com/cosmezukan/cosme-server/internal/backup"
	"github.com/cosmezukan/cosme-server/internal/i18n"
	"github.com/cosmezukan/cosme-server/internal/service"
	"github.com/cosmezukan/cosme-server/internal/store"
	"github.com/cosmezukan/cosme-server/internal/validation"
)

type envelope struct {
	Data    jsontext.Value `json:"data"`
	Error   string         `json:"error"`
	Success bool           `json:"success"`
}

func newTestServer(t *testing.T) *api.Server {
	t.Helper()
	repo := store.NewMemoryRepository()
	st, err := store.New(context.Background(), repo, nil)
	require.NoError(t, err)

	v := validation.New()
	bundle, err := i18n.NewBundle("en")
	require.NoError(t, err)

	return api.NewServer(
		st,
		service.NewCosmeticService(st, v, nil),
		service.NewLookService(st, v, nil),
		service.NewSettingsService(st, v, nil),
		backup.NewService(st, t.TempDir(), nil),
		bundle,
		nil,
	)
}

func doJSON(t *testing.T, srv *api.Server, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}
	return rec, env
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"healthy"`)
}

func TestCosmeticLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/",
		`{"brand": "Dior", "name": "Addict Lip Glow", "category": "Lips", "color": "Pink"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created service.CosmeticResult
	require.NoError(t, json.Unmarshal(env.Data, &created))
	id := created.Cosmetic.ID
	require.NotEmpty(t, id)

	rec, _ = doJSON(t, srv, http.MethodGet, "/api/v1/cosmetics/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodPut, "/api/v1/cosmetics/"+id,
		`{"brand": "Dior", "name": "Addict Lip Glow", "category": "Lips", "color": "Pink", "memo": "daily"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/cosmetics/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = doJSON(t, srv, http.MethodGet, "/api/v1/cosmetics/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestCreateCosmetic_ValidationError(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/", `{"brand": "Dior"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "validation failed", env.Error)

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCosmetic_OversizedBodyRejected(t *testing.T) {
	srv := newTestServer(t)

	body := `{"brand": "b", "name": "n", "category": "c", "photo": ["data:image/png;base64,` +
		strings.Repeat("A", 65<<20) + `"]}`
	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestCheckDuplicateOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/",
		`{"brand": "Dior", "name": "999", "category": "Lips", "color": "Red"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/check-duplicate",
		`{"brand": "ディオール", "name": "999", "category": "リップ", "color": "レッド"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res service.DuplicateResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Duplicate)
	require.NotNil(t, res.Existing)
}

func TestRestoreUpload_BadDocumentIs422(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/",
		`{"brand": "keep", "name": "keep", "category": "c", "color": "x"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/backups/restore", `[1,2,3]`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, env.Success)

	// State untouched.
	rec, env = doJSON(t, srv, http.MethodGet, "/api/v1/cosmetics/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"keep"`)
}

func TestRestoreUpload_LegacyDocumentMigrates(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/backups/restore",
		`{"cosmetics": [{"id": "c1", "brand": "b", "name": "n", "category": "c", "color": "x", "personalColor": "warm"}], "userBrands": ["hince"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env := doJSON(t, srv, http.MethodGet, "/api/v1/cosmetics/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"personalColor":"neutral"`)
}

func TestBackupExportDownload(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/backups/export", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "my-cosme-zukan-backup-")
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte(`"schemaVersion"`)))
}

func TestViewSettingsOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPut, "/api/v1/settings/view/makeup", `{"mode": "lookbook"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodPut, "/api/v1/settings/view/cosmetics", `{"mode": "lookbook"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := doJSON(t, srv, http.MethodGet, "/api/v1/settings/view", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"makeupListViewMode":"lookbook"`)
}

func TestAliasTablesOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/aliases/brands",
		`{"canonicalName": "Ohora", "aliases": ["オホーラ"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, srv, http.MethodGet, "/api/v1/aliases/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"Ohora"`)
	assert.Contains(t, string(env.Data), `"Dior"`)
}

func TestLocaleNegotiation(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locale", nil)
	req.Header.Set("Accept-Language", "ja-JP")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"locale":"ja"`)
	assert.Contains(t, rec.Body.String(), "ブルベ")

	// Query parameter wins over the header.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/locale?lang=en", nil)
	req.Header.Set("Accept-Language", "ja")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), `"locale":"en"`)
}

func TestLookPersonalColorOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	var ids []string
	for _, pc := range []string{"blue", "blue", "yellow"} {
		rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/cosmetics/",
			`{"brand": "b", "name": "n-`+pc+`", "category": "c", "color": "x", "personalColor": "`+pc+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var res service.CosmeticResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		ids = append(ids, res.Cosmetic.ID)
	}

	body, err := json.Marshal(map[string]any{"title": "test", "usedCosmetics": ids})
	require.NoError(t, err)
	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/looks/", string(body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var look service.LookResult
	require.NoError(t, json.Unmarshal(env.Data, &look))

	rec, env = doJSON(t, srv, http.MethodGet, "/api/v1/looks/"+look.Look.ID+"/personal-color", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"personalColor":"blue"`)
}
