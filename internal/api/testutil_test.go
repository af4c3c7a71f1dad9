package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog_system/internal/config"
	"catalog_system/internal/domain"
	"catalog_system/internal/media"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testAPIKey    = "test-api-key"
	testJWTSecret = "test-jwt-secret"
)

// newTestDB opens a per-test in-memory SQLite store with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Admin{}, &domain.Category{}, &domain.Product{}))
	return db
}

// fakeMedia records calls instead of talking to the media host
type fakeMedia struct {
	uploads    int
	destroyed  []string
	destroyErr error // Returned by Destroy when set
}

func (f *fakeMedia) Upload(_ context.Context, _ io.Reader, _ string) (*media.UploadResult, error) {
	f.uploads++
	return &media.UploadResult{
		URL:      "https://res.example.com/image/upload/catalog/products/fake.jpg",
		PublicID: "catalog/products/fake",
	}, nil
}

func (f *fakeMedia) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return f.destroyErr
}

// newTestRouter builds the production router against a test store, no
// Redis, and the given media fake
func newTestRouter(db *gorm.DB, m media.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if m == nil {
		m = &fakeMedia{}
	}
	cfg := &config.Config{
		APIKey:         testAPIKey,
		JWTSecret:      testJWTSecret,
		InternalSecret: "", // Internal check disabled unless a test opts in
		CORSOrigins:    []string{"http://localhost:5173"},
		CloudName:      "democloud",
		CloudAPIKey:    "123456",
		CloudAPISecret: "shhh",
	}
	return NewRouter(cfg, db, nil, m)
}

// doJSON performs a JSON request and returns the recorder
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// authed adds the mutation API key to a header set
func authed(extra map[string]string) map[string]string {
	h := map[string]string{"x-api-key": testAPIKey}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// pathWithID appends a numeric id to a base path
func pathWithID(base string, id int) string {
	return fmt.Sprintf("%s/%d", base, id)
}

// decodeBody unmarshals a JSON response body into a map
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
