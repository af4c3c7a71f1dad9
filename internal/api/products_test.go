package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, nil)

	cat := domain.Category{Name: "running"}
	require.NoError(t, db.Create(&cat).Error)

	body := map[string]any{
		"name":        "Nike Air Zoom Pegasus 41",
		"description": "Versatile daily trainer",
		"price":       89990,
		"stock":       25,
		"brand":       "Nike",
		"categoryId":  cat.ID,
		"sizes":       []string{"40", "41", "42"},
		"isOnSale":    true,
		"salePrice":   79990,
	}
	rec := doJSON(t, r, http.MethodPost, "/api/products", body, authed(nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	require.NotZero(t, created["id"])
	require.NotEmpty(t, created["createdAt"])
	id := int(created["id"].(float64))

	// Everything sent comes back on a subsequent get
	rec = doJSON(t, r, http.MethodGet, pathWithID("/api/products", id), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "Nike Air Zoom Pegasus 41", got["name"])
	assert.Equal(t, "Versatile daily trainer", got["description"])
	assert.Equal(t, 89990.0, got["price"])
	assert.Equal(t, 25.0, got["stock"])
	assert.Equal(t, "Nike", got["brand"])
	assert.Equal(t, float64(cat.ID), got["categoryId"])
	assert.Equal(t, []any{"40", "41", "42"}, got["sizes"])
	assert.Equal(t, true, got["isOnSale"])
	assert.Equal(t, 79990.0, got["salePrice"])
	require.NotNil(t, got["category"], "category relation is included")
	assert.Equal(t, "running", got["category"].(map[string]any)["name"])

	_, err := time.Parse(time.RFC3339, got["createdAt"].(string))
	assert.NoError(t, err, "createdAt is a populated timestamp")
}

func TestCreateProduct_CoercesStringFields(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, nil)

	body := map[string]any{
		"name":  "Metcon 9",
		"price": "19.99", // String-encoded number is accepted
	}
	rec := doJSON(t, r, http.MethodPost, "/api/products", body, authed(nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 19.99, decodeBody(t, rec)["price"])
}

func TestCreateProduct_ValidationErrorsAccumulate(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, nil)

	rec := doJSON(t, r, http.MethodPost, "/api/products",
		map[string]any{"price": -1, "stock": -2}, authed(nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error map[string][]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error["price"], "Price must be positive")
	assert.Contains(t, resp.Error["stock"], "Stock must be non-negative")
	assert.Contains(t, resp.Error["name"], "Name is required")

	// Nothing was persisted
	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateProduct_Partial(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, nil)

	product := domain.Product{Name: "Pegasus", Price: 89990, Stock: 25}
	require.NoError(t, db.Create(&product).Error)

	rec := doJSON(t, r, http.MethodPut, pathWithID("/api/products", int(product.ID)),
		map[string]any{"stock": 10}, authed(nil))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, 10.0, got["stock"])
	assert.Equal(t, "Pegasus", got["name"], "untouched fields survive")
	assert.Equal(t, 89990.0, got["price"])

	// Unknown product
	rec = doJSON(t, r, http.MethodPut, "/api/products/9999",
		map[string]any{"stock": 10}, authed(nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct_RemovesImageBlob(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeMedia{}
	r := newTestRouter(db, fake)

	publicID := "catalog/products/pegasus"
	product := domain.Product{Name: "Pegasus", Price: 89990, ImagePublicID: &publicID}
	require.NoError(t, db.Create(&product).Error)

	rec := doJSON(t, r, http.MethodDelete, pathWithID("/api/products", int(product.ID)), nil, authed(nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Exactly one destroy with the product's handle
	assert.Equal(t, []string{publicID}, fake.destroyed)

	rec = doJSON(t, r, http.MethodGet, pathWithID("/api/products", int(product.ID)), nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct_MediaFailureIsNotFatal(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeMedia{destroyErr: errors.New("media host down")}
	r := newTestRouter(db, fake)

	publicID := "catalog/products/pegasus"
	product := domain.Product{Name: "Pegasus", Price: 89990, ImagePublicID: &publicID}
	require.NoError(t, db.Create(&product).Error)

	// The blob delete fails but the record still goes away
	rec := doJSON(t, r, http.MethodDelete, pathWithID("/api/products", int(product.ID)), nil, authed(nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, fake.destroyed, 1)

	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProduct_NoImageSkipsMedia(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeMedia{}
	r := newTestRouter(db, fake)

	product := domain.Product{Name: "Pegasus", Price: 89990}
	require.NoError(t, db.Create(&product).Error)

	rec := doJSON(t, r, http.MethodDelete, pathWithID("/api/products", int(product.ID)), nil, authed(nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, fake.destroyed)
}

func TestCreateProduct_MultipartWithImage(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeMedia{}
	r := newTestRouter(db, fake)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Ultraboost Light"))
	require.NoError(t, w.WriteField("price", "129990"))
	require.NoError(t, w.WriteField("isOnSale", "true"))
	require.NoError(t, w.WriteField("sizes", "42"))
	require.NoError(t, w.WriteField("sizes", "43"))
	part, err := w.CreateFormFile("image", "shoe.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("x-api-key", testAPIKey)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, fake.uploads, "image uploaded exactly once")

	got := decodeBody(t, rec)
	assert.Equal(t, 129990.0, got["price"])
	assert.Equal(t, true, got["isOnSale"])
	assert.Equal(t, []any{"42", "43"}, got["sizes"])
	assert.Equal(t, "https://res.example.com/image/upload/catalog/products/fake.jpg", got["imageUrl"])
	assert.Equal(t, "catalog/products/fake", got["imagePublicId"])
}

func TestListProducts_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, nil)

	older := domain.Product{Name: "Old", Price: 1, CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	newer := domain.Product{Name: "New", Price: 1, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&newer).Error)

	rec := doJSON(t, r, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "New", products[0].Name)
	assert.Equal(t, "Old", products[1].Name)
}

func TestGetProduct_BadID(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, nil)

	rec := doJSON(t, r, http.MethodGet, "/api/products/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid product ID"}`, rec.Body.String())
}

func TestProductMutationsAreGated(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, nil)

	rec := doJSON(t, r, http.MethodPost, "/api/products",
		map[string]any{"name": "x", "price": 1}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Reads stay public
	rec = doJSON(t, r, http.MethodGet, "/api/products", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
