package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"cadastro/internal/app"
	"cadastro/internal/config"
	"cadastro/internal/database"
	"cadastro/internal/handlers"
	"cadastro/pkg/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors handlers.Envelope with a raw payload for typed decoding.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupApp builds the app on a private in-memory SQLite database.
func setupApp(t *testing.T, c cache.Cache) *fiber.App {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	a, err := app.New(app.Dependencies{DB: db, Cache: c})
	require.NoError(t, err)
	return a
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, a *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func anaBody() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Ana Silva",
		"document": "52998224725",
		"email":    "ana@example.com",
		"gender":   "Feminine",
		"code":     "AB12CD34",
	}
}

func TestClientEndpoints(t *testing.T) {
	a := setupApp(t, nil)

	// --- POST /clients ---
	status, env := doJSON(t, a, http.MethodPost, "/clients", anaBody())
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, handlers.MessageCreated, env.Message)
	created := decodeData(t, env)
	assert.NotZero(t, created["id"])
	for k, v := range anaBody() {
		assert.Equal(t, v, created[k], k)
	}
	id := int(created["id"].(float64))

	// --- GET /clients ---
	status, env = doJSON(t, a, http.MethodGet, "/clients", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "", env.Message)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	// --- GET /clients/:id ---
	status, env = doJSON(t, a, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ana Silva", decodeData(t, env)["name"])

	// --- PUT /clients/:id ---
	status, env = doJSON(t, a, http.MethodPut, fmt.Sprintf("/clients/%d", id), map[string]interface{}{"name": "Ana Souza"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, handlers.MessageUpdated, env.Message)
	assert.JSONEq(t, `{"affected":1}`, string(env.Data))

	status, env = doJSON(t, a, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil)
	assert.Equal(t, http.StatusOK, status)
	got := decodeData(t, env)
	assert.Equal(t, "Ana Souza", got["name"])
	assert.Equal(t, "ana@example.com", got["email"])

	// --- DELETE /clients/:id ---
	status, env = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, handlers.MessageDeleted, env.Message)
	assert.JSONEq(t, `{"affected":1}`, string(env.Data))

	status, env = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"affected":0}`, string(env.Data))

	// Verify deletion
	status, env = doJSON(t, a, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Client not found", env.Message)
}

func TestClientValidation(t *testing.T) {
	a := setupApp(t, nil)

	body := anaBody()
	body["email"] = "not-an-email"
	status, env := doJSON(t, a, http.MethodPost, "/clients", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid email", env.Message)

	body = anaBody()
	body["document"] = "11111111111"
	status, env = doJSON(t, a, http.MethodPost, "/clients", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid document", env.Message)

	// Nothing was written.
	_, env = doJSON(t, a, http.MethodGet, "/clients", nil)
	assert.JSONEq(t, `[]`, string(env.Data))

	status, env = doJSON(t, a, http.MethodPost, "/clients", anaBody())
	require.Equal(t, http.StatusCreated, status)
	id := int(decodeData(t, env)["id"].(float64))

	status, env = doJSON(t, a, http.MethodPut, fmt.Sprintf("/clients/%d", id), map[string]interface{}{"document": "52998224726"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid document", env.Message)

	status, env = doJSON(t, a, http.MethodPut, fmt.Sprintf("/clients/%d", id), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No fields to update", env.Message)
}

func TestClientDuplicateIsServerError(t *testing.T) {
	a := setupApp(t, nil)

	status, _ := doJSON(t, a, http.MethodPost, "/clients", anaBody())
	require.Equal(t, http.StatusCreated, status)

	body := anaBody()
	body["document"] = "11144477735"
	status, env := doJSON(t, a, http.MethodPost, "/clients", body)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, handlers.MessageFailed, env.Message)
	assert.NotContains(t, env.Message, "UNIQUE")
}

func TestClientFormattedDocumentIsDuplicate(t *testing.T) {
	a := setupApp(t, nil)

	status, env := doJSON(t, a, http.MethodPost, "/clients", anaBody())
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "52998224725", decodeData(t, env)["document"])

	body := anaBody()
	body["document"] = "529.982.247-25"
	body["email"] = "ana.other@example.com"
	status, env = doJSON(t, a, http.MethodPost, "/clients", body)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, handlers.MessageFailed, env.Message)

	_, env = doJSON(t, a, http.MethodGet, "/clients", nil)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	// A formatted document on create is stored as digits.
	body = anaBody()
	body["document"] = "111.444.777-35"
	body["email"] = "bruno@example.com"
	status, env = doJSON(t, a, http.MethodPost, "/clients", body)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "11144477735", decodeData(t, env)["document"])
}

func TestProductEndpoints(t *testing.T) {
	a := setupApp(t, nil)

	status, env := doJSON(t, a, http.MethodPost, "/products", map[string]interface{}{
		"code": "CH-01", "name": "Chair", "fabrication": "National", "size": 1.2,
	})
	require.Equal(t, http.StatusCreated, status)
	created := decodeData(t, env)
	assert.Equal(t, 0.0, created["value"])
	id := int(created["id"].(float64))

	status, env = doJSON(t, a, http.MethodPut, fmt.Sprintf("/products/%d", id), map[string]interface{}{"value": 42.5})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Updated!", env.Message)
	assert.JSONEq(t, `{"affected":1}`, string(env.Data))

	status, env = doJSON(t, a, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	assert.Equal(t, http.StatusOK, status)
	got := decodeData(t, env)
	assert.Equal(t, 42.5, got["value"])
	assert.Equal(t, "CH-01", got["code"])
	assert.Equal(t, "Chair", got["name"])
	assert.Equal(t, "National", got["fabrication"])
	assert.Equal(t, 1.2, got["size"])

	status, env = doJSON(t, a, http.MethodPut, "/products/999999", map[string]interface{}{"value": 1})
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"affected":0}`, string(env.Data))
}

func TestProductNotFound(t *testing.T) {
	a := setupApp(t, nil)

	status, env := doJSON(t, a, http.MethodGet, "/products/999999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product not found", env.Message)
}

func TestInvalidIDAndBody(t *testing.T) {
	a := setupApp(t, nil)

	for _, path := range []string{"/products/abc", "/products/0", "/products/-3", "/clients/1.5"} {
		status, env := doJSON(t, a, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.Equal(t, handlers.MessageInvalidID, env.Message, path)
	}

	status, env := doJSON(t, a, http.MethodDelete, "/clients/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, handlers.MessageInvalidID, env.Message)

	status, env = doJSON(t, a, http.MethodPost, "/products", `{"code":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, handlers.MessageInvalidBody, env.Message)

	status, env = doJSON(t, a, http.MethodPut, "/clients/1", `{"email": 5}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, handlers.MessageInvalidBody, env.Message)
}

func TestUnknownRoute(t *testing.T) {
	a := setupApp(t, nil)

	status, env := doJSON(t, a, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, env.Message)
}

func TestProductEndpointsWithCache(t *testing.T) {
	a := setupApp(t, cache.NewMemory(time.Minute))

	status, env := doJSON(t, a, http.MethodPost, "/products", map[string]interface{}{
		"code": "TB-01", "name": "Table", "fabrication": "Imported", "size": 3, "value": 10,
	})
	require.Equal(t, http.StatusCreated, status)
	id := int(decodeData(t, env)["id"].(float64))

	_, env = doJSON(t, a, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	assert.Equal(t, 10.0, decodeData(t, env)["value"])

	doJSON(t, a, http.MethodPut, fmt.Sprintf("/products/%d", id), map[string]interface{}{"value": 12.5})

	_, env = doJSON(t, a, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	assert.Equal(t, 12.5, decodeData(t, env)["value"])

	doJSON(t, a, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
	status, _ = doJSON(t, a, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
