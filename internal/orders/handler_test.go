package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bunueleria-system/internal/domain"
	"bunueleria-system/internal/httpx"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, repo RepositoryInterface) *httptest.Server {
	t.Helper()
	h := NewHandler(newTestService(repo, &mockPublisher{}))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/orders", h.Create)
	mux.HandleFunc("GET /api/orders", h.List)
	mux.HandleFunc("GET /api/orders/{id}", h.Get)
	mux.HandleFunc("PUT /api/orders", h.UpdateStatus)
	mux.HandleFunc("DELETE /api/orders/{id}", h.Delete)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeEnvelope(t *testing.T, resp *http.Response) httpx.Envelope {
	t.Helper()
	defer resp.Body.Close()
	var env httpx.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestCreateOrderEndpoint(t *testing.T) {
	srv := newTestServer(t, newMockRepo())

	body := `{
		"customerName": "María",
		"orderType": "physical",
		"items": [{"id": "bunuelo-clasico", "quantity": 2}]
	}`
	resp, err := http.Post(srv.URL+"/api/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Success)

	data, _ := json.Marshal(env.Data)
	var order struct {
		Total     int64  `json:"total"`
		QueueType string `json:"queueType"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(data, &order))
	require.Equal(t, int64(3000), order.Total)
	require.Equal(t, "tradicionales", order.QueueType)
	require.Equal(t, "pending", order.Status)
}

func TestCreateOrderEndpointRejectsSpoofedPrice(t *testing.T) {
	srv := newTestServer(t, newMockRepo())

	// client claims the item costs 1 peso; server prices it anyway
	body := `{
		"customerName": "Mallory",
		"orderType": "physical",
		"items": [{"id": "bunuelo-hawaiano", "quantity": 1, "price": 1}]
	}`
	resp, err := http.Post(srv.URL+"/api/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	data, _ := json.Marshal(env.Data)
	var order struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(data, &order))
	require.Equal(t, int64(3000), order.Total)
}

func TestCreateOrderEndpointValidationFailures(t *testing.T) {
	repo := newMockRepo()
	srv := newTestServer(t, repo)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"unknown item", `{"customerName":"A","orderType":"physical","items":[{"id":"does-not-exist","quantity":1}]}`},
		{"missing name", `{"orderType":"physical","items":[{"id":"bunuelo-clasico","quantity":1}]}`},
		{"no items", `{"customerName":"A","orderType":"physical","items":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/orders", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			env := decodeEnvelope(t, resp)
			require.False(t, env.Success)
			require.NotEmpty(t, env.Error)
		})
	}
	require.Empty(t, repo.created)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	repo := newMockRepo()
	repo.orders[5] = domain.Order{ID: 5, Status: domain.StatusPending}
	srv := newTestServer(t, repo)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/orders",
		strings.NewReader(`{"id":5,"status":"ready"}`))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, decodeEnvelope(t, resp).Success)

	req, _ = http.NewRequest(http.MethodPut, srv.URL+"/api/orders",
		strings.NewReader(`{"id":404,"status":"ready"}`))
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.False(t, env.Success)
	require.Equal(t, "Order not found", env.Error)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	repo := newMockRepo()
	repo.orders[9] = domain.Order{ID: 9, Status: domain.StatusPending}
	srv := newTestServer(t, repo)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/orders/9", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/orders/9", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
