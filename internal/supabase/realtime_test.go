package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/models"
	"printshop-backend/internal/supabase"
)

func TestRealtimeClient_PublishOrderEvent(t *testing.T) {
	var (
		gotPath   string
		gotAPIKey string
		gotBody   map[string]interface{}
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := supabase.NewRealtimeClient(server.URL, "anon-key", "orders")
	adminID := int64(7)
	err := client.PublishOrderEvent(context.Background(), supabase.EventOrderAssigned, &models.Order{
		ID: 42, ClientID: 3, AdminID: &adminID, Status: models.StatusProcessing,
	})
	require.NoError(t, err)

	assert.Equal(t, "/realtime/v1/api/broadcast", gotPath)
	assert.Equal(t, "anon-key", gotAPIKey)

	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]interface{})
	assert.Equal(t, "orders", msg["topic"])
	assert.Equal(t, "order_assigned", msg["event"])
	payload := msg["payload"].(map[string]interface{})
	assert.Equal(t, float64(42), payload["order_id"])
	assert.Equal(t, "Procesando", payload["estado"])
	assert.Equal(t, float64(7), payload["id_admin"])
}

func TestRealtimeClient_PublishOrderEvent_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := supabase.NewRealtimeClient(server.URL, "bad-key", "orders")
	err := client.PublishOrderEvent(context.Background(), supabase.EventOrderCreated, &models.Order{ID: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order_created")
}

func TestRealtimeClient_PublishOrderEvent_NoRetries(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := supabase.NewRealtimeClient(server.URL, "anon-key", "orders")
	err := client.PublishOrderEvent(context.Background(), supabase.EventOrderAssigned, &models.Order{ID: 1})

	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
