package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"printshop-backend/internal/models"
)

// Order events broadcast on the Realtime topic.
const (
	EventOrderCreated   = "order_created"
	EventOrderAssigned  = "order_assigned"
	EventOrderCompleted = "order_completed"
	EventOrderDeleted   = "order_deleted"
)

// RealtimeClient sends broadcast messages through the Realtime REST API so
// list screens subscribed to the topic know to refresh.
type RealtimeClient struct {
	http  *resty.Client
	topic string
}

type broadcastMessage struct {
	Topic   string                 `json:"topic"`
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload"`
}

type broadcastRequest struct {
	Messages []broadcastMessage `json:"messages"`
}

// NewRealtimeClient builds a client without retries. Broadcasts follow a
// committed write and are not worth holding a response for.
func NewRealtimeClient(supabaseURL, apiKey, topic string) *RealtimeClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(supabaseURL, "/")+"/realtime/v1").
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey).
		SetTimeout(2 * time.Second)

	return &RealtimeClient{
		http:  client,
		topic: topic,
	}
}

func (r *RealtimeClient) PublishOrderEvent(ctx context.Context, event string, order *models.Order) error {
	body := broadcastRequest{
		Messages: []broadcastMessage{{
			Topic:   r.topic,
			Event:   event,
			Payload: OrderEventPayload(order),
		}},
	}

	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/api/broadcast")
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event, err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to publish %s: %s", event, resp.Status())
	}
	return nil
}

func OrderEventPayload(order *models.Order) map[string]interface{} {
	payload := map[string]interface{}{
		"order_id":   order.ID,
		"id_cliente": order.ClientID,
		"estado":     string(order.Status),
	}
	if order.AdminID != nil {
		payload["id_admin"] = *order.AdminID
	}
	return payload
}
