package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"printshop-backend/internal/models"
	"printshop-backend/internal/supabase"
)

// publishTimeout bounds the Realtime broadcast that follows a committed write.
const publishTimeout = 2 * time.Second

type CreateOrderInput struct {
	Description string
	Copies      int
	Color       bool
}

// OrderService moves orders through Esperando -> Procesando -> Terminado.
// Transitions are conditional writes, so a stale screen can never move an
// order backwards or claim it twice.
type OrderService struct {
	orders   OrderStore
	uploader *DocumentUploader
	events   EventPublisher
}

func NewOrderService(orders OrderStore, uploader *DocumentUploader, events EventPublisher) *OrderService {
	return &OrderService{
		orders:   orders,
		uploader: uploader,
		events:   events,
	}
}

// Submit uploads the document and then inserts the order. If the insert
// fails the uploaded object is removed again.
func (s *OrderService) Submit(ctx context.Context, client *models.Profile, in CreateOrderInput, doc *Document) (*models.Order, error) {
	if client == nil {
		return nil, ErrProfileNotFound
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, fmt.Errorf("%w: a description is required", ErrValidation)
	}
	if in.Copies < 1 {
		return nil, fmt.Errorf("%w: copies must be a positive number", ErrValidation)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: a document is required", ErrValidation)
	}

	stored, err := s.uploader.Store(client.ID, *doc)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.CreateOrder(ctx, models.NewOrder{
		ClientID:    client.ID,
		Description: in.Description,
		Copies:      in.Copies,
		Color:       in.Color,
		DocumentURL: stored.URL,
	})
	if err != nil {
		s.uploader.Discard(stored.Path)
		if errors.Is(err, models.ErrConstraint) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	zap.L().Info("order created",
		zap.Int64("order_id", order.ID), zap.Int64("client_id", client.ID),
		zap.String("path", stored.Path), zap.Int("size", stored.Size))

	s.publish(ctx, supabase.EventOrderCreated, order)
	return order, nil
}

// Assign binds the administrator and moves the order to Procesando in one
// write. Losing a race against another administrator yields
// ErrAlreadyClaimed.
func (s *OrderService) Assign(ctx context.Context, admin *models.Profile, orderID int64) (*models.Order, error) {
	if !admin.IsAdmin() {
		return nil, ErrForbidden
	}

	order, err := s.orders.ClaimOrder(ctx, orderID, admin.ID)
	if errors.Is(err, models.ErrNotFound) {
		current, err := s.current(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: order %d is %s", ErrAlreadyClaimed, orderID, current.Status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign order: %w", err)
	}

	zap.L().Info("order assigned", zap.Int64("order_id", orderID), zap.Int64("admin_id", admin.ID))
	s.publish(ctx, supabase.EventOrderAssigned, order)
	return order, nil
}

// Complete finishes an order in Procesando. The administrator bound to the
// order is left untouched and is not compared with the caller.
func (s *OrderService) Complete(ctx context.Context, admin *models.Profile, orderID int64) (*models.Order, error) {
	if !admin.IsAdmin() {
		return nil, ErrForbidden
	}

	order, err := s.orders.CompleteOrder(ctx, orderID)
	if errors.Is(err, models.ErrNotFound) {
		current, err := s.current(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: order %d is %s, only %s orders can be completed",
			ErrInvalidTransition, orderID, current.Status, models.StatusProcessing)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}

	zap.L().Info("order completed", zap.Int64("order_id", orderID), zap.Int64("admin_id", admin.ID))
	s.publish(ctx, supabase.EventOrderCompleted, order)
	return order, nil
}

// Delete removes a waiting order of the caller. The row goes first, with
// the same status condition, so an order claimed in the meantime keeps its
// document. Keep this order: removing the document before the row would
// strip the file from an order an administrator just claimed.
func (s *OrderService) Delete(ctx context.Context, client *models.Profile, orderID int64) error {
	if client == nil {
		return ErrProfileNotFound
	}

	order, err := s.current(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ClientID != client.ID {
		return ErrForbidden
	}
	if !order.Deletable() {
		return fmt.Errorf("%w: only orders that have not been processed yet can be deleted (order %d is %s)",
			ErrNotDeletable, orderID, order.Status)
	}

	err = s.orders.DeleteWaitingOrder(ctx, orderID, client.ID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: order %d was picked up in the meantime", ErrNotDeletable, orderID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if order.DocumentURL != nil && *order.DocumentURL != "" {
		s.uploader.DiscardURL(*order.DocumentURL)
	}

	zap.L().Info("order deleted", zap.Int64("order_id", orderID), zap.Int64("client_id", client.ID))
	s.publish(ctx, supabase.EventOrderDeleted, order)
	return nil
}

// Get returns an order visible to the caller: any order for administrators,
// only their own for clients.
func (s *OrderService) Get(ctx context.Context, profile *models.Profile, orderID int64) (*models.Order, error) {
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	order, err := s.current(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !profile.IsAdmin() && order.ClientID != profile.ID {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ClientOrders(ctx context.Context, client *models.Profile) ([]models.Order, error) {
	if client == nil {
		return nil, ErrProfileNotFound
	}
	return s.list(ctx, models.OrderFilter{ClientID: client.ID, NewestFirst: true})
}

func (s *OrderService) Pending(ctx context.Context, admin *models.Profile) ([]models.Order, error) {
	if !admin.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.list(ctx, models.OrderFilter{Status: models.StatusWaiting})
}

func (s *OrderService) Assigned(ctx context.Context, admin *models.Profile) ([]models.Order, error) {
	if !admin.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.list(ctx, models.OrderFilter{Status: models.StatusProcessing, AdminID: admin.ID})
}

func (s *OrderService) History(ctx context.Context, admin *models.Profile) ([]models.Order, error) {
	if !admin.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.list(ctx, models.OrderFilter{Status: models.StatusFinished, NewestFirst: true})
}

func (s *OrderService) list(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) current(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// publish broadcasts a change that is already committed, so it ignores the
// caller's cancellation and gives up after publishTimeout.
func (s *OrderService) publish(ctx context.Context, event string, order *models.Order) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.events.PublishOrderEvent(ctx, event, order); err != nil {
		zap.L().Warn("failed to publish order event",
			zap.String("event", event), zap.Int64("order_id", order.ID), zap.Error(err))
	}
}
