package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusWaiting    OrderStatus = "Esperando"
	StatusProcessing OrderStatus = "Procesando"
	StatusFinished   OrderStatus = "Terminado"
)

var statusRank = map[OrderStatus]int{
	StatusWaiting:    0,
	StatusProcessing: 1,
	StatusFinished:   2,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := statusRank[status]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// CanTransitionTo reports whether next is the single step after s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	return ok && to == from+1
}

func (s OrderStatus) Terminal() bool {
	return s == StatusFinished
}

type Order struct {
	ID          int64
	ClientID    int64
	AdminID     *int64
	Description string
	Copies      int
	Color       bool
	Status      OrderStatus
	DocumentURL *string
	CreatedAt   time.Time
	FinishedAt  *time.Time

	// Display names joined from Usuarios; empty when unknown.
	ClientName string
	AdminName  string
}

// Deletable reports whether the owning client may still delete the order.
func (o *Order) Deletable() bool {
	return o.Status == StatusWaiting
}

type NewOrder struct {
	ClientID    int64
	Description string
	Copies      int
	Color       bool
	DocumentURL string
}

// OrderFilter selects rows for the list views. Zero values mean "any".
type OrderFilter struct {
	Status      OrderStatus
	ClientID    int64
	AdminID     int64
	NewestFirst bool
}

// StoredObject is an entry of a Storage bucket listing.
type StoredObject struct {
	Name   string
	Folder bool
}
