package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/models"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"Esperando", "Procesando", "Terminado"} {
		status, err := models.ParseOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(status))
	}

	_, err := models.ParseOrderStatus("Cancelado")
	assert.Error(t, err)
	_, err = models.ParseOrderStatus("")
	assert.Error(t, err)
}

func TestOrderStatus_OnlyAdvancesOneStep(t *testing.T) {
	assert.True(t, models.StatusWaiting.CanTransitionTo(models.StatusProcessing))
	assert.True(t, models.StatusProcessing.CanTransitionTo(models.StatusFinished))

	assert.False(t, models.StatusWaiting.CanTransitionTo(models.StatusFinished))
	assert.False(t, models.StatusProcessing.CanTransitionTo(models.StatusWaiting))
	assert.False(t, models.StatusFinished.CanTransitionTo(models.StatusProcessing))
	assert.False(t, models.StatusFinished.CanTransitionTo(models.StatusFinished))
	assert.False(t, models.OrderStatus("bogus").CanTransitionTo(models.StatusProcessing))

	assert.True(t, models.StatusFinished.Terminal())
	assert.False(t, models.StatusProcessing.Terminal())
}

func TestOrder_Deletable(t *testing.T) {
	order := models.Order{Status: models.StatusWaiting}
	assert.True(t, order.Deletable())

	order.Status = models.StatusProcessing
	assert.False(t, order.Deletable())
}

func TestParseRole(t *testing.T) {
	role, err := models.ParseRole("Administrador")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	role, err = models.ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, models.Role(""), role)

	_, err = models.ParseRole("root")
	assert.Error(t, err)
}

func TestNewOrderResponse(t *testing.T) {
	url := "https://x/doc.pdf"
	adminID := int64(7)
	resp := models.NewOrderResponse(&models.Order{
		ID: 42, ClientID: 3, AdminID: &adminID, Copies: 2,
		Status: models.StatusProcessing, DocumentURL: &url,
	})

	assert.Equal(t, "Procesando", resp.Status)
	assert.Equal(t, int64(7), *resp.AdminID)
	assert.False(t, resp.Deletable)
}
