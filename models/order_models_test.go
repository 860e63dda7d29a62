package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name          string
		items         []OrderItem
		expectedTotal float64
	}{
		{
			name:          "single item",
			items:         []OrderItem{{ProductName: "Salt", Quantity: 2, Price: 50}},
			expectedTotal: 100,
		},
		{
			name: "multiple items",
			items: []OrderItem{
				{ProductName: "Cinnamon", Quantity: 3, Price: 12.5},
				{ProductName: "Cardamom", Quantity: 1, Price: 30},
			},
			expectedTotal: 67.5,
		},
		{
			name:          "no items",
			items:         nil,
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := Order{Items: tt.items}
			order.ComputeTotal()
			assert.Equal(t, tt.expectedTotal, order.TotalAmount)
			for _, item := range order.Items {
				assert.Equal(t, item.Price*float64(item.Quantity), item.Subtotal)
			}
		})
	}
}

func TestComputeTotalRecomputesAfterMutation(t *testing.T) {
	order := Order{Items: []OrderItem{{ProductName: "Salt", Quantity: 2, Price: 50}}}
	order.ComputeTotal()
	assert.Equal(t, 100.0, order.TotalAmount)

	order.Items[0].Quantity = 3
	order.ComputeTotal()
	assert.Equal(t, 150.0, order.TotalAmount)
	assert.Equal(t, 150.0, order.Items[0].Subtotal)
}

func TestCanBeCancelled(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected bool
	}{
		{OrderPending, true},
		{OrderProcessing, true},
		{OrderCompleted, false},
		{OrderCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			order := Order{OrderStatus: tt.status}
			assert.Equal(t, tt.expected, order.CanBeCancelled())
		})
	}
}

func TestCancel(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		order := Order{OrderStatus: OrderPending}
		ok := order.Cancel("changed my mind")

		assert.True(t, ok)
		assert.Equal(t, OrderCancelled, order.OrderStatus)
		assert.Equal(t, "changed my mind", order.CancellationReason)
		assert.NotNil(t, order.CancellationDate)
	})

	t.Run("second cancel is rejected and changes nothing", func(t *testing.T) {
		order := Order{OrderStatus: OrderPending}
		assert.True(t, order.Cancel("first"))
		firstDate := order.CancellationDate

		ok := order.Cancel("second")
		assert.False(t, ok)
		assert.Equal(t, OrderCancelled, order.OrderStatus)
		assert.Equal(t, "first", order.CancellationReason)
		assert.Equal(t, firstDate, order.CancellationDate)
	})

	t.Run("completed order cannot be cancelled", func(t *testing.T) {
		order := Order{OrderStatus: OrderCompleted}
		ok := order.Cancel("too late")

		assert.False(t, ok)
		assert.Equal(t, OrderCompleted, order.OrderStatus)
		assert.Empty(t, order.CancellationReason)
		assert.Nil(t, order.CancellationDate)
	})
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderCompleted, false},
		{OrderProcessing, OrderCompleted, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderProcessing, OrderPending, false},
		{OrderCompleted, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderProcessing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusValidators(t *testing.T) {
	assert.True(t, IsValidOrderStatus("pending"))
	assert.True(t, IsValidOrderStatus("cancelled"))
	assert.False(t, IsValidOrderStatus("shipped"))
	assert.False(t, IsValidOrderStatus(""))

	assert.True(t, IsValidRefundStatus("not_applicable"))
	assert.True(t, IsValidRefundStatus("processed"))
	assert.False(t, IsValidRefundStatus("done"))
}
