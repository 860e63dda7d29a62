package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dulaj69/itp-final-project-sub000/models"
)

func TestPriceOrderItems(t *testing.T) {
	catalogID := primitive.NewObjectID()
	missingID := primitive.NewObjectID()

	tests := []struct {
		name           string
		inputs         []OrderItemInput
		setupMocks     func(*MockProductFinder)
		expectedStatus int
		expectedMsg    string
		check          func(*testing.T, []models.OrderItem)
	}{
		{
			name:   "catalog item takes database price over client price",
			inputs: []OrderItemInput{{ProductID: catalogID.Hex(), Quantity: 2, Price: 1}},
			setupMocks: func(finder *MockProductFinder) {
				finder.On("FindProductByID", mock.Anything, catalogID).Return(&models.Product{
					ID:    catalogID,
					Name:  "Ceylon Cinnamon",
					Price: 25,
				}, nil)
			},
			check: func(t *testing.T, items []models.OrderItem) {
				assert.Len(t, items, 1)
				assert.Equal(t, 25.0, items[0].Price)
				assert.Equal(t, "Ceylon Cinnamon", items[0].ProductName)
				assert.Equal(t, &catalogID, items[0].ProductID)
			},
		},
		{
			name:   "free-text item trusts the client price",
			inputs: []OrderItemInput{{ProductName: "Salt", Quantity: 2, Price: 50}},
			check: func(t *testing.T, items []models.OrderItem) {
				assert.Len(t, items, 1)
				assert.Equal(t, 50.0, items[0].Price)
				assert.Nil(t, items[0].ProductID)
			},
		},
		{
			name:   "unknown product id maps to 404 naming the id",
			inputs: []OrderItemInput{{ProductID: missingID.Hex(), Quantity: 1}},
			setupMocks: func(finder *MockProductFinder) {
				finder.On("FindProductByID", mock.Anything, missingID).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Product with ID " + missingID.Hex() + " not found",
		},
		{
			name:           "item with neither product id nor name+price maps to 400",
			inputs:         []OrderItemInput{{Quantity: 1}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero quantity maps to 400",
			inputs:         []OrderItemInput{{ProductName: "Salt", Quantity: 0, Price: 50}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed hex id maps to 400",
			inputs:         []OrderItemInput{{ProductID: "not-a-hex-id", Quantity: 1}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty item list maps to 400",
			inputs:         nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "database failure maps to 500",
			inputs: []OrderItemInput{{ProductID: catalogID.Hex(), Quantity: 1}},
			setupMocks: func(finder *MockProductFinder) {
				finder.On("FindProductByID", mock.Anything, catalogID).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := new(MockProductFinder)
			if tt.setupMocks != nil {
				tt.setupMocks(finder)
			}

			items, itemErr := priceOrderItems(context.Background(), finder, tt.inputs)

			if tt.expectedStatus != 0 {
				assert.NotNil(t, itemErr)
				assert.Equal(t, tt.expectedStatus, itemErr.Status)
				if tt.expectedMsg != "" {
					assert.Equal(t, tt.expectedMsg, itemErr.Message)
				}
				assert.Nil(t, items)
			} else {
				assert.Nil(t, itemErr)
				tt.check(t, items)
			}
			finder.AssertExpectations(t)
		})
	}
}

func TestPriceOrderItemsTotalMatchesScenario(t *testing.T) {
	// Salt, 2 x 50 -> order total 100
	finder := new(MockProductFinder)
	items, itemErr := priceOrderItems(context.Background(), finder, []OrderItemInput{
		{ProductName: "Salt", Quantity: 2, Price: 50},
	})
	assert.Nil(t, itemErr)

	order := models.Order{Items: items, OrderStatus: models.OrderPending}
	order.ComputeTotal()
	assert.Equal(t, 100.0, order.TotalAmount)

	assert.True(t, order.Cancel("no longer needed"))
	assert.Equal(t, models.OrderCancelled, order.OrderStatus)
	assert.False(t, order.Cancel("again"))
}
