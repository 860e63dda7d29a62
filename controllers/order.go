// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dulaj69/itp-final-project-sub000/models"
	"github.com/dulaj69/itp-final-project-sub000/utils"
)

// OrderItemInput is one requested line in a checkout. Either a catalog
// product id, or a free-text name with a client-supplied price.
type OrderItemInput struct {
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price,omitempty"`
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	Items           []OrderItemInput `json:"items"`
	PaymentMethod   string           `json:"payment_method"`
	ShippingAddress models.Address   `json:"shipping_address"`
}

// productFinder is the slice of the product collection the pricing step
// needs, kept as an interface so it can be mocked in tests
type productFinder interface {
	FindProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type mongoProductFinder struct {
	coll *mongo.Collection
}

func (f mongoProductFinder) FindProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := f.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// itemError carries the HTTP status a bad line item should surface as
type itemError struct {
	Status  int
	Message string
}

// priceOrderItems turns checkout inputs into priced order items. Catalog
// items take the current database price over anything the client sent;
// free-text items trust the client price outright.
func priceOrderItems(ctx context.Context, finder productFinder, inputs []OrderItemInput) ([]models.OrderItem, *itemError) {
	if len(inputs) == 0 {
		return nil, &itemError{http.StatusBadRequest, "Order must contain at least one item"}
	}

	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, &itemError{http.StatusBadRequest, "Item quantity must be at least 1"}
		}

		if in.ProductID != "" {
			id, err := primitive.ObjectIDFromHex(in.ProductID)
			if err != nil {
				return nil, &itemError{http.StatusBadRequest, fmt.Sprintf("Invalid product ID %s", in.ProductID)}
			}
			product, err := finder.FindProductByID(ctx, id)
			if err != nil {
				return nil, &itemError{http.StatusInternalServerError, err.Error()}
			}
			if product == nil {
				return nil, &itemError{http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", in.ProductID)}
			}
			items = append(items, models.OrderItem{
				ProductID:   &id,
				ProductName: product.Name,
				Quantity:    in.Quantity,
				Price:       product.Price,
			})
			continue
		}

		if in.ProductName != "" && in.Price >= 0 {
			items = append(items, models.OrderItem{
				ProductName: in.ProductName,
				Quantity:    in.Quantity,
				Price:       in.Price,
			})
			continue
		}

		return nil, &itemError{http.StatusBadRequest, "Each item needs a product_id or a product_name with a price"}
	}
	return items, nil
}

// OrderController handles order-related requests
type OrderController struct {
	OrderCollection *mongo.Collection
	UserCollection  *mongo.Collection
	Products        productFinder
	EmailService    *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		OrderCollection: utils.GetCollection(client, "orders"),
		UserCollection:  utils.GetCollection(client, "users"),
		Products:        mongoProductFinder{coll: utils.GetCollection(client, "products")},
		EmailService:    emailService,
	}
}

// CreateOrder creates a new order from submitted line items. Stock is
// never touched here; reservation is a separate endpoint pair.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid user ID in token")
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if method != models.MethodCard && method != models.MethodCOD {
		respondError(w, http.StatusBadRequest, "Invalid payment method")
		return
	}

	if vr := utils.ValidateAddress(req.ShippingAddress); !vr.Valid() {
		respondValidationErrors(w, vr)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, itemErr := priceOrderItems(ctx, oc.Products, req.Items)
	if itemErr != nil {
		respondError(w, itemErr.Status, itemErr.Message)
		return
	}

	order := models.Order{
		UserID:          userID,
		Items:           items,
		PaymentStatus:   models.PaymentPending,
		PaymentMethod:   method,
		OrderStatus:     models.OrderPending,
		ShippingAddress: req.ShippingAddress,
		RefundStatus:    models.RefundNotApplicable,
		CreatedAt:       time.Now(),
	}
	order.ComputeTotal()

	result, err := oc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	// Receipt email goes out in the background; failures only get logged
	go func(email, name string, order models.Order) {
		if err := oc.EmailService.SendOrderReceiptEmail(email, name, order); err != nil {
			log.Printf("Failed to send receipt to %s: %v", email, err)
		}
	}(claims.Email, oc.lookupUserName(userID), order)

	respondJSON(w, http.StatusCreated, order)
}

func (oc *OrderController) lookupUserName(userID primitive.ObjectID) string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var user models.User
	if err := oc.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return "Customer"
	}
	return user.Name
}

// GetOrderHistory retrieves the authenticated user's orders, newest first
func (oc *OrderController) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid user ID in token")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := oc.OrderCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding orders")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetOrder retrieves one order; users can only read their own
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := oc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	if claims.Role != "admin" && order.UserID.Hex() != claims.UserID {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// CancelOrder cancels a pending or processing order. Paid orders get
// their refund status moved to pending; money movement is manual.
func (oc *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := oc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	if claims.Role != "admin" && order.UserID.Hex() != claims.UserID {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if !order.Cancel(req.Reason) {
		respondError(w, http.StatusBadRequest, "Order can no longer be cancelled")
		return
	}
	if order.PaymentStatus == models.PaymentPaid {
		order.RefundStatus = models.RefundPending
	}

	update := bson.M{"$set": bson.M{
		"order_status":        order.OrderStatus,
		"cancellation_reason": order.CancellationReason,
		"cancellation_date":   order.CancellationDate,
		"refund_status":       order.RefundStatus,
	}}
	if _, err := oc.OrderCollection.UpdateOne(ctx, bson.M{"_id": orderID}, update); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	go func(email, name string, order models.Order) {
		if err := oc.EmailService.SendCancellationEmail(email, name, order); err != nil {
			log.Printf("Failed to send cancellation email to %s: %v", email, err)
		}
	}(claims.Email, oc.lookupUserName(order.UserID), order)

	respondJSON(w, http.StatusOK, order)
}
