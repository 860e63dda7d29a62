// controllers/payment.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dulaj69/itp-final-project-sub000/models"
	"github.com/dulaj69/itp-final-project-sub000/utils"
)

// ErrIntentNotSucceeded means the processor has not settled the intent yet
var ErrIntentNotSucceeded = errors.New("payment intent has not succeeded")

// verifyIntent re-checks an intent with the processor and returns the
// amount it settled for
func verifyIntent(gateway utils.PaymentGateway, intentID string) (float64, error) {
	intent, err := gateway.RetrieveIntent(intentID)
	if err != nil {
		return 0, err
	}
	if intent.Status != "succeeded" {
		return 0, ErrIntentNotSucceeded
	}
	return intent.Amount, nil
}

// PaymentController handles payment intents and completions
type PaymentController struct {
	OrderCollection   *mongo.Collection
	PaymentCollection *mongo.Collection
	UserCollection    *mongo.Collection
	Gateway           utils.PaymentGateway
	EmailService      *utils.EmailService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(client *mongo.Client, gateway utils.PaymentGateway, emailService *utils.EmailService) *PaymentController {
	return &PaymentController{
		OrderCollection:   utils.GetCollection(client, "orders"),
		PaymentCollection: utils.GetCollection(client, "payments"),
		UserCollection:    utils.GetCollection(client, "users"),
		Gateway:           gateway,
		EmailService:      emailService,
	}
}

// CreatePaymentIntent asks the processor for an intent and returns its
// client secret. The amount comes from the request body verbatim.
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID  string  `json:"order_id"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := pc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	intent, err := pc.Gateway.CreateIntent(req.Amount, currency, orderID.Hex())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"payment_intent_id": intent.ID,
		"client_secret":     intent.ClientSecret,
	})
}

// CompletePayment records a payment and marks the order paid/processing.
// Each call inserts a fresh Payment document; there is no idempotency
// key, so a repeated call with the same intent id inserts a duplicate.
func (pc *PaymentController) CompletePayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["orderId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		PaymentIntentID string `json:"payment_intent_id"`
		Verify          bool   `json:"verify"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := pc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	if order.PaymentMethod == models.MethodCard && req.PaymentIntentID == "" {
		respondError(w, http.StatusBadRequest, "payment_intent_id is required for card payments")
		return
	}

	amount := order.TotalAmount
	if req.Verify && order.PaymentMethod == models.MethodCard {
		verified, err := verifyIntent(pc.Gateway, req.PaymentIntentID)
		if errors.Is(err, ErrIntentNotSucceeded) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		amount = verified
	}

	payment := models.Payment{
		OrderID:         orderID,
		PaymentIntentID: req.PaymentIntentID,
		Amount:          amount,
		Method:          order.PaymentMethod,
		Status:          models.PaymentRecordCompleted,
		CreatedAt:       time.Now(),
	}
	result, err := pc.PaymentCollection.InsertOne(ctx, payment)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}
	payment.ID = result.InsertedID.(primitive.ObjectID)

	update := bson.M{"$set": bson.M{
		"payment_status": models.PaymentPaid,
		"order_status":   models.OrderProcessing,
	}}
	if _, err := pc.OrderCollection.UpdateOne(ctx, bson.M{"_id": orderID}, update); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	order.PaymentStatus = models.PaymentPaid
	order.OrderStatus = models.OrderProcessing

	go pc.sendConfirmation(order, payment)

	respondJSON(w, http.StatusOK, payment)
}

func (pc *PaymentController) sendConfirmation(order models.Order, payment models.Payment) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var user models.User
	if err := pc.UserCollection.FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&user); err != nil {
		log.Printf("Failed to look up user for payment confirmation: %v", err)
		return
	}
	if err := pc.EmailService.SendPaymentConfirmationEmail(user.Email, user.Name, order, payment); err != nil {
		log.Printf("Failed to send payment confirmation to %s: %v", user.Email, err)
	}
}

// ListPaymentsForOrder returns the payment records tied to one order
func (pc *PaymentController) ListPaymentsForOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["orderId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := pc.PaymentCollection.Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding payments")
		return
	}

	respondJSON(w, http.StatusOK, payments)
}
