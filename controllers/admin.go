// controllers/admin.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/dulaj69/itp-final-project-sub000/models"
	"github.com/dulaj69/itp-final-project-sub000/utils"
)

// DashboardStats is the merged result of the four dashboard queries
type DashboardStats struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalUsers    int64   `json:"total_users"`
	PendingOrders int64   `json:"pending_orders"`
}

// StatsSource supplies the dashboard counters; interface so the handler
// is testable without a live database
type StatsSource interface {
	CountOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountPendingOrders(ctx context.Context) (int64, error)
}

type mongoStats struct {
	orders *mongo.Collection
	users  *mongo.Collection
}

func (m mongoStats) CountOrders(ctx context.Context) (int64, error) {
	return m.orders.CountDocuments(ctx, bson.M{})
}

func (m mongoStats) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}},
	}
	cursor, err := m.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (m mongoStats) CountUsers(ctx context.Context) (int64, error) {
	return m.users.CountDocuments(ctx, bson.M{})
}

func (m mongoStats) CountPendingOrders(ctx context.Context) (int64, error) {
	return m.orders.CountDocuments(ctx, bson.M{"order_status": models.OrderPending})
}

// fetchDashboardStats runs the four queries concurrently and merges them
func fetchDashboardStats(ctx context.Context, src StatsSource) (*DashboardStats, error) {
	var stats DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := src.CountOrders(ctx)
		stats.TotalOrders = n
		return err
	})
	g.Go(func() error {
		total, err := src.TotalRevenue(ctx)
		stats.TotalRevenue = total
		return err
	})
	g.Go(func() error {
		n, err := src.CountUsers(ctx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := src.CountPendingOrders(ctx)
		stats.PendingOrders = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminController handles dashboard and management requests
type AdminController struct {
	OrderCollection        *mongo.Collection
	UserCollection         *mongo.Collection
	QuotaCollection        *mongo.Collection
	NotificationCollection *mongo.Collection
	Stats                  StatsSource
}

// NewAdminController creates a new AdminController
func NewAdminController(client *mongo.Client) *AdminController {
	orders := utils.GetCollection(client, "orders")
	users := utils.GetCollection(client, "users")
	return &AdminController{
		OrderCollection:        orders,
		UserCollection:         users,
		QuotaCollection:        utils.GetCollection(client, "quotas"),
		NotificationCollection: utils.GetCollection(client, "notifications"),
		Stats:                  mongoStats{orders: orders, users: users},
	}
}

// GetDashboardStats returns the merged dashboard counters
func (ac *AdminController) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := fetchDashboardStats(ctx, ac.Stats)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// ListOrders returns every order in the system
func (ac *AdminController) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := ac.OrderCollection.Find(ctx, bson.M{})
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

// UpdateOrderStatus moves an order along the lifecycle. Moves outside
// the transition table are rejected.
func (ac *AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !models.IsValidOrderStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "Invalid order status")
		return
	}
	next := models.OrderStatus(req.Status)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := ac.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	if !order.OrderStatus.CanTransitionTo(next) {
		respondError(w, http.StatusBadRequest, "Illegal status transition")
		return
	}

	if _, err := ac.OrderCollection.UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{
		"$set": bson.M{"order_status": next},
	}); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	notification := models.Notification{
		UserID:    order.UserID,
		Message:   "Your order " + orderID.Hex() + " is now " + string(next),
		CreatedAt: time.Now(),
	}
	ac.NotificationCollection.InsertOne(ctx, notification)

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order status updated"})
}

// UpdateRefundStatus moves a cancelled order's refund along
func (ac *AdminController) UpdateRefundStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		RefundStatus string `json:"refund_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !models.IsValidRefundStatus(req.RefundStatus) {
		respondError(w, http.StatusBadRequest, "Invalid refund status")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"refund_status": models.RefundStatus(req.RefundStatus)}}
	if req.RefundStatus == string(models.RefundProcessed) {
		update["$set"].(bson.M)["payment_status"] = models.PaymentRefunded
	}

	result, err := ac.OrderCollection.UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update refund status")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Refund status updated"})
}

// CancelOrderWithRefund cancels on the customer's behalf and opens a refund
func (ac *AdminController) CancelOrderWithRefund(w http.ResponseWriter, r *http.Request) {
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
	if err := ac.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	if !order.Cancel(req.Reason) {
		respondError(w, http.StatusBadRequest, "Order can no longer be cancelled")
		return
	}
	order.RefundStatus = models.RefundPending

	update := bson.M{"$set": bson.M{
		"order_status":        order.OrderStatus,
		"cancellation_reason": order.CancellationReason,
		"cancellation_date":   order.CancellationDate,
		"refund_status":       order.RefundStatus,
	}}
	if _, err := ac.OrderCollection.UpdateOne(ctx, bson.M{"_id": orderID}, update); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// DeleteOrder removes an order document outright. Associated Payment
// records are left in place.
func (ac *AdminController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.OrderCollection.DeleteOne(ctx, bson.M{"_id": orderID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}

// ListUsers returns every user, passwords stripped
func (ac *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := ac.UserCollection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding users")
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	respondJSON(w, http.StatusOK, users)
}

// UpdateUser lets an admin change a user's name, address or role
func (ac *AdminController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Name    string          `json:"name,omitempty"`
		Address *models.Address `json:"address,omitempty"`
		Role    string          `json:"role,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Address != nil {
		set["address"] = req.Address
	}
	if req.Role != "" {
		if req.Role != "user" && req.Role != "admin" {
			respondError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		set["role"] = req.Role
	}
	if len(set) == 0 {
		respondError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.UserCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User updated"})
}

// DeleteUser removes a user account
func (ac *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.UserCollection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// ListQuotas returns all quotas
func (ac *AdminController) ListQuotas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ac.QuotaCollection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve quotas")
		return
	}
	defer cursor.Close(ctx)

	quotas := []models.Quota{}
	if err := cursor.All(ctx, &quotas); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding quotas")
		return
	}
	respondJSON(w, http.StatusOK, quotas)
}

// CreateQuota adds a quota
func (ac *AdminController) CreateQuota(w http.ResponseWriter, r *http.Request) {
	var quota models.Quota
	if err := json.NewDecoder(r.Body).Decode(&quota); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if quota.Name == "" || quota.Limit < 0 {
		respondError(w, http.StatusBadRequest, "Quota needs a name and a non-negative limit")
		return
	}
	quota.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.QuotaCollection.InsertOne(ctx, quota)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create quota")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"id": result.InsertedID})
}

// UpdateQuota updates a quota's limit/used counters
func (ac *AdminController) UpdateQuota(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quotaID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quota ID")
		return
	}

	var req struct {
		Limit  *int    `json:"limit,omitempty"`
		Used   *int    `json:"used,omitempty"`
		Period *string `json:"period,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Limit != nil {
		set["limit"] = *req.Limit
	}
	if req.Used != nil {
		set["used"] = *req.Used
	}
	if req.Period != nil {
		set["period"] = *req.Period
	}
	if len(set) == 0 {
		respondError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.QuotaCollection.UpdateOne(ctx, bson.M{"_id": quotaID}, bson.M{"$set": set})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update quota")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Quota not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Quota updated"})
}

// DeleteQuota removes a quota
func (ac *AdminController) DeleteQuota(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quotaID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quota ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.QuotaCollection.DeleteOne(ctx, bson.M{"_id": quotaID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete quota")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Quota not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Quota deleted"})
}
