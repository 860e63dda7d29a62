// controllers/inquiry.go
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

	"github.com/dulaj69/itp-final-project-sub000/models"
	"github.com/dulaj69/itp-final-project-sub000/utils"
)

// InquiryController handles inquiries, feedback and user notifications
type InquiryController struct {
	InquiryCollection      *mongo.Collection
	FeedbackCollection     *mongo.Collection
	NotificationCollection *mongo.Collection
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(client *mongo.Client) *InquiryController {
	return &InquiryController{
		InquiryCollection:      utils.GetCollection(client, "inquiries"),
		FeedbackCollection:     utils.GetCollection(client, "feedback"),
		NotificationCollection: utils.GetCollection(client, "notifications"),
	}
}

// CreateInquiry files a customer question. Works for guests too; a
// logged-in caller gets their user id attached.
func (ic *InquiryController) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var inquiry models.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if inquiry.Subject == "" || inquiry.Message == "" {
		respondError(w, http.StatusBadRequest, "Subject and message are required")
		return
	}

	if claims, ok := currentClaims(r); ok {
		if id, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			inquiry.UserID = id
		}
	}
	inquiry.Status = "open"
	inquiry.Response = ""
	inquiry.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ic.InquiryCollection.InsertOne(ctx, inquiry)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"id": result.InsertedID})
}

// ListInquiries returns all inquiries (Admin only)
func (ic *InquiryController) ListInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := ic.InquiryCollection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve inquiries")
		return
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding inquiries")
		return
	}
	respondJSON(w, http.StatusOK, inquiries)
}

// RespondInquiry records an admin answer and notifies the user
func (ic *InquiryController) RespondInquiry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	inquiryID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid inquiry ID")
		return
	}

	var req struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Response == "" {
		respondError(w, http.StatusBadRequest, "Response is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var inquiry models.Inquiry
	if err := ic.InquiryCollection.FindOne(ctx, bson.M{"_id": inquiryID}).Decode(&inquiry); err != nil {
		respondError(w, http.StatusNotFound, "Inquiry not found")
		return
	}

	if _, err := ic.InquiryCollection.UpdateOne(ctx, bson.M{"_id": inquiryID}, bson.M{
		"$set": bson.M{"response": req.Response, "status": "answered"},
	}); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update inquiry")
		return
	}

	if !inquiry.UserID.IsZero() {
		ic.NotificationCollection.InsertOne(ctx, models.Notification{
			UserID:    inquiry.UserID,
			Message:   "Your inquiry \"" + inquiry.Subject + "\" has been answered",
			CreatedAt: time.Now(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Inquiry answered"})
}

// CreateFeedback records a rating/comment
func (ic *InquiryController) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if vr := utils.ValidateFeedback(feedback); !vr.Valid() {
		respondValidationErrors(w, vr)
		return
	}

	if claims, ok := currentClaims(r); ok {
		if id, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			feedback.UserID = id
		}
	}
	feedback.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ic.FeedbackCollection.InsertOne(ctx, feedback)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create feedback")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"id": result.InsertedID})
}

// ListFeedback returns all feedback (Admin only)
func (ic *InquiryController) ListFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := ic.FeedbackCollection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve feedback")
		return
	}
	defer cursor.Close(ctx)

	feedback := []models.Feedback{}
	if err := cursor.All(ctx, &feedback); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding feedback")
		return
	}
	respondJSON(w, http.StatusOK, feedback)
}

// GetNotifications returns the authenticated user's notifications
func (ic *InquiryController) GetNotifications(w http.ResponseWriter, r *http.Request) {
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

	cursor, err := ic.NotificationCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding notifications")
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead flips one notification to read
func (ic *InquiryController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
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

	vars := mux.Vars(r)
	notificationID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ic.NotificationCollection.UpdateOne(ctx,
		bson.M{"_id": notificationID, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Notification not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Notification marked read"})
}
