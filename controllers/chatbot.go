// controllers/chatbot.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dulaj69/itp-final-project-sub000/models"
	"github.com/dulaj69/itp-final-project-sub000/utils"
)

// DefaultChatbotReply is returned when no QA entry matches
const DefaultChatbotReply = "Sorry, I don't have an answer for that. Please contact us through the inquiry form."

// MatchAnswer scans the QA list in order and returns the first entry
// whose keywords or stored question appear in the asked question.
// Matching is a plain case-insensitive substring scan.
func MatchAnswer(question string, qas []models.ChatbotQA) (string, bool) {
	q := strings.ToLower(question)
	for _, qa := range qas {
		for _, keyword := range qa.Keywords {
			if keyword != "" && strings.Contains(q, strings.ToLower(keyword)) {
				return qa.Answer, true
			}
		}
		if qa.Question != "" && strings.Contains(q, strings.ToLower(qa.Question)) {
			return qa.Answer, true
		}
	}
	return "", false
}

// ChatbotController serves the storefront Q&A widget
type ChatbotController struct {
	Collection *mongo.Collection
}

// NewChatbotController creates a new ChatbotController
func NewChatbotController(client *mongo.Client) *ChatbotController {
	return &ChatbotController{
		Collection: utils.GetCollection(client, "chatbot_qa"),
	}
}

// Ask answers a customer question against the stored QA pairs
func (cc *ChatbotController) Ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		respondError(w, http.StatusBadRequest, "Question is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := cc.Collection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load QA entries")
		return
	}
	defer cursor.Close(ctx)

	qas := []models.ChatbotQA{}
	if err := cursor.All(ctx, &qas); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding QA entries")
		return
	}

	answer, matched := MatchAnswer(req.Question, qas)
	if !matched {
		answer = DefaultChatbotReply
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"answer":  answer,
		"matched": matched,
	})
}

// ListQA returns every QA pair (Admin only)
func (cc *ChatbotController) ListQA(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := cc.Collection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load QA entries")
		return
	}
	defer cursor.Close(ctx)

	qas := []models.ChatbotQA{}
	if err := cursor.All(ctx, &qas); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding QA entries")
		return
	}
	respondJSON(w, http.StatusOK, qas)
}

// CreateQA adds a QA pair (Admin only)
func (cc *ChatbotController) CreateQA(w http.ResponseWriter, r *http.Request) {
	var qa models.ChatbotQA
	if err := json.NewDecoder(r.Body).Decode(&qa); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if qa.Question == "" || qa.Answer == "" {
		respondError(w, http.StatusBadRequest, "Question and answer are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cc.Collection.InsertOne(ctx, qa)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create QA entry")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"id": result.InsertedID})
}

// UpdateQA replaces a QA pair (Admin only)
func (cc *ChatbotController) UpdateQA(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	qaID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid QA ID")
		return
	}

	var qa models.ChatbotQA
	if err := json.NewDecoder(r.Body).Decode(&qa); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cc.Collection.UpdateOne(ctx, bson.M{"_id": qaID}, bson.M{"$set": bson.M{
		"question": qa.Question,
		"answer":   qa.Answer,
		"keywords": qa.Keywords,
	}})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update QA entry")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "QA entry not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "QA entry updated"})
}

// DeleteQA removes a QA pair (Admin only)
func (cc *ChatbotController) DeleteQA(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	qaID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid QA ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cc.Collection.DeleteOne(ctx, bson.M{"_id": qaID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete QA entry")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "QA entry not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "QA entry deleted"})
}
