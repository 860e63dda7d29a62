package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry is a customer question routed to the admin team
type Inquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Response  string             `bson:"response,omitempty" json:"response,omitempty"`
	Status    string             `bson:"status" json:"status"` // "open" or "answered"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Feedback is a product or service rating left by a customer
type Feedback struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID  `bson:"user_id,omitempty" json:"user_id,omitempty"`
	ProductID *primitive.ObjectID `bson:"product_id,omitempty" json:"product_id,omitempty"`
	Rating    int                 `bson:"rating" json:"rating"` // 1..5
	Comment   string              `bson:"comment" json:"comment"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}

// Notification is a message shown to a user in the storefront
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Quota is an admin-managed purchasing limit
type Quota struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Limit     int                `bson:"limit" json:"limit"`
	Used      int                `bson:"used" json:"used"`
	Period    string             `bson:"period" json:"period"` // e.g. "monthly"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ChatbotQA is one canned question/answer pair for the storefront chatbot
type ChatbotQA struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Question string             `bson:"question" json:"question"`
	Answer   string             `bson:"answer" json:"answer"`
	Keywords []string           `bson:"keywords" json:"keywords"`
}
