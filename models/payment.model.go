package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecordStatus is the status of a single payment attempt
type PaymentRecordStatus string

const (
	PaymentRecordPending   PaymentRecordStatus = "pending"
	PaymentRecordCompleted PaymentRecordStatus = "completed"
	PaymentRecordFailed    PaymentRecordStatus = "failed"
	PaymentRecordRefunded  PaymentRecordStatus = "refunded"
)

// Payment records one processed payment attempt against an order.
// Documents are insert-only; a retried completion inserts a new one.
type Payment struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID         primitive.ObjectID  `bson:"order_id" json:"order_id"`
	PaymentIntentID string              `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"` // required for card payments
	Amount          float64             `bson:"amount" json:"amount"`
	Method          PaymentMethod       `bson:"method" json:"method"`
	Status          PaymentRecordStatus `bson:"status" json:"status"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
}
