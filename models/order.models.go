package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus tracks where an order is in its lifecycle
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentStatus tracks the money side of an order
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// RefundStatus tracks post-cancellation monetary reversal, separate
// from order and payment status
type RefundStatus string

const (
	RefundNotApplicable RefundStatus = "not_applicable"
	RefundPending       RefundStatus = "pending"
	RefundProcessed     RefundStatus = "processed"
	RefundRejected      RefundStatus = "rejected"
)

// PaymentMethod is how the customer pays
type PaymentMethod string

const (
	MethodCard PaymentMethod = "card" // Stripe
	MethodCOD  PaymentMethod = "cod"  // cash on delivery
)

// orderTransitions is the full set of legal order status moves.
// completed and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

// CanTransitionTo reports whether moving from s to next is legal
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValidOrderStatus reports whether raw names a known order status
func IsValidOrderStatus(raw string) bool {
	switch OrderStatus(raw) {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsValidRefundStatus reports whether raw names a known refund status
func IsValidRefundStatus(raw string) bool {
	switch RefundStatus(raw) {
	case RefundNotApplicable, RefundPending, RefundProcessed, RefundRejected:
		return true
	}
	return false
}

// OrderItem is one line of an order. Catalog items carry a product
// reference; free-text items carry only a name and a client price.
type OrderItem struct {
	ProductID   *primitive.ObjectID `bson:"product_id,omitempty" json:"product_id,omitempty"`
	ProductName string              `bson:"product_name" json:"product_name"`
	Quantity    int                 `bson:"quantity" json:"quantity"`
	Price       float64             `bson:"price" json:"price"`
	Subtotal    float64             `bson:"subtotal" json:"subtotal"`
}

// Order represents a customer's purchase request
type Order struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID             primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items              []OrderItem        `bson:"items" json:"items"`
	TotalAmount        float64            `bson:"total_amount" json:"total_amount"`
	PaymentStatus      PaymentStatus      `bson:"payment_status" json:"payment_status"`
	PaymentMethod      PaymentMethod      `bson:"payment_method" json:"payment_method"`
	OrderStatus        OrderStatus        `bson:"order_status" json:"order_status"`
	ShippingAddress    Address            `bson:"shipping_address" json:"shipping_address"`
	CancellationReason string             `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	CancellationDate   *time.Time         `bson:"cancellation_date,omitempty" json:"cancellation_date,omitempty"`
	RefundStatus       RefundStatus       `bson:"refund_status" json:"refund_status"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// ComputeTotal recomputes each item subtotal and the order total.
// Must run before every save so total_amount never drifts from the items.
func (o *Order) ComputeTotal() {
	total := 0.0
	for i := range o.Items {
		o.Items[i].Subtotal = o.Items[i].Price * float64(o.Items[i].Quantity)
		total += o.Items[i].Subtotal
	}
	o.TotalAmount = total
}

// CanBeCancelled reports whether the order is still cancellable
func (o *Order) CanBeCancelled() bool {
	return o.OrderStatus == OrderPending || o.OrderStatus == OrderProcessing
}

// Cancel moves the order to cancelled, stamping the reason and date.
// Returns false and leaves the order untouched if it is past cancellation.
func (o *Order) Cancel(reason string) bool {
	if !o.CanBeCancelled() {
		return false
	}
	now := time.Now()
	o.OrderStatus = OrderCancelled
	o.CancellationReason = reason
	o.CancellationDate = &now
	return true
}
