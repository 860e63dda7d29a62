// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"github.com/dulaj69/itp-final-project-sub000/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		panic("POSTMARK_API_TOKEN is not set in environment variables")
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendOrderReceiptEmail sends an order receipt after checkout
func (es *EmailService) SendOrderReceiptEmail(toEmail, name string, order models.Order) error {
	subject := "Order Receipt - Spice Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order (ID: %s).<br><br>Total Amount: <strong>$%.2f</strong><br>Payment Method: <strong>%s</strong><br>Order Status: <strong>%s</strong><br><br>Thank you for shopping with us!",
		name,
		order.ID.Hex(),
		order.TotalAmount,
		order.PaymentMethod,
		order.OrderStatus,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendPaymentConfirmationEmail sends a receipt after a successful payment
func (es *EmailService) SendPaymentConfirmationEmail(toEmail, name string, order models.Order, payment models.Payment) error {
	subject := "Payment Confirmation - Spice Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>We have received your payment of <strong>$%.2f</strong> for order %s.<br>Your order is now being processed.<br><br>Thank you for shopping with us!",
		name,
		payment.Amount,
		order.ID.Hex(),
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendCancellationEmail notifies the user that their order was cancelled
func (es *EmailService) SendCancellationEmail(toEmail, name string, order models.Order) error {
	subject := "Order Cancelled - Spice Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order (ID: %s) has been cancelled.<br>Reason: %s<br><br>If a payment was made, its refund status is: <strong>%s</strong>.",
		name,
		order.ID.Hex(),
		order.CancellationReason,
		order.RefundStatus,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
