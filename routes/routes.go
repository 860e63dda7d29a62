// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/dulaj69/itp-final-project-sub000/controllers"
	"github.com/dulaj69/itp-final-project-sub000/middleware"
)

// Controllers bundles everything the router needs
type Controllers struct {
	User    *controllers.UserController
	Product *controllers.ProductController
	Order   *controllers.OrderController
	Payment *controllers.PaymentController
	Admin   *controllers.AdminController
	Backup  *controllers.BackupController
	Inquiry *controllers.InquiryController
	Chatbot *controllers.ChatbotController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers) {
	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/users/register", c.User.Register).Methods("POST")
	api.HandleFunc("/users/login", c.User.Login).Methods("POST")
	api.HandleFunc("/products", c.Product.GetProducts).Methods("GET")
	api.HandleFunc("/products/{id}", c.Product.GetProductByID).Methods("GET")
	api.HandleFunc("/chatbot/ask", c.Chatbot.Ask).Methods("POST")
	api.HandleFunc("/inquiries", c.Inquiry.CreateInquiry).Methods("POST")
	api.HandleFunc("/feedback", c.Inquiry.CreateFeedback).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(middleware.Protect)
	protected.HandleFunc("/users/profile", c.User.GetProfile).Methods("GET")
	protected.HandleFunc("/orders", c.Order.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders/history", c.Order.GetOrderHistory).Methods("GET")
	protected.HandleFunc("/orders/{id}", c.Order.GetOrder).Methods("GET")
	protected.HandleFunc("/orders/{id}/cancel", c.Order.CancelOrder).Methods("PUT")
	protected.HandleFunc("/payments/create-intent", c.Payment.CreatePaymentIntent).Methods("POST")
	protected.HandleFunc("/payments/{orderId}/complete", c.Payment.CompletePayment).Methods("POST")
	protected.HandleFunc("/notifications", c.Inquiry.GetNotifications).Methods("GET")
	protected.HandleFunc("/notifications/{id}/read", c.Inquiry.MarkNotificationRead).Methods("PUT")
	protected.HandleFunc("/products/{id}/reserve", c.Product.ReserveStock).Methods("POST")
	protected.HandleFunc("/products/{id}/release", c.Product.ReleaseStock).Methods("POST")

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Protect)
	admin.Use(middleware.Admin)
	admin.HandleFunc("/stats", c.Admin.GetDashboardStats).Methods("GET")

	admin.HandleFunc("/products", c.Product.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", c.Product.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", c.Product.DeleteProduct).Methods("DELETE")

	admin.HandleFunc("/orders", c.Admin.ListOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", c.Admin.UpdateOrderStatus).Methods("PUT")
	admin.HandleFunc("/orders/{id}/refund-status", c.Admin.UpdateRefundStatus).Methods("PUT")
	admin.HandleFunc("/orders/{id}/cancel-refund", c.Admin.CancelOrderWithRefund).Methods("PUT")
	admin.HandleFunc("/orders/{id}", c.Admin.DeleteOrder).Methods("DELETE")
	admin.HandleFunc("/orders/{orderId}/payments", c.Payment.ListPaymentsForOrder).Methods("GET")

	admin.HandleFunc("/users", c.Admin.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id}", c.Admin.UpdateUser).Methods("PUT")
	admin.HandleFunc("/users/{id}", c.Admin.DeleteUser).Methods("DELETE")

	admin.HandleFunc("/quotas", c.Admin.ListQuotas).Methods("GET")
	admin.HandleFunc("/quotas", c.Admin.CreateQuota).Methods("POST")
	admin.HandleFunc("/quotas/{id}", c.Admin.UpdateQuota).Methods("PUT")
	admin.HandleFunc("/quotas/{id}", c.Admin.DeleteQuota).Methods("DELETE")

	admin.HandleFunc("/inquiries", c.Inquiry.ListInquiries).Methods("GET")
	admin.HandleFunc("/inquiries/{id}/respond", c.Inquiry.RespondInquiry).Methods("PUT")
	admin.HandleFunc("/feedback", c.Inquiry.ListFeedback).Methods("GET")

	admin.HandleFunc("/chatbot/qa", c.Chatbot.ListQA).Methods("GET")
	admin.HandleFunc("/chatbot/qa", c.Chatbot.CreateQA).Methods("POST")
	admin.HandleFunc("/chatbot/qa/{id}", c.Chatbot.UpdateQA).Methods("PUT")
	admin.HandleFunc("/chatbot/qa/{id}", c.Chatbot.DeleteQA).Methods("DELETE")

	admin.HandleFunc("/backups", c.Backup.CreateBackup).Methods("POST")
	admin.HandleFunc("/backups", c.Backup.ListBackups).Methods("GET")
	admin.HandleFunc("/backups/{id}", c.Backup.DownloadBackup).Methods("GET")
	admin.HandleFunc("/backups/{id}/restore", c.Backup.RestoreBackup).Methods("POST")
	admin.HandleFunc("/reports/{collection}", c.Backup.CreateReport).Methods("POST")
}
