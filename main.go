// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/dulaj69/itp-final-project-sub000/controllers"
	"github.com/dulaj69/itp-final-project-sub000/routes"
	"github.com/dulaj69/itp-final-project-sub000/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize external clients
	emailService := utils.NewEmailService()
	gateway := utils.NewStripeGateway()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize controllers
	c := routes.Controllers{
		User:    controllers.NewUserController(client),
		Product: controllers.NewProductController(client),
		Order:   controllers.NewOrderController(client, emailService),
		Payment: controllers.NewPaymentController(client, gateway, emailService),
		Admin:   controllers.NewAdminController(client),
		Backup:  controllers.NewBackupController(client),
		Inquiry: controllers.NewInquiryController(client),
		Chatbot: controllers.NewChatbotController(client),
	}

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, c)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
