package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"pairwave_server/routes"
	"pairwave_server/services"
	"pairwave_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	callRecordService := &services.CallRecordService{Dynamo: dynamoService}
	pushService := services.NewPushService()
	s3Service := services.NewS3Service()

	// Initialize the signaling core
	registry := socket.NewConnectionRegistry()
	queue := socket.NewMatchQueue()
	invites := socket.NewInviteTracker()
	transport := &socket.SocketTransport{}

	dispatcher := &socket.Dispatcher{
		Registry:  registry,
		Transport: transport,
		Profiles:  userProfileService,
		Push:      pushService,
	}
	coordinator := &socket.Coordinator{
		Registry:   registry,
		Queue:      queue,
		Invites:    invites,
		Dispatcher: dispatcher,
		Transport:  transport,
		Profiles:   userProfileService,
		Ledger:     callRecordService,
	}

	socketServer := socket.NewSocketServer(coordinator)
	transport.Server = socketServer

	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Pairwave")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	r.HandleFunc("/privacy-policy", routes.PrivacyPolicyHandler).Methods("GET")
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterCallRoutes(r, callRecordService)
	routes.RegisterS3Routes(r, s3Service)

	// Mount the signaling socket
	r.PathPrefix("/socket.io/").Handler(socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
