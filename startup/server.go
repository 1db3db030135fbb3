package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alamin516/roombooking-server/authorization"
	"github.com/alamin516/roombooking-server/domain"
	"github.com/alamin516/roombooking-server/handlers"
	"github.com/alamin516/roombooking-server/payments"
	application "github.com/alamin516/roombooking-server/service"
	"github.com/alamin516/roombooking-server/startup/config"
	store2 "github.com/alamin516/roombooking-server/store"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
)

type Server struct {
	config *config.Config
	logger *logrus.Logger
}

func NewServer(config *config.Config) *Server {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &Server{
		config: config,
		logger: logger,
	}
}

func (server *Server) Start() {
	mongoClient := server.initMongoClient()
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	tokenManager := server.initTokenManager()

	userStore := store2.NewUserMongoDBStore(mongoClient)
	homeStore := store2.NewHomeMongoDBStore(mongoClient)
	bookingStore := store2.NewBookingMongoDBStore(mongoClient)
	notificationStore := store2.NewNotificationMongoDBStore(mongoClient)

	userService := application.NewUserService(userStore, tokenManager)
	homeService := application.NewHomeService(homeStore)
	bookingService := application.NewBookingService(bookingStore)
	notificationService := server.initNotificationService(notificationStore)
	paymentService := application.NewPaymentService(payments.NewStripeGateway(server.config.StripeSecretKey))

	userHandler := handlers.NewUserHandler(server.logger, userService, tokenManager)
	homeHandler := handlers.NewHomeHandler(server.logger, homeService)
	bookingHandler := handlers.NewBookingHandler(server.logger, bookingService, notificationService)
	paymentHandler := handlers.NewPaymentHandler(server.logger, paymentService)

	server.start(userHandler, homeHandler, bookingHandler, paymentHandler)
}

func (server *Server) initMongoClient() *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := store2.GetClient(ctx, server.config.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initTokenManager() *authorization.TokenManager {
	manager, err := authorization.NewTokenManager([]byte(server.config.Secret))
	if err != nil {
		log.Fatal(err)
	}
	return manager
}

func (server *Server) initNotificationService(store domain.NotificationStore) *application.NotificationService {
	dialer := gomail.NewDialer(server.config.SmtpServer, server.config.SmtpServerPort, server.config.SmtpEmail, server.config.SmtpPassword)
	return application.NewNotificationService(store, dialer, server.config.SmtpEmail)
}

func (server *Server) start(userHandler *handlers.UserHandler, homeHandler *handlers.HomeHandler, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler) {
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(server.loggingMiddleware)

	router.HandleFunc("/", func(writer http.ResponseWriter, req *http.Request) {
		writer.Header().Set("Content-Type", "text/plain")
		writer.Write([]byte("Server is running..."))
	}).Methods("GET")

	userHandler.Init(router)
	homeHandler.Init(router)
	bookingHandler.Init(router)
	paymentHandler.Init(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: router,
	}

	wait := time.Second * 15
	go func() {
		server.logger.Infof("Server is running...on %s", server.config.Port)
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func (server *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		server.logger.WithFields(logrus.Fields{
			"requestId": uuid.NewString(),
			"method":    req.Method,
			"path":      req.URL.Path,
		}).Info("request received")

		next.ServeHTTP(rw, req)
	})
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")

		next.ServeHTTP(rw, h)
	})
}
