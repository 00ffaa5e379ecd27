package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/rafaelmtz/leadtracker/internal/entity"
	"github.com/rafaelmtz/leadtracker/internal/infra/auth"
	"github.com/rafaelmtz/leadtracker/internal/infra/database"
	"github.com/rafaelmtz/leadtracker/internal/infra/http/handlers"
	"github.com/rafaelmtz/leadtracker/internal/infra/http/middleware"
	"github.com/rafaelmtz/leadtracker/internal/infra/mail"
	"github.com/rafaelmtz/leadtracker/internal/infra/queue"
	"github.com/rafaelmtz/leadtracker/internal/usecase"
)

const insecureDefaultSecret = "CHANGE_THIS_SECRET_IN_PRODUCTION"

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db, 30, time.Second); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := database.NewUserRepository(db)
	leadRepo := database.NewLeadRepository(db)
	clientRepo := database.NewClientRepository(db)

	if err := seedAdminUser(ctx, userRepo); err != nil {
		log.Fatal(err)
	}

	// Token service
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = insecureDefaultSecret
		log.Println("WARNING: JWT_SECRET is not set, using an insecure default")
	}
	tokens := auth.NewTokenService(secret, tokenTTL())

	// Optional outbound adapters
	var events usecase.EventPublisher
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("AMQP_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Close()
		events = queue.NewProducer(rabbitMQ.Ch)
	}

	var mailSender usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailSender = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)
	}

	// UseCases
	loginUC := usecase.NewLoginUseCase(userRepo, tokens)
	leadService := usecase.NewLeadService(leadRepo)
	convertUC := usecase.NewConvertLeadUseCase(leadRepo, clientRepo, events, mailSender)

	// Handlers
	authHandler := handlers.NewAuthHandler(loginUC)
	leadHandler := handlers.NewLeadHandler(leadService, convertUC)
	clientHandler := handlers.NewClientHandler(clientRepo)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", healthHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, userRepo))

		r.Post("/leads", leadHandler.HandleCreate)
		r.Get("/leads", leadHandler.HandleList)
		r.Put("/leads/{id}", leadHandler.HandleUpdate)
		r.Delete("/leads/{id}", leadHandler.HandleDelete)
		r.Post("/leads/{id}/convert", leadHandler.HandleConvert)
		r.Get("/clients", clientHandler.HandleList)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("lead tracker API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

// seedAdminUser creates the first user when the store is empty. Credentials
// come from the environment; with none set the API boots with no users and
// every login fails until one is created out of band.
func seedAdminUser(ctx context.Context, users *database.UserRepository) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("WARNING: no users exist and ADMIN_EMAIL/ADMIN_PASSWORD are not set; logins will fail")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin, err := entity.NewUser(email, hash)
	if err != nil {
		return err
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("seeded admin user %s", email)
	return nil
}

func tokenTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("TOKEN_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return auth.DefaultTokenTTL
	}
	return time.Duration(minutes) * time.Minute
}

func corsOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}
