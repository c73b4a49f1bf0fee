package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/handlers"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/cache"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/config"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/health"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/metrics"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/telemetry"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("❌ Error setting up telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repos.RunMigrations(cfg); err != nil {
		slog.Error("❌ Error running migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	tokenRepo := repository.NewTokenRepo(redisClient, cfg)
	analyticsCache := cache.NewRedisCache(redisClient, &cfg.Analytics)

	jwtKey := []byte(cfg.Security.JWTKey)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	notificationService := service.NewNotificationService(repos.Notification, emailService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)
	categoryService := service.NewCategoryService(repos.Category, repos.Product)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	doctorService := service.NewDoctorService(repos.Doctor, repos.Appointment)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	appointmentService := service.NewAppointmentService(repos.Appointment, repos.Doctor, notificationService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	orderService, err := service.NewOrderService(repos.Order, repos.Product, notificationService, &cfg.Pricing)
	if err != nil {
		slog.Error("❌ Invalid pricing configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	orderHandler := handlers.NewOrderHandler(orderService)
	prescriptionService := service.NewPrescriptionService(repos.Prescription, notificationService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	userService := service.NewUserService(repos.User)
	userHandler := handlers.NewUserHandler(userService)
	authService := service.NewAuthService(repos.User, rateLimitRepo, tokenRepo, &cfg.Security)
	authHandler := handlers.NewAuthHandler(authService)
	analyticsService := service.NewAnalyticsService(repos.Analytics, analyticsCache)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey, tokenRepo)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Auth
	routerMux.HandleFunc("POST /api/v1/auth/signup", authHandler.Signup())
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("GET /api/v1/auth/me", authMiddleware.Authenticate(authHandler.Me()))
	routerMux.HandleFunc("POST /api/v1/auth/logout", authMiddleware.Authenticate(authHandler.Logout()))

	// Catalog
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.RequireAdmin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.RequireAdmin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.RequireAdmin(productHandler.DeleteProduct()))

	routerMux.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("GET /api/v1/categories/{id}/products", categoryHandler.ListCategoryProducts())
	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.RequireAdmin(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("POST /api/v1/categories/seed", authMiddleware.RequireAdmin(categoryHandler.SeedCategories()))
	routerMux.HandleFunc("PUT /api/v1/categories/{id}", authMiddleware.RequireAdmin(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.RequireAdmin(categoryHandler.DeleteCategory()))

	// Doctors and appointments
	routerMux.HandleFunc("GET /api/v1/doctors", doctorHandler.ListDoctors())
	routerMux.HandleFunc("GET /api/v1/doctors/{id}", doctorHandler.GetDoctor())
	routerMux.HandleFunc("GET /api/v1/doctors/{id}/availability", doctorHandler.GetAvailability())
	routerMux.HandleFunc("POST /api/v1/doctors", authMiddleware.RequireAdmin(doctorHandler.CreateDoctor()))
	routerMux.HandleFunc("PUT /api/v1/doctors/{id}", authMiddleware.RequireAdmin(doctorHandler.UpdateDoctor()))
	routerMux.HandleFunc("DELETE /api/v1/doctors/{id}", authMiddleware.RequireAdmin(doctorHandler.DeleteDoctor()))

	routerMux.HandleFunc("POST /api/v1/appointments", appointmentHandler.BookAppointment())
	routerMux.HandleFunc("GET /api/v1/appointments", appointmentHandler.ListAppointments())
	routerMux.HandleFunc("GET /api/v1/appointments/{id}", appointmentHandler.GetAppointment())
	routerMux.HandleFunc("PUT /api/v1/appointments/{id}", authMiddleware.RequireAdmin(appointmentHandler.UpdateAppointment()))
	routerMux.HandleFunc("PATCH /api/v1/appointments/{id}/status", authMiddleware.RequireAdmin(appointmentHandler.UpdateAppointmentStatus()))
	routerMux.HandleFunc("DELETE /api/v1/appointments/{id}", appointmentHandler.CancelAppointment())

	// Orders
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("PUT /api/v1/orders/{id}", authMiddleware.RequireAdmin(orderHandler.UpdateOrder()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", authMiddleware.RequireAdmin(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("DELETE /api/v1/orders/{id}", authMiddleware.RequireAdmin(orderHandler.DeleteOrder()))

	// Prescriptions
	routerMux.HandleFunc("POST /api/v1/prescriptions", prescriptionHandler.SubmitPrescription())
	routerMux.HandleFunc("GET /api/v1/prescriptions", authMiddleware.RequireAdmin(prescriptionHandler.ListPrescriptions()))
	routerMux.HandleFunc("GET /api/v1/prescriptions/{id}", prescriptionHandler.GetPrescription())
	routerMux.HandleFunc("PATCH /api/v1/prescriptions/{id}/status", authMiddleware.RequireAdmin(prescriptionHandler.UpdatePrescriptionStatus()))

	// Users (admin)
	routerMux.HandleFunc("POST /api/v1/users", authMiddleware.RequireAdmin(userHandler.CreateUser()))
	routerMux.HandleFunc("GET /api/v1/users", authMiddleware.RequireAdmin(userHandler.ListUsers()))
	routerMux.HandleFunc("GET /api/v1/users/{id}", authMiddleware.RequireAdmin(userHandler.GetUser()))
	routerMux.HandleFunc("GET /api/v1/users/email/{email}", authMiddleware.RequireAdmin(userHandler.GetUserByEmail()))
	routerMux.HandleFunc("PUT /api/v1/users/{id}", authMiddleware.RequireAdmin(userHandler.UpdateUser()))
	routerMux.HandleFunc("DELETE /api/v1/users/{id}", authMiddleware.RequireAdmin(userHandler.DeleteUser()))

	// Analytics (admin)
	routerMux.HandleFunc("GET /api/v1/analytics/dashboard", authMiddleware.RequireAdmin(analyticsHandler.Dashboard()))
	routerMux.HandleFunc("GET /api/v1/analytics/sales", authMiddleware.RequireAdmin(analyticsHandler.Sales()))
	routerMux.HandleFunc("GET /api/v1/analytics/products-by-category", authMiddleware.RequireAdmin(analyticsHandler.ProductsByCategory()))
	routerMux.HandleFunc("GET /api/v1/analytics/appointments-stats", authMiddleware.RequireAdmin(analyticsHandler.AppointmentStats()))
	routerMux.HandleFunc("GET /api/v1/analytics/top-products", authMiddleware.RequireAdmin(analyticsHandler.TopProducts()))
	routerMux.HandleFunc("GET /api/v1/analytics/recent-activity", authMiddleware.RequireAdmin(analyticsHandler.RecentActivity()))

	// Notifications (admin)
	routerMux.HandleFunc("POST /api/v1/notifications/email", authMiddleware.RequireAdmin(notificationHandler.SendEmail()))
	routerMux.HandleFunc("GET /api/v1/notifications", authMiddleware.RequireAdmin(notificationHandler.ListNotifications()))

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.CORS(handler)
	handler = otelhttp.NewHandler(handler, "rajapakse-pharmacy")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
	}
}
