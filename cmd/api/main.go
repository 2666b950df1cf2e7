package main

import (
	_ "backend/api/swagger" // swagger docs

	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Identity & Authorization API
// @version         1.0
// @description     Multi-tenant identity backend: users, apps, roles, permissions and grants.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "postgres")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewAppRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	grantRepo := repository.NewGrantRepository(db)

	userService := service.NewUserService(userRepo)
	appService := service.NewAppService(appRepo)
	roleService := service.NewRoleService(roleRepo, appRepo)
	permissionService := service.NewPermissionService(permissionRepo, appRepo)
	grantService := service.NewGrantService(grantRepo, userRepo, appRepo, roleRepo, permissionRepo)
	authService := service.NewAuthService(middleware.GetJWTSecret(), 24*time.Hour, userRepo)

	userHandler := handler.NewUserHandler(userService)
	appHandler := handler.NewAppHandler(appService)
	roleHandler := handler.NewRoleHandler(roleService)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	grantHandler := handler.NewGrantHandler(grantService)
	authHandler := handler.NewAuthHandler(authService, userService)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	requireAuth := middleware.RequireAuth(authService)
	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1, requireAuth)
	userHandler.RegisterRoutes(v1, requireAuth)
	appHandler.RegisterRoutes(v1, requireAuth)
	roleHandler.RegisterRoutes(v1, requireAuth)
	permissionHandler.RegisterRoutes(v1, requireAuth)
	grantHandler.RegisterRoutes(v1, requireAuth)

	port := envOr("PORT", "8080")

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Drain in-flight requests, then close the pool exactly once.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("Closing database pool: %v", err)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
