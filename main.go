package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"karyasetu-be/config"
	"karyasetu-be/controllers"
	"karyasetu-be/middlewares"
	"karyasetu-be/routes"
	"karyasetu-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("Please define the JWT_SECRET environment variable")
	}

	redisClient, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	// Restore a persisted session before the router serves anything.
	identity, err := store.NewIdentityService(context.Background(), store.NewRedisKV(redisClient), cfg.MockLatency)
	if err != nil {
		log.Fatalf("Failed to initialize identity service: %v", err)
	}
	if user := identity.Current(); user != nil {
		log.Printf("Restored session for %s (%s)", user.Name, user.Role)
	}

	var seed store.SeedSource
	if cfg.SeedFile != "" {
		seed = store.NewFileSeed(cfg.SeedFile)
	} else {
		seed = store.NewSampleSeed(cfg.SeedCount, time.Now().UnixNano())
	}

	issues, err := store.NewIssueStore(seed, cfg.MockLatency)
	if err != nil {
		log.Fatalf("Failed to seed issue store: %v", err)
	}
	log.Printf("Issue store seeded with %d issues", issues.Len())

	landingController := controllers.NewLandingController(issues)
	authController := controllers.NewAuthController(identity)
	issueController := controllers.NewIssueController(issues)
	adminController := controllers.NewAdminController(issues)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", landingController.Landing)
	routes.AuthRoutes(r, authController)
	routes.CitizenRoutes(r, issueController, identity,
		middlewares.IssueRateLimiter(middlewares.NewRedisCounter(redisClient), cfg.IssueRateLimit))
	routes.AdminRoutes(r, adminController, identity)

	// Unknown paths land on the public landing route.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
