// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	clubapi "github.com/sundayfc/club-service/club/api"
	"github.com/sundayfc/club-service/club/reminder"
	"github.com/sundayfc/club-service/club/service"
	"github.com/sundayfc/club-service/club/session"
	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/api"
	"github.com/sundayfc/club-service/shared/config"
	mongodbu "github.com/sundayfc/club-service/shared/mongodb"
	redisu "github.com/sundayfc/club-service/shared/redis"
)

func main() {
	// --- 1. Load Configuration ---
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, relying on environment variables.")
	}
	cfg, err := config.LoadClubServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Connect to MongoDB ---
	mongoClient, err := mongodbu.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Fatalf("Failed to disconnect from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB.")
	}()

	// --- 3. Connect to Redis ---
	redisClient, err := redisu.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Fatalf("Error closing Redis client: %v", err)
		}
		log.Println("Redis client closed.")
	}()

	// --- 4. Initialize Data Stores ---
	playerStore := store.NewPlayerStore(mongoClient.Collection(mongodbu.PlayersCollection), cfg.PageCap)
	matchStore := store.NewMatchStore(mongoClient.Collection(mongodbu.MatchesCollection), cfg.PageCap)
	recordStore := store.NewRecordStore(mongoClient.Collection(mongodbu.MatchRecordsCollection), cfg.PageCap)
	attendanceStore := store.NewAttendanceStore(mongoClient.Collection(mongodbu.AttendanceCollection), cfg.PageCap)
	scheduleStore := store.NewScheduleStore(mongoClient.Collection(mongodbu.SchedulesCollection), cfg.PageCap)
	userStore := store.NewUserStore(mongoClient.Collection(mongodbu.UsersCollection))

	// --- 5. Initialize Session Cache ---
	sessionStore := session.NewStore(redisClient, cfg.SessionTTL)

	// --- 6. Initialize Business Logic Services ---
	userService := service.NewUserService(userStore, sessionStore)
	playerService := service.NewPlayerService(playerStore, attendanceStore)
	matchService := service.NewMatchService(matchStore, recordStore)
	scheduleService := service.NewScheduleService(scheduleStore)
	attendanceService := service.NewAttendanceService(attendanceStore, playerStore)
	statsService := service.NewStatsService(playerStore, matchStore, recordStore, attendanceStore)
	migrationService := service.NewMigrationService(playerStore, matchStore, recordStore)

	// --- 7. Start Schedule Reminder Job ---
	rem, err := reminder.NewReminder(scheduleService, cfg.ReminderHour)
	if err != nil {
		log.Fatalf("Failed to create reminder scheduler: %v", err)
	}
	if err := rem.Start(); err != nil {
		log.Fatalf("Failed to start reminder scheduler: %v", err)
	}
	defer func() {
		if err := rem.Stop(); err != nil {
			log.Printf("WARN: Reminder scheduler shutdown failed: %v", err)
		}
	}()

	// --- 8. Initialize API Handlers ---
	authenticator := clubapi.NewAuthenticator(sessionStore, cfg.JWTSecret)
	clubAPIHandlers := clubapi.NewClubAPIHandlers(
		userService,
		playerService,
		matchService,
		scheduleService,
		attendanceService,
		statsService,
		migrationService,
		authenticator,
		cfg.JWTSecret,
		cfg.JWTExpiry,
	)

	// --- 9. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default())
	clubAPIHandlers.RegisterRoutes(baseServer.Router)

	// --- 10. Start HTTP Server ---
	go func() {
		log.Printf("HTTP server starting on %s...", cfg.ListenAddr)
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 11. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Server gracefully stopped.")
}
