package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ramzanpremierleague18-max/rpl-tournament/config"
	"github.com/ramzanpremierleague18-max/rpl-tournament/handlers"
	"github.com/ramzanpremierleague18-max/rpl-tournament/models"
	"github.com/ramzanpremierleague18-max/rpl-tournament/services"
	"github.com/ramzanpremierleague18-max/rpl-tournament/store"
	"github.com/ramzanpremierleague18-max/rpl-tournament/uploads"
	"github.com/ramzanpremierleague18-max/rpl-tournament/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	app := fiber.New(fiber.Config{
		// two capped file parts plus form fields; the limit is enforced
		// while the body streams in, not after buffering
		BodyLimit: int(cfg.MaxUploadBytes)*2 + 1024*1024,
	})

	allowedOriginsList := strings.Split(cfg.AllowedOrigins, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
	}))

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	// Additive schema evolution: existing rows keep their data, new
	// columns arrive with defaults
	if err := db.AutoMigrate(&models.Registration{}); err != nil {
		log.Fatal("failed to migrate database:", err)
	}
	regStore := store.NewGormStore(db)

	var binder uploads.Binder
	if cfg.UseR2() {
		binder, err = uploads.NewR2Binder(uploads.R2Config{
			AccountID:       cfg.CloudflareAccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			Bucket:          cfg.R2Bucket,
		})
		if err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		log.Println("✅ Uploads backed by R2 bucket", cfg.R2Bucket)
	} else {
		binder, err = uploads.NewDiskBinder(cfg.UploadDir)
		if err != nil {
			log.Fatal("failed to ensure upload dir:", err)
		}
		if err := workers.StartUploadReaper(regStore, cfg.UploadDir, cfg.UploadRetention, 30*time.Minute); err != nil {
			log.Fatal("failed to start upload reaper:", err)
		}
	}

	var notifier services.Notifier
	if cfg.MailerEnabled() {
		notifier = services.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		log.Println("✅ Mailer configured as", cfg.SMTPUser)
	} else {
		log.Println("⚠️  Mailer not configured — emails will be skipped (set SMTP_USER & SMTP_PASS)")
	}

	sessions := services.NewSessionStore(cfg.SessionTTL, nil)
	adminService := services.NewAdminService(sessions, cfg.AdminUser, cfg.AdminPass)
	regService := services.NewRegistrationService(regStore, binder, notifier, cfg.MaxUploadBytes)
	qrService := services.NewQRService(cfg.FixedUPI, cfg.FixedAmount)

	handlers.SetupRegistrationRoutes(app, regService, qrService)
	handlers.SetupAdminRoutes(app, adminService, regService)

	// Public form frontend; bound uploads are NOT in here — they are
	// served admin-gated through /uploads/:filename
	app.Static("/", "./public")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%d", cfg.Port)
	log.Printf("✅ Admin sessions valid for %s", cfg.SessionTTL)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
