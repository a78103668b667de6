package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/chat"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/config"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/handler"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/notify"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newLogger builds a production or development zap logger at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level
	zcfg.Encoding = cfg.Logging.Format

	return zcfg.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Initialize catalog and keyword matcher
	catalog, err := exercise.DefaultCatalog()
	if err != nil {
		return err
	}
	matcher := chat.Default()

	// Initialize contact notifier
	var notifier notify.Notifier
	if cfg.Contact.ResendAPIKey != "" {
		notifier, err = notify.NewResendNotifier(cfg.Contact.ResendAPIKey, cfg.Contact.From, cfg.Contact.To, logger)
		if err != nil {
			return err
		}
		logger.Info("Contact notifications delivered through Resend", zap.Strings("to", cfg.Contact.To))
	} else {
		notifier = notify.NewLogNotifier(logger)
		logger.Warn("RESEND_API_KEY not set, contact messages will only be logged")
	}

	// Initialize services
	assessmentService := service.NewAssessmentService(logger)
	chatService := service.NewChatService(matcher, logger)
	exerciseService := service.NewExerciseService(catalog, service.ExerciseConfig{
		StepDuration: cfg.Exercise.StepDuration,
		TickInterval: cfg.Exercise.TickInterval,
		SessionTTL:   cfg.Exercise.SessionTTL,
		MaxSessions:  cfg.Exercise.MaxSessions,
	}, logger)
	contactService := service.NewContactService(notifier, logger)

	// Create a unified handler that implements the ServerInterface
	apiHandler := handler.NewAPIHandler(
		handler.NewHealthHandler(exerciseService, logger),
		handler.NewStressHandler(assessmentService, logger),
		handler.NewChatHandler(chatService, logger),
		handler.NewExerciseHandler(exerciseService, logger),
		handler.NewContactHandler(contactService, logger),
	)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := handler.NewRouter(apiHandler, handler.RouterOptions{
		ValidateRequests: cfg.HTTP.ValidateRequests,
		AllowOrigins:     cfg.HTTP.AllowOrigins,
	}, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return exerciseService.RunReaper(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.Error(err))
			return err
		}
		return nil
	})

	return g.Wait()
}
