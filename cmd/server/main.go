package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/saranyu/jobboard-api/internal/auth"
	"github.com/saranyu/jobboard-api/internal/config"
	"github.com/saranyu/jobboard-api/internal/handler"
	"github.com/saranyu/jobboard-api/internal/mailer"
	"github.com/saranyu/jobboard-api/internal/metrics"
	"github.com/saranyu/jobboard-api/internal/provider"
	"github.com/saranyu/jobboard-api/internal/queue"
	"github.com/saranyu/jobboard-api/internal/ratelimit"
	"github.com/saranyu/jobboard-api/internal/repository"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("no .env file found, using environment variables")
	}

	cfg := config.Load(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := mongoClient.Database(cfg.MongoDB)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	companyRepo := repository.NewCompanyMongoRepository(ctx, &logger, db)
	jobRepo := repository.NewJobMongoRepository(ctx, &logger, db)
	lookupRepo := repository.NewLookupMongoRepository(ctx, &logger, db)
	applicationRepo := repository.NewApplicationMongoRepository(ctx, &logger, db)

	var limiter ratelimit.Limiter = ratelimit.NoopLimiter{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("failed to ping redis")
		}
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.OTPRequestsPerMin, time.Minute)
	}

	events := queue.NewNoop()
	if cfg.AMQPURL != "" {
		events, err = queue.NewRabbit(cfg.AMQPURL, cfg.EventExchange)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close event publisher")
		}
	}()

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.ExpiresIn)
	googleProvider := provider.NewGoogleOAuthProvider(cfg.GoogleClientID)
	mailSender := mailer.NewMailer(&logger)
	validate := validation.NewValidator(&logger)

	metrics.MustRegister()

	lookupUsecase := usecase.NewLookupUsecase(lookupRepo)
	authUsecase := usecase.NewAuthUsecase(userRepo, companyRepo, jwtAuth, googleProvider, events, &logger)
	otpUsecase := usecase.NewOTPUsecase(userRepo, mailSender, limiter, events, cfg.OTPExpiresIn, &logger)
	userUsecase := usecase.NewUserUsecase(userRepo, lookupUsecase)
	companyUsecase := usecase.NewCompanyUsecase(companyRepo, lookupUsecase)
	jobUsecase := usecase.NewJobUsecase(jobRepo, companyRepo, lookupUsecase, events, &logger)
	applicationUsecase := usecase.NewApplicationUsecase(applicationRepo, jobRepo)

	router := handler.NewRouter(handler.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, otpUsecase, validate, &logger),
		User:        handler.NewUserHandler(userUsecase, validate, &logger),
		Lookup:      handler.NewLookupHandler(lookupUsecase, validate, &logger),
		Company:     handler.NewCompanyHandler(companyUsecase, validate, &logger),
		Job:         handler.NewJobHandler(jobUsecase, validate, &logger),
		Application: handler.NewApplicationHandler(applicationUsecase, validate, &logger),
		Health:      handler.NewHealthHandler(mongoClient),
	}, jwtAuth)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("failed to shut down server gracefully")
	}

	logger.Info().Msg("server stopped")
}
