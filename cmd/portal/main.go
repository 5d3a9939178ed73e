package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"eduportal/config"
	"eduportal/internal/events"
	"eduportal/internal/handler"
	"eduportal/internal/repository"
	"eduportal/internal/service"
	"eduportal/internal/session"
	"eduportal/pkg/kafka"
	"eduportal/pkg/logger"
	"eduportal/pkg/logging"
	"eduportal/pkg/metadata"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Log.Production)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := repository.Open(repository.WithClock(time.Now))
	if cfg.Seed {
		repository.Seed(db)
		log.Info("Loaded demo data")
	}

	userRepo := repository.NewUserRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	var publisher service.EventPublisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err := kafka.NewProducer(kafka.Config{
			Brokers:      cfg.Kafka.Brokers,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryDelay:   cfg.Kafka.RetryDelay,
		})
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %v", err)
		}
		defer kafkaProducer.Close()
		publisher = events.NewKafkaPublisher(kafkaProducer)
	} else {
		log.Info("No Kafka brokers configured, events are dropped")
	}

	var sessions service.SessionStore
	switch cfg.Session.Driver {
	case config.SessionDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddress,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
	default:
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	}

	clock := service.WithClock(time.Now)
	router := handler.NewRouter(logging.New(log.ZapLogger), handler.Services{
		Auth:          service.NewAuthService(userRepo, sessions, clock),
		Assignments:   service.NewAssignmentService(assignmentRepo, submissionRepo, userRepo, notificationRepo, publisher, clock),
		Submissions:   service.NewSubmissionService(submissionRepo, assignmentRepo, notificationRepo, publisher, clock),
		Notifications: service.NewNotificationService(notificationRepo),
		Dashboards:    service.NewDashboardService(assignmentRepo, submissionRepo, clock),
		Users:         service.NewUserService(userRepo),
	})

	if cfg.Reminder.Enabled {
		worker := NewReminderWorker(assignmentRepo, submissionRepo, userRepo, publisher, log,
			cfg.Reminder.Interval, cfg.Reminder.Window)
		go worker.Start(ctx)
	}

	interceptor := grpc_middleware.ChainUnaryServer(
		metadata.NewMetadataUnaryInterceptor(),
		logging.NewUnaryLoggingInterceptor(logging.New(log.ZapLogger)),
	)
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	listener, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		log.Infof("Starting gRPC health server on %s", cfg.GRPC.Address)
		if err := grpcServer.Serve(listener); err != nil {
			log.Errorf("gRPC server stopped: %v", err)
		}
	}()

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Infof("Starting HTTP server on %s", cfg.HTTP.Address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP shutdown: %v", err)
	}
	grpcServer.GracefulStop()
	log.Info("Server stopped")
}
