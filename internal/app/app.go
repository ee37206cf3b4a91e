package app

import (
	"context"
	"fmt"
	"net/http"

	"bunueleria-system/internal/catalog"
	"bunueleria-system/internal/config"
	"bunueleria-system/internal/connections/database"
	"bunueleria-system/internal/connections/rabbitmq"
	"bunueleria-system/internal/httpx"
	"bunueleria-system/internal/logger"
	"bunueleria-system/internal/metrics"
	"bunueleria-system/internal/notify"
	"bunueleria-system/internal/orders"
	"bunueleria-system/internal/queues"
	"bunueleria-system/internal/stats"
)

// Run wires every component and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	db, err := database.ConnectDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("db_connected", map[string]any{"host": cfg.Database.Host})

	if err := database.RunMigrations(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Separate channels for publishing (confirm mode) and consuming.
	pubClient, err := rabbitmq.Dial(rabbitmq.Config{
		Host: cfg.RabbitMQ.Host, Port: cfg.RabbitMQ.Port,
		User: cfg.RabbitMQ.User, Password: cfg.RabbitMQ.Password, VHost: cfg.RabbitMQ.VHost,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	defer pubClient.Close()

	subClient, err := rabbitmq.Dial(rabbitmq.Config{
		Host: cfg.RabbitMQ.Host, Port: cfg.RabbitMQ.Port,
		User: cfg.RabbitMQ.User, Password: cfg.RabbitMQ.Password, VHost: cfg.RabbitMQ.VHost,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	defer subClient.Close()
	log.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})

	publisher, err := notify.NewPublisher(pubClient)
	if err != nil {
		return fmt.Errorf("failed to declare notifications exchange: %w", err)
	}

	hub := notify.NewHub(log)
	go hub.Run(ctx)

	subscriber := notify.NewSubscriber(subClient, hub, log)
	go func() {
		if err := subscriber.Run(ctx); err != nil {
			log.Error("subscriber_failed", err, nil)
		}
	}()

	menu := catalog.New()

	orderHandler := orders.NewHandler(
		orders.NewService(orders.NewRepository(db), menu, publisher, log))
	queueHandler := queues.NewHandler(
		queues.NewService(queues.NewRepository(db), log))
	statsHandler := stats.NewHandler(stats.NewRepository(db))
	menuHandler := catalog.NewHandler(menu)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/menu", menuHandler.GetMenu)
	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/orders", orderHandler.List)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.Get)
	mux.HandleFunc("PUT /api/orders", orderHandler.UpdateStatus)
	mux.HandleFunc("DELETE /api/orders/{id}", orderHandler.Delete)
	mux.HandleFunc("GET /api/queues", queueHandler.List)
	mux.HandleFunc("PUT /api/queues", queueHandler.Adjust)
	mux.HandleFunc("GET /api/stats", statsHandler.Daily)
	mux.HandleFunc("GET /ws/dashboard", hub.HandleWS)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		if err := pubClient.Ping(); err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "rabbitmq unavailable")
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	handler := httpx.Chain(mux,
		httpx.Recover(log),
		httpx.RequestLogger(log),
		metrics.Middleware,
		httpx.CORS,
	)

	srv := httpx.New(fmt.Sprintf(":%d", cfg.Server.Port), handler)
	log.Info("service_started", map[string]any{"port": cfg.Server.Port})
	return srv.Run(ctx)
}
