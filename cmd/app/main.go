package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/pxshao1010-gif/independent-station/internal/auth"
	"github.com/pxshao1010-gif/independent-station/internal/config"
	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/http/handlers"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/repo"
	"github.com/pxshao1010-gif/independent-station/internal/service"
	"github.com/pxshao1010-gif/independent-station/internal/store"
	"github.com/pxshao1010-gif/independent-station/pkg/cache"
	"github.com/pxshao1010-gif/independent-station/pkg/logger"
	"github.com/pxshao1010-gif/independent-station/pkg/rabbit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.Common.LogLevel)

	var (
		users    repo.Users
		products repo.Products
		orders   repo.Orders
	)

	switch cfg.Store.Backend {
	case "postgres":
		ctxDB, cancelDB := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelDB()

		db, err := pgxpool.New(ctxDB, cfg.Postgres.DSN)
		if err != nil {
			log.Fatal().Err(err).Msg("pg connect failed")
		}
		defer db.Close()

		if err := repo.Bootstrap(ctxDB, db); err != nil {
			log.Fatal().Err(err).Msg("pg bootstrap failed")
		}

		productsPG := &repo.ProductsPG{DB: db}
		seedProducts(ctxDB, cfg.Store.DataDir, productsPG, log)

		users = &repo.UsersPG{DB: db}
		products = productsPG
		orders = &repo.OrdersPG{DB: db}

	default:
		fs, err := store.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("data dir unavailable")
		}
		users = &repo.UsersJSON{S: fs}
		products = &repo.ProductsJSON{S: fs}
		orders = &repo.OrdersJSON{S: fs}
	}

	// Optional product-catalog cache.
	if cfg.Redis.Addr != "" {
		rdb := cache.New(cfg.Redis.Addr)
		defer func() { _ = rdb.Close() }()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rdb.Ping(pingCtx)
		pingCancel()
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, continue without cache")
		} else {
			products = &repo.ProductsCached{Inner: products, Redis: rdb, TTL: 10 * time.Minute}
		}
	}

	// Optional order-lifecycle event publisher.
	var events service.EventPublisher
	if cfg.Rabbit.URL != "" {
		rc, err := rabbit.Connect(cfg.Rabbit.URL)
		if err != nil {
			log.Warn().Err(err).Msg("rabbit unavailable, continue without events")
		} else {
			defer func() { _ = rc.Close() }()
			if err := rabbit.DeclareBase(rc.Ch); err != nil {
				log.Fatal().Err(err).Msg("declare exchange failed")
			}
			events = rabbit.NewPublisher(rc.Ch, rabbit.ExchangeEvents)
		}
	}

	identity := &service.Identity{Users: users, Tokens: auth.NewTokens(cfg.Auth.JWTSecret), Log: log}
	cartSvc := &service.Cart{Users: users}
	ordersSvc := &service.Orders{Repo: orders, Events: events, Log: log}

	router := httpx.NewRouter(&httpx.Handlers{
		Health:       handlers.Health,
		ListProducts: (&handlers.ListProductsHandler{Products: products}).ServeHTTP,
		GetProduct:   (&handlers.GetProductHandler{Products: products}).ServeHTTP,
		Register:     (&handlers.RegisterHandler{Identity: identity}).ServeHTTP,
		Login:        (&handlers.LoginHandler{Identity: identity}).ServeHTTP,
		Me:           (&handlers.MeHandler{Cart: cartSvc}).ServeHTTP,
		GetCart:      (&handlers.GetCartHandler{Cart: cartSvc}).ServeHTTP,
		ReplaceCart:  (&handlers.ReplaceCartHandler{Cart: cartSvc}).ServeHTTP,
		Checkout: (&handlers.CheckoutHandler{
			Orders:        ordersSvc,
			Identity:      identity,
			PublicBaseURL: cfg.HTTP.PublicBaseURL,
		}).ServeHTTP,
		ListOrders:  (&handlers.ListOrdersHandler{Orders: ordersSvc}).ServeHTTP,
		PaymentMock: (&handlers.PaymentMockHandler{Orders: ordersSvc, Log: log}).ServeHTTP,
	}, httpx.Auth(identity.Verify), log)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("backend", cfg.Store.Backend).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}

// seedProducts copies the file catalog into postgres so both backends
// serve the same seed data. Missing or unreadable seed files are only a
// warning; the table may already be provisioned.
func seedProducts(ctx context.Context, dataDir string, pg *repo.ProductsPG, log zerolog.Logger) {
	b, err := os.ReadFile(filepath.Join(dataDir, "products.json"))
	if err != nil {
		log.Warn().Err(err).Msg("no product seed file")
		return
	}
	var seed []models.Product
	if err := json.Unmarshal(b, &seed); err != nil {
		log.Warn().Err(err).Msg("bad product seed file")
		return
	}
	if err := pg.Import(ctx, seed); err != nil {
		log.Warn().Err(err).Msg("product seed import failed")
		return
	}
	log.Info().Int("count", len(seed)).Msg("product catalog seeded")
}
