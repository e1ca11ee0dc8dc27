package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpctl "cart-service/internal/controllers/http"
	mmysql "cart-service/internal/infra/mysql"
	"cart-service/internal/infra/rabbitmq"
	mysqlrepo "cart-service/internal/repository/mysql"
	"cart-service/internal/services"
	redisstore "cart-service/internal/store/redis"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	catalog := mysqlrepo.NewCatalogRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	snapshots := redisstore.NewSnapshotStore(redisClient, os.Getenv("CART_SNAPSHOT_KEY"))

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "cart.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	cart := services.NewCartService(snapshots, nil, services.DefaultGuardTimeout)
	session := services.NewOrderSession(cart, publisher)

	// No save may run before this load has resolved.
	if err := cart.Hydrate(context.Background()); err != nil {
		log.Printf("continuing with empty cart: %v", err)
	}

	handler := httpctl.NewHandler(cart, session, catalog, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting cart service on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
