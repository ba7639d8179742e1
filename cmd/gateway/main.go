package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/reclaim/lostfound-app/internal/gateway"
	"github.com/reclaim/lostfound-app/internal/messaging"
	"github.com/reclaim/lostfound-app/internal/metrics"
	"github.com/reclaim/lostfound-app/internal/session"
)

func main() {
	log.Println("Starting lost-and-found gateway...")

	listenAddr := ":8080"
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		listenAddr = v
	}

	// Redis setup (live sessions).
	redisAddr := "localhost:6379"
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		redisAddr = v
	}
	serverName, _ := os.Hostname()
	if v := os.Getenv("SERVER_NAME"); v != "" {
		serverName = v
	}
	if serverName == "" {
		serverName = "gateway-1"
	}

	sessionStore, err := session.NewStore(redisAddr, serverName)
	if err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	// NATS setup.
	natsConfig := messaging.DefaultNATSConfig()
	if v := os.Getenv("NATS_URL"); v != "" {
		natsConfig.URL = v
	}
	natsConfig.Name = "lostfound-gateway"

	natsClient, err := messaging.NewNATSClient(natsConfig)
	if err != nil {
		log.Fatalf("failed to connect to NATS: %v", err)
	}

	server := gateway.NewServer(natsClient, sessionStore)

	mux := http.NewServeMux()
	mux.Handle("/ws", server.Handler())
	mux.Handle("/metrics", metrics.Handler())

	go func() {
		if err := http.ListenAndServe(listenAddr, mux); err != nil {
			log.Fatalf("gateway server stopped: %v", err)
		}
	}()

	log.Printf("lost-and-found gateway running")
	log.Printf("  listen_addr: %s", listenAddr)
	log.Printf("  redis_addr:  %s", redisAddr)
	log.Printf("  nats_url:    %s", natsConfig.URL)
	log.Printf("  server_name: %s", serverName)

	// Graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("received signal %v, shutting down...", sig)

	natsClient.Close()
	sessionStore.Close()
}
