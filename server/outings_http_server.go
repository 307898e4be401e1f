package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type OutingsHttpServer struct {
	router     *Router
	muxRouter  *mux.Router
	listenAddr string
}

func NewOutingsHttpServer(router *Router, muxRouter *mux.Router, listenAddr string) *OutingsHttpServer {
	return &OutingsHttpServer{
		router:     router,
		muxRouter:  muxRouter,
		listenAddr: listenAddr,
	}
}

// Start serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (s *OutingsHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.listenAddr,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on " + s.listenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
