// Package webserver exposes the UUID codec and the capacity lookup as a small
// JSON HTTP API.
package webserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ironsmile/qruuid/src/config"
)

// Server represents our web server. It will be controlled from here
type Server struct {
	// Used for server config
	cfg config.Config

	// Makes sure Wait does not return before the serving goroutine has
	// finished.
	wg sync.WaitGroup

	httpSrv *http.Server

	listener net.Listener
}

// NewServer returns a server which will listen and serve according to cfg.
func NewServer(cfg config.Config) *Server {
	return &Server{cfg: cfg}
}

// Serve starts listening and serving in a separate goroutine. It returns
// once the listener is ready or failed to start.
func (srv *Server) Serve() error {
	if srv.listener != nil {
		return errors.New("second Server.Serve call for the same server")
	}

	level, err := srv.cfg.Level()
	if err != nil {
		return err
	}

	var handler http.Handler = NewRouter(level)
	if srv.cfg.Gzip {
		log.Println("Adding gzip handler")
		handler = NewGzipHandler(handler)
	}

	srv.httpSrv = &http.Server{
		Addr:           srv.cfg.Listen,
		Handler:        handler,
		ReadTimeout:    time.Duration(srv.cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(srv.cfg.WriteTimeout) * time.Second,
		MaxHeaderBytes: srv.cfg.MaxHeadersSize,
	}

	addr := srv.httpSrv.Addr
	if addr == "" {
		addr = ":http"
	}

	lsn, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	srv.listener = lsn

	srv.wg.Add(1)
	go srv.serveGoroutine()

	log.Printf("Webserver started on %s.\n", lsn.Addr())
	return nil
}

func (srv *Server) serveGoroutine() {
	defer srv.wg.Done()

	reason := srv.httpSrv.Serve(srv.listener)
	log.Println("Webserver stopped.")

	if reason != nil && !errors.Is(reason, http.ErrServerClosed) {
		log.Printf("Reason: %s\n", reason)
	}
}

// Addr returns the address the server listens on. It is only meaningful
// after a successful Serve.
func (srv *Server) Addr() string {
	if srv.listener == nil {
		return ""
	}
	return srv.listener.Addr().String()
}

// Stop gracefully shuts the server down, waiting for in-flight requests
// until ctx is done.
func (srv *Server) Stop(ctx context.Context) error {
	if srv.httpSrv == nil {
		return nil
	}
	return srv.httpSrv.Shutdown(ctx)
}

// Wait blocks until the server has stopped serving.
func (srv *Server) Wait() {
	srv.wg.Wait()
}
