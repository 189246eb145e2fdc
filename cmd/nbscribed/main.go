package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"

	"github.com/nbscribe/nbscribe"
	"github.com/nbscribe/nbscribe/internal/logger"
	"github.com/nbscribe/nbscribe/internal/server"
)

const shutdownGrace = 10 * time.Second

func main() {
	var (
		configPath string
		port       int
	)
	flag.StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	flag.IntVarP(&port, "port", "p", 0, "listening port (overrides config and PORT env)")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if port != 0 {
		cfg.Port = port
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	client, err := nbscribe.NewOpenAIClient(log)
	if err != nil {
		log.Fatal("could not init text-generation client", "error", err)
	}

	svc := nbscribe.New(
		nbscribe.WithGenerators(client, client.WithModel(cfg.StyleModel)),
		nbscribe.WithOutputPath(filepath.Join(cfg.OutputDir, "documentation.pdf")),
		nbscribe.WithScratchDir(cfg.ScratchDir),
		nbscribe.WithExtractorScript(cfg.ExtractorScript),
		nbscribe.WithTimeout(time.Duration(cfg.RenderTimeoutSeconds)*time.Second),
		nbscribe.WithLogger(log),
	)
	defer func() { _ = svc.Close() }()

	if err := os.MkdirAll(cfg.OutputDir, 0o750); err != nil {
		log.Fatal("could not create output dir", "dir", cfg.OutputDir, "error", err)
	}
	if err := os.MkdirAll(cfg.ScratchDir, 0o750); err != nil {
		log.Fatal("could not create scratch dir", "dir", cfg.ScratchDir, "error", err)
	}

	handler := server.NewHandler(svc, log)
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", "port", cfg.Port, "output_dir", cfg.OutputDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown incomplete", "error", err)
	}
}
