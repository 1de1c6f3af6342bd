// Command silent-signal runs the Silent Signal web application.
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/justestif/silent-signal/internal/card"
	"github.com/justestif/silent-signal/internal/config"
	"github.com/justestif/silent-signal/internal/web"
	webfs "github.com/justestif/silent-signal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Create sub-filesystems for templates and static files
	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	renderer, err := card.NewRenderer(cfg.CardWidth, cfg.CardHeight, cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("creating card renderer: %w", err)
	}

	// Create and start server
	server, err := web.NewServer(web.ServerConfig{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		TemplatesFS: templates,
		StaticFS:    static,
		Renderer:    renderer,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("card renderer ready", "width", cfg.CardWidth, "height", cfg.CardHeight, "cache", cfg.CacheSize)
	return server.Run()
}
