package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/realworld-go/conduit-sdk-go/internal/config"
	"github.com/realworld-go/conduit-sdk-go/internal/logger"
	"github.com/realworld-go/conduit-sdk-go/internal/restyx"
	"github.com/realworld-go/conduit-sdk-go/rest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "conduit failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := rest.NewClient().WithAPIRoot(cfg.APIRoot)
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}
	if cfg.HTTPClient == "resty" {
		client.WithHTTPClient(restyx.New(cfg.HTTPTimeout))
	}

	log.Infow("fetching tags", "api_root", cfg.APIRoot)
	tags, err := client.NewTagsService().Do(ctx)
	if err != nil {
		return fmt.Errorf("get tags: %w", err)
	}
	log.Infow("tags fetched", "count", len(tags), "tags", tags)

	log.Infow("fetching latest articles")
	list, err := client.NewListArticlesService().Do(ctx)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}
	log.Infow("articles fetched", "page_size", len(list.Articles), "total", list.ArticlesCount)
	for _, article := range list.Articles {
		log.Infow("article",
			"slug", article.Slug,
			"title", article.Title,
			"author", article.Author.Username,
			"favorites", article.FavoritesCount,
		)
	}

	return nil
}
