package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"seo-insight/internal/api"
	"seo-insight/internal/config"
	"seo-insight/internal/logger"
	redisdb "seo-insight/internal/redis"
	"seo-insight/internal/seo"
	"seo-insight/internal/suggest"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Logger.Level, Format: cfg.Logger.Format})
	logger.SetLogger(log)

	provider, err := suggest.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Provider error: %v\n", err)
		os.Exit(1)
	}

	// Raw organic search is only available on the serpapi variant and is
	// never cached.
	var searcher suggest.OrganicSearcher
	if sc, ok := provider.(*suggest.SerpAPIClient); ok {
		searcher = sc
	}

	if cfg.Redis.Addr != "" {
		rdb := redisdb.NewClient(cfg)
		if err := redisdb.Ping(context.Background(), rdb); err != nil {
			log.WithError(err).WithField("addr", cfg.Redis.Addr).Warn("Redis unreachable, suggestion cache will fall through")
		}
		ttl := time.Duration(cfg.Redis.CacheTTLMinutes) * time.Minute
		provider = suggest.NewCachedProvider(provider, rdb, ttl)
		log.WithField("addr", cfg.Redis.Addr).Info("Suggestion cache enabled")
	}

	analyzer := seo.NewAnalyzer(provider, cfg.Suggest.MaxResults)

	r := api.SetupRouter(cfg, analyzer, provider, searcher)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.WithFields(map[string]interface{}{
		"addr":     addr,
		"provider": provider.Name(),
	}).Info("Starting SEO Insight API")
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
