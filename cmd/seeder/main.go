package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Unbantucniak/FTMS/config"
	"github.com/Unbantucniak/FTMS/internal/cache"
	"github.com/Unbantucniak/FTMS/internal/generator"
	"github.com/Unbantucniak/FTMS/internal/kafka"
	"github.com/Unbantucniak/FTMS/internal/logger"
	"github.com/Unbantucniak/FTMS/internal/metrics"
	"github.com/Unbantucniak/FTMS/internal/repository"
	"github.com/Unbantucniak/FTMS/internal/service/seeding"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.New("info").Fatal("load config", "error", err)
	}

	log := logger.New(cfg.Log.Level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("seeding failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	printBanner(os.Stdout)

	if cfg.Database.Driver == config.DriverSQLite {
		path, err := resolveDBPath(cfg.Database.Path, cfg.Seed.NonInteractive, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if !fileExists(path) {
			fmt.Fprintf(os.Stdout, "\ndatabase file does not exist: %s\n", path)
			fmt.Fprintln(os.Stdout, "start the FTMS backend once to create it, then run the seeder again.")
			return nil
		}
		cfg.Database.Path = path
	}

	repo, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer repo.Close()

	genOpts := []generator.Option{generator.WithIDOffset(cfg.Seed.IDOffset)}
	if cfg.Seed.RandomSeed != 0 {
		genOpts = append(genOpts, generator.WithSeed(cfg.Seed.RandomSeed))
	}

	m := metrics.NewMetrics(cfg.Metrics.Namespace)
	opts := []seeding.SeedServiceOption{
		seeding.WithProgressEvery(cfg.Seed.ProgressEvery),
		seeding.WithMetrics(m),
	}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		opts = append(opts, seeding.WithCache(redisCache))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer producer.Close()
		opts = append(opts, seeding.WithProducer(producer, cfg.Kafka.SeedTopic))
	}

	service := seeding.NewSeedService(repo, generator.New(genOpts...), log, opts...)

	fmt.Fprintf(os.Stdout, "\ngenerating %d flights...\n", cfg.Seed.Count)
	summary, err := service.Seed(ctx, seeding.SeedInput{
		Count:         cfg.Seed.Count,
		ClearExisting: cfg.Seed.Clear(),
	})
	if err != nil {
		return err
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := m.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			log.Warn("metrics not written", "error", err)
		}
	}

	printSummary(os.Stdout, summary)
	return nil
}
