package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/internal/helius"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/internal/server"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/collection"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/config"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/notify"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/processor"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("application failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log := newLogger(cfg.Log.Level)
	slog.SetDefault(log)

	lookup, err := collection.Load(cfg.Collection.IDFile, cfg.Collection.RankFile)
	if err != nil {
		return err
	}
	log.Info("collection tables loaded", "nfts", lookup.Len())

	channels := initChannels(cfg, log)
	defer func() {
		for _, ch := range channels {
			if err := ch.Close(); err != nil {
				log.Warn("channel close failed", "channel", ch.Name(), "err", err)
			}
		}
	}()

	proc := processor.New(lookup, channels, log)
	registrar := helius.NewClient(helius.Config{
		APIKey:    cfg.Helius.APIKey,
		AuthToken: cfg.Auth.Token,
		BaseURL:   cfg.Helius.BaseURL,
	})

	srv := server.New(cfg.Server.Port, cfg.Auth.Token, cfg.Server.PublicURL, registrar, lookup, proc, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "port", cfg.Server.Port)
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
		log.Info("shutting down")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// initChannels builds the active notification channels from config. A channel
// that fails to initialize is skipped with a warning rather than aborting
// startup; sales keep flowing to the channels that did come up.
func initChannels(cfg *config.Config, log *slog.Logger) []notify.Channel {
	var channels []notify.Channel

	if cfg.Channels.Telegram.Enabled {
		channels = append(channels, notify.NewTelegramChannel(cfg.Channels.Telegram.BotToken, cfg.Channels.Telegram.ChatID))
	}

	if cfg.Channels.X.Enabled {
		channels = append(channels, notify.NewXChannel(cfg.Channels.X.AppKey, cfg.Channels.X.AppSecret))
	}

	if cfg.Channels.Console.Enabled {
		channels = append(channels, notify.NewConsoleChannel())
	}

	if c := cfg.Channels.Redis; c.Enabled {
		if ch, err := notify.NewRedisChannel(c.Addr, c.Password, c.DB, c.Key, c.Mode); err == nil {
			channels = append(channels, ch)
		} else {
			log.Warn("redis channel unavailable", "err", err)
		}
	}

	if c := cfg.Channels.Kafka; c.Enabled {
		if ch, err := notify.NewKafkaChannel(c.Brokers, c.Topic, c.User, c.Password); err == nil {
			channels = append(channels, ch)
		} else {
			log.Warn("kafka channel unavailable", "err", err)
		}
	}

	if c := cfg.Channels.RabbitMQ; c.Enabled {
		if ch, err := notify.NewRabbitMQChannel(c.URL, c.Exchange, c.RoutingKey, c.QueueName, c.Durable); err == nil {
			channels = append(channels, ch)
		} else {
			log.Warn("rabbitmq channel unavailable", "err", err)
		}
	}

	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = ch.Name()
	}
	log.Info("notification channels active", "channels", names)

	return channels
}
