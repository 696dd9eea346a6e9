package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/db"
	"github.com/influencer-marketplace/backend/internal/events"
)

// notify-bridge subscribes to Redis workflow events and forwards them as
// notifications to the internal notifier service. It exists so the API never
// blocks on notification delivery and the notifier can be swapped without
// touching the API.

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	subscriber := events.NewRedisSubscriber(rdb, log)

	log.Info("notify-bridge started")

	_ = subscriber.Subscribe(ctx, events.StreamWorkflow, func(event events.Event) {
		log.Info("forwarding workflow event", zap.String("type", event.Type))
		forward(cfg.NotifierInternalURL, event, log)
	})

	_ = subscriber.Subscribe(ctx, events.StreamNotifications, func(event events.Event) {
		log.Info("forwarding notification", zap.String("type", event.Type))
		forward(cfg.NotifierInternalURL, event, log)
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down notify-bridge")
	cancel()
}

func forward(baseURL string, event events.Event, log *zap.Logger) {
	userID, ok := event.Payload["influencer_user_id"]
	if !ok {
		userID, ok = event.Payload["user_id"]
	}
	if !ok {
		return
	}

	text, _ := event.Payload["text"].(string)
	if text == "" {
		text = fmt.Sprintf("Event: %s", event.Type)
	}

	body, _ := json.Marshal(map[string]any{
		"user_id": userID,
		"text":    text,
	})

	url := fmt.Sprintf("%s/internal/notify", strings.TrimRight(baseURL, "/"))
	resp, err := http.Post(url, "application/json", strings.NewReader(string(body)))
	if err != nil {
		log.Warn("failed to forward notification", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("notifier returned non-200", zap.Int("status", resp.StatusCode))
	}
}
