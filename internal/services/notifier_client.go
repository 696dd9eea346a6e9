package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotifierClient talks to the internal notification service. Delivery is
// best-effort: failures are logged and never surfaced to the caller, since
// notifications are a side effect of an already-committed state change.
type NotifierClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewNotifierClient(baseURL string, log *zap.Logger) *NotifierClient {
	return &NotifierClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Notify fires the notification in the background so request latency never
// depends on the notifier.
func (c *NotifierClient) Notify(userID uuid.UUID, text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.send(ctx, userID, text); err != nil {
			c.log.Warn("notification delivery failed",
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
		}
	}()
}

func (c *NotifierClient) send(ctx context.Context, userID uuid.UUID, text string) error {
	body, _ := json.Marshal(map[string]any{
		"user_id": userID.String(),
		"text":    text,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/notify", strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("notifier returned non-200", zap.Int("status", resp.StatusCode))
	}
	return nil
}
