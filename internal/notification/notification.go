package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/vadibank/vadi/config"
)

// webhookRetries bounds delivery attempts per event.
const webhookRetries = 3

// Event is the payload posted to the configured webhook after a committed
// mutation.
type Event struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"data"`
	EmittedAt time.Time   `json:"emitted_at"`
}

// NotifyError logs a system error. It runs asynchronously so callers on the
// commit path never block on the sink.
func NotifyError(systemError error) {
	go func(systemError error) {
		logrus.Error(systemError)
	}(systemError)
}

// SendWebhook posts an event to the configured webhook URL, retrying with
// exponential backoff. It is a no-op when no URL is configured. Failures are
// logged and swallowed; delivery is best-effort by contract.
func SendWebhook(event string, payload interface{}) {
	conf, err := config.Fetch()
	if err != nil {
		log.Println("Error fetching config:", err)
		return
	}
	if conf.Notification.Webhook.Url == "" {
		return
	}

	body, err := json.Marshal(Event{Event: event, Payload: payload, EmittedAt: time.Now()})
	if err != nil {
		NotifyError(err)
		return
	}

	operation := func() error {
		return deliver(conf.Notification.Webhook, body)
	}
	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), webhookRetries)); err != nil {
		NotifyError(err)
	}
}

func deliver(webhook config.WebhookConfig, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, webhook.Url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range webhook.Headers {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logrus.Error(err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errStatus(resp.StatusCode)
	}
	return nil
}

type errStatus int

func (e errStatus) Error() string {
	return fmt.Sprintf("webhook delivery failed with status %d", int(e))
}
