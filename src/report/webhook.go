package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"

	"tradequality/src/model"
)

const (
	defaultWebhookRetryWait    = 500 * time.Millisecond
	defaultWebhookRetryMaxWait = 4 * time.Second
)

// WebhookSink posts the JSON report to an HTTP endpoint.
type WebhookSink struct {
	url  string
	http *resty.Client
}

func isRetryableResp(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
}

func NewWebhookSink(url string, timeout time.Duration, retries int) *WebhookSink {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(defaultWebhookRetryWait).
		SetRetryMaxWaitTime(defaultWebhookRetryMaxWait).
		AddRetryCondition(isRetryableResp)

	return &WebhookSink{url: url, http: client}
}

func (s *WebhookSink) Publish(ctx context.Context, report *model.Report) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(report).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("post report to webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook HTTP %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	logger.WithFields(logger.Fields{
		"runID":  report.RunID,
		"status": resp.StatusCode(),
	}).Info("Report delivered to webhook")
	return nil
}
