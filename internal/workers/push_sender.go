package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/config"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type PushQueue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.PushNotification, error)
}

// PushSender drains the push queue with a small worker pool and posts
// each notification to the configured gateway. Delivery is best-effort.
type PushSender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	queue  PushQueue
	http   *http.Client
}

func NewPushSender(logger *slog.Logger, cfg config.PushConfig, queue PushQueue) *PushSender {
	return &PushSender{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *PushSender) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Info("push sender disabled")
		return
	}

	s.logger.Info("push sender started",
		slog.String("url", s.cfg.GatewayURL),
		slog.Int("workers", s.cfg.Workers),
	)

	var wg sync.WaitGroup
	for i := 0; i < s.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}
	wg.Wait()

	s.logger.Info("push sender stopped")
}

func (s *PushSender) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		notification, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.sendWithRetry(ctx, notification)
	}
}

func (s *PushSender) sendWithRetry(ctx context.Context, n domain.PushNotification) {
	const maxRetries = 3

	body, err := json.Marshal(n)
	if err != nil {
		s.logger.Error("marshal push payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push delivery failed",
			slog.Int("attempt", attempt),
			slog.String("resource_id", n.ResourceID.String()),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
