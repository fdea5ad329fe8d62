// Package enhance wraps the external text-rewriting call used by the
// section editors, with a deterministic local fallback so the UI path never
// sees a hard failure.
package enhance

import (
	"context"
	"errors"

	"github.com/resumecraft/go-services/pkg/logger"
	"github.com/resumecraft/go-services/pkg/metrics"
)

// Enhancer is the interface the handlers depend on.
type Enhancer interface {
	Enhance(ctx context.Context, text string) (Result, error)
}

// Result carries the rewritten text and whether the local fallback was
// applied instead of the remote rewrite.
type Result struct {
	Text     string `json:"result"`
	Fallback bool   `json:"fallback"`
}

// Notification is the side channel for UI progress feedback. It is not part
// of the functional contract.
type Notification struct {
	Stage    string `json:"stage"` // "remote" | "fallback"
	Message  string `json:"message"`
	Fallback bool   `json:"fallback"`
}

// Service applies the remote rewrite and recovers every remote failure with
// the local fallback. The only error it returns is ErrTextTooShort.
type Service struct {
	client *Client
	notify func(Notification)
}

// NewService creates a Service. client may be nil (no endpoint configured):
// every call then takes the fallback path. notify may be nil.
func NewService(client *Client, notify func(Notification)) *Service {
	if notify == nil {
		notify = func(Notification) {}
	}
	return &Service{client: client, notify: notify}
}

func (s *Service) Enhance(ctx context.Context, text string) (Result, error) {
	if len(text) < MinInputLength {
		metrics.EnhanceRequests.WithLabelValues("rejected").Inc()
		return Result{}, ErrTextTooShort
	}

	if s.client != nil {
		out, err := s.client.Enhance(ctx, text)
		if err == nil {
			metrics.EnhanceRequests.WithLabelValues("remote").Inc()
			s.notify(Notification{Stage: "remote", Message: "enhancement applied"})
			return Result{Text: out}, nil
		}
		if errors.Is(err, ErrTextTooShort) {
			return Result{}, err
		}
		logger.Warnf("enhance: remote rewrite failed, using local fallback: %v", err)
	}

	metrics.EnhanceRequests.WithLabelValues("fallback").Inc()
	s.notify(Notification{Stage: "fallback", Message: "local cleanup applied", Fallback: true})
	return Result{Text: ApplyFallback(text), Fallback: true}, nil
}
