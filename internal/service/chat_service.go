//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"

	"kaapi/backend/internal/service/ai"
)

// ChatService runs conversations with the dashboard assistant.
type ChatService interface {
	// Stream validates the conversation and streams the reply. The
	// returned channels follow the ai.Provider contract.
	Stream(ctx context.Context, messages []ai.Message) (<-chan string, <-chan error, error)
}

type chatService struct {
	provider ai.Provider
	limiter  *ai.RateLimiter
}

// NewChatService creates a chat service. provider may be nil when no API
// key is configured; Stream then fails with ErrUpstream.
func NewChatService(provider ai.Provider, limiter *ai.RateLimiter) ChatService {
	if limiter == nil {
		limiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	return &chatService{provider: provider, limiter: limiter}
}

func (s *chatService) Stream(ctx context.Context, messages []ai.Message) (<-chan string, <-chan error, error) {
	if len(messages) == 0 {
		return nil, nil, ErrNoMessages
	}
	for _, m := range messages {
		if m.Role != ai.RoleUser && m.Role != ai.RoleAssistant {
			return nil, nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, m.Role)
		}
		if m.Content == "" {
			return nil, nil, fmt.Errorf("%w: empty message content", ErrInvalid)
		}
	}

	if s.provider == nil {
		return nil, nil, fmt.Errorf("%w: ai provider not configured", ErrUpstream)
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	textCh, errCh := s.provider.ChatStream(ctx, ai.ChatSystemPrompt, messages)
	return textCh, errCh, nil
}
