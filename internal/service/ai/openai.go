package ai

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider implements Provider for the OpenAI Chat Completions API.
// It also backs the "compatible" provider for any service exposing the
// same wire format.
type OpenAIProvider struct {
	client    openai.Client
	model     string
	name      string
	maxTokens int64
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, baseURL, model string, maxTokens int64) (*OpenAIProvider, error) {
	return newOpenAIProvider(apiKey, baseURL, model, maxTokens, ProviderOpenAI)
}

// NewCompatibleProvider creates a provider for an OpenAI-compatible API.
// The base URL must point at the service's /v1 root.
func NewCompatibleProvider(apiKey, baseURL, model string, maxTokens int64) (*OpenAIProvider, error) {
	return newOpenAIProvider(apiKey, baseURL, model, maxTokens, ProviderCompatible)
}

func newOpenAIProvider(apiKey, baseURL, model string, maxTokens int64, name string) (*OpenAIProvider, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &OpenAIProvider{
		client:    openai.NewClient(opts...),
		model:     model,
		name:      name,
		maxTokens: maxTokens,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) buildParams(systemPrompt string, messages []Message) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if systemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(systemPrompt))
	}
	for _, m := range messages {
		if m.Role == RoleAssistant {
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		} else {
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	return openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(p.model),
		Messages:  msgs,
		MaxTokens: openai.Int(p.maxTokens),
	}
}

// Test sends a test message and returns the response.
func (p *OpenAIProvider) Test(ctx context.Context) (string, error) {
	return p.Complete(ctx, "", []Message{{Role: RoleUser, Content: "Hello world"}})
}

// Complete returns the full assistant reply for a conversation.
func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, p.buildParams(systemPrompt, messages))
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// ChatStream streams the assistant reply as text fragments.
func (p *OpenAIProvider) ChatStream(ctx context.Context, systemPrompt string, messages []Message) (<-chan string, <-chan error) {
	textCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(textCh)
		defer close(errCh)

		stream := p.client.Chat.Completions.NewStreaming(ctx, p.buildParams(systemPrompt, messages))
		defer stream.Close() // Close HTTP connection when done or cancelled

		for stream.Next() {
			chunk := stream.Current()
			for _, choice := range chunk.Choices {
				if choice.Delta.Content != "" {
					select {
					case textCh <- choice.Delta.Content:
					case <-ctx.Done():
						return
					}
				}
			}
		}

		if err := stream.Err(); err != nil {
			select {
			case errCh <- err:
			default:
			}
		}
	}()

	return textCh, errCh
}
