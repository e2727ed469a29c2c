package advisor

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// LLMClient is the interface both tip-generation implementations satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Advisor produces personalized study tips from a language model. When no
// model is configured the advisor is disabled and callers fall back to the
// built-in tip pool.
type Advisor struct {
	llm   LLMClient
	model string
}

func NewAdvisor() *Advisor {
	if os.Getenv("MOCK_ADVISOR") == "true" {
		log.Println("Advisor using mock tips")
		return &Advisor{llm: NewMockClient(), model: "mock"}
	}
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		log.Println("Advisor disabled (no API key), using built-in tip pool")
		return &Advisor{}
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-opus-4-5-20251101"
	}
	log.Println("Advisor using Anthropic API:", model)
	return &Advisor{llm: NewAPIClient(model), model: model}
}

// NewWithClient builds an advisor around an explicit client, bypassing the
// env-driven selection in NewAdvisor.
func NewWithClient(llm LLMClient, model string) *Advisor {
	return &Advisor{llm: llm, model: model}
}

// Enabled reports whether a model backend is configured.
func (a *Advisor) Enabled() bool {
	return a.llm != nil
}

func (a *Advisor) ModelName() string {
	return a.model
}

// PersonalTips asks the model for tips tailored to the plan inputs.
func (a *Advisor) PersonalTips(ctx context.Context, subjects []string, dailyHours float64, daysLeft int) ([]string, error) {
	if a.llm == nil {
		return nil, fmt.Errorf("advisor is not configured")
	}

	resp, err := a.llm.Generate(ctx, TipsSystemPrompt(), BuildTipsUserPrompt(subjects, dailyHours, daysLeft))
	if err != nil {
		return nil, fmt.Errorf("generate tips: %w", err)
	}

	tips, err := ParseTips(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse tips response: %w", err)
	}
	return tips, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   1024,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	mockJSON := `[
		"Start each day with your hardest subject while you are fresh.",
		"Keep review sessions short and frequent instead of cramming.",
		"Write a one-line summary after every study block.",
		"Take a five minute break between subjects.",
		"End the day by previewing tomorrow's topics."
	]`
	return &LLMResponse{
		Content:      mockJSON,
		PromptTokens: 200,
		OutputTokens: 150,
	}, nil
}
