package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sashabaranov/go-openai"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
)

// ErrMalformedReply is returned when the model reply cannot be used.
var ErrMalformedReply = errors.New("oracle: malformed model reply")

const systemPrompt = `You simulate how individual members of a target audience react to an advertisement.
For every simulated person decide exactly one outcome:
- "ignore": scrolls past the ad
- "followLink": clicks through but does nothing else
- "followAndBuy": clicks through and buys the product
- "followAndSave": clicks through and saves the product for later
Be realistic: most people ignore most ads.
Reply with a JSON object {"responses":[{"outcome":"...","rationale":"..."}]} containing exactly the requested number of entries.`

// OpenAI asks a chat model to role-play simulated audience members.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *slog.Logger
}

var _ port.ResponseOracle = (*OpenAI)(nil)

// NewOpenAI creates an oracle backed by the chat completions API. An empty
// baseURL uses the public endpoint.
func NewOpenAI(apiKey, baseURL, model string, logger *slog.Logger) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: 0.9,
		logger:      logger,
	}
}

// Respond implements port.ResponseOracle.
func (o *OpenAI) Respond(ctx context.Context, req port.OracleRequest) ([]domain.Response, error) {
	o.logger.Debug("requesting oracle responses",
		slog.String("model", o.model),
		slog.String("demographic", req.Demographic.ID),
		slog.Int("count", req.Count))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "oracle: chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, eris.Wrap(ErrMalformedReply, "no choices")
	}
	return parseResponses(resp.Choices[0].Message.Content, req.Count)
}

func buildPrompt(req port.OracleRequest) string {
	d := req.Demographic
	var b strings.Builder
	fmt.Fprintf(&b, "Audience: age %s, gender %s, category %s.\n", d.AgeBand, d.Gender, d.Category)
	if len(d.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s.\n", strings.Join(d.Interests, ", "))
	}
	if d.Description != "" {
		fmt.Fprintf(&b, "About them: %s\n", d.Description)
	}
	fmt.Fprintf(&b, "Product: %s. %s\n", req.Product.Name, req.Product.Description)
	fmt.Fprintf(&b, "Price: %.2f\n", req.Product.SalesPrice)
	fmt.Fprintf(&b, "Tagline: %q\n", req.Tagline)
	fmt.Fprintf(&b, "Simulate %d different people.", req.Count)
	return b.String()
}

type reply struct {
	Responses []struct {
		Outcome   string `json:"outcome"`
		Rationale string `json:"rationale"`
	} `json:"responses"`
}

// parseResponses decodes a model reply. The reply must hold exactly count
// entries; unknown outcome labels are read as ignore.
func parseResponses(content string, count int) ([]domain.Response, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var r reply
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		return nil, eris.Wrap(ErrMalformedReply, err.Error())
	}
	if len(r.Responses) != count {
		return nil, eris.Wrapf(ErrMalformedReply, "got %d responses, want %d", len(r.Responses), count)
	}
	out := make([]domain.Response, len(r.Responses))
	for i, e := range r.Responses {
		out[i] = domain.Response{Outcome: domain.ParseOutcome(e.Outcome), Rationale: e.Rationale}
	}
	return out, nil
}
