// Package commentary generates one-line AI banter for a recorded match.
// Output is stored verbatim on the match and never parsed; generation failure
// must never fail match recording, so callers treat errors as "no commentary".
package commentary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel is used unless the caller overrides it.
const DefaultModel = "claude-haiku-4-5-20251001"

const systemPrompt = `You are a match commentator for an office FIFA league.
Write exactly one short, witty sentence about the result you are given.
Roast the loser slightly but keep it friendly workplace banter. For draws,
keep it fun and competitive. Never invent details beyond the names and score.`

// Generator produces commentary via the Anthropic API.
type Generator struct {
	client anthropic.Client
	model  string
}

// NewGenerator builds a Generator. An empty apiKey falls back to
// $ANTHROPIC_API_KEY; an empty model falls back to DefaultModel.
func NewGenerator(apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// MatchResult is the minimal context the prompt needs.
type MatchResult struct {
	Player1Name string
	Player2Name string
	Score1      int
	Score2      int
}

// Generate returns a single sentence of commentary for the result.
func (g *Generator) Generate(ctx context.Context, r MatchResult) (string, error) {
	var prompt string
	switch {
	case r.Score1 == r.Score2:
		prompt = fmt.Sprintf("The match between %s and %s ended in a %d-%d draw.",
			r.Player1Name, r.Player2Name, r.Score1, r.Score2)
	case r.Score1 > r.Score2:
		prompt = fmt.Sprintf("%s beat %s %d-%d.",
			r.Player1Name, r.Player2Name, r.Score1, r.Score2)
	default:
		prompt = fmt.Sprintf("%s beat %s %d-%d.",
			r.Player2Name, r.Player1Name, r.Score2, r.Score1)
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 128,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return "", fmt.Errorf("API authentication failed — check your API key")
		}
		return "", fmt.Errorf("generate commentary: %w", err)
	}

	var out strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(out.String()), nil
}
