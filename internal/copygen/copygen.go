package copygen

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var ErrDisabled = errors.New("report copy generation is not configured")

const systemPrompt = "You write short, factual marketing copy for UK property " +
	"media reports. Two paragraphs maximum, British English, no superlatives " +
	"you cannot support from the details given."

type ReportInput struct {
	PropertyAddress string
	Service         string
	Bedrooms        int
	Highlights      string
}

// Generator produces report copy through the chat completion API.
type Generator struct {
	client *openai.Client
	model  string
}

func New(apiKey, model string) *Generator {
	g := &Generator{model: model}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

func (g *Generator) ReportCopy(ctx context.Context, in ReportInput) (string, error) {
	if g.client == nil {
		return "", ErrDisabled
	}

	prompt := fmt.Sprintf(
		"Property: %s\nService delivered: %s\nBedrooms: %d\nHighlights: %s",
		in.PropertyAddress, in.Service, in.Bedrooms, in.Highlights,
	)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		MaxTokens:   400,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
