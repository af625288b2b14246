package intelligence

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "models/gemini-1.5-pro"

// GeminiClient wraps the Gemini generative model.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient dials the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// GenerateContent runs a single prompt with no tools and returns the text.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return textOf(resp), nil
}

// ToolModel returns a model configured with the given function declarations
// and system instruction, ready for a tool-calling chat session.
func (g *GeminiClient) ToolModel(systemInstruction string, tools []*genai.FunctionDeclaration) *genai.GenerativeModel {
	model := g.client.GenerativeModel(geminiModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	if len(tools) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: tools}}
	}
	return model
}

// Close releases the underlying connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func textOf(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
