// Package agent writes short market alerts with Gemini.
package agent

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Expert represent a single-shot exchange with a business expert.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	client    *genai.Client
}

// NewClient returns a Gemini client. httpClient and baseURL are optional.
func NewClient(ctx context.Context, apiKey string, httpClient *http.Client, baseURL string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
}

// Start binds the expert to a client.
func (e *Expert) Start(client *genai.Client) { e.client = client }

// Ask sends the question and returns the text of the answer.
func (e *Expert) Ask(ctx context.Context, question string) (string, error) {
	if e.client == nil {
		return "", fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.client.Models.GenerateContent(ctx, e.ModelName, genai.Text(question), e.Config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from expert %s", e.Name)
	}
	return strings.TrimSpace(resp.Text()), nil
}
