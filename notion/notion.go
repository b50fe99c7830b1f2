// Package notion publishes the dashboard to a Notion code block.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/etnz/hud/fetch"
)

// Version is the Notion API version used.
const Version = "2022-06-28"

// MaxChunk is the maximum number of characters of a rich text object.
const MaxChunk = 2000

// BaseURL is the Notion API endpoint.
var BaseURL = "https://api.notion.com/v1"

// Client publishes to Notion.
type Client struct {
	Token  string
	Client *http.Client
}

// New returns a Client authenticated with token.
func New(token string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: fetch.Timeout}
	}
	return &Client{Token: token, Client: client}
}

type text struct {
	Content string `json:"content"`
}

type richText struct {
	Type string `json:"type"`
	Text text   `json:"text"`
}

type code struct {
	RichText []richText `json:"rich_text"`
	Language string     `json:"language"`
}

type codeBlock struct {
	Code code `json:"code"`
}

// chunks splits s into pieces of at most n characters.
func chunks(s string, n int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var parts []string
	for len(runes) > 0 {
		k := min(n, len(runes))
		parts = append(parts, string(runes[:k]))
		runes = runes[k:]
	}
	return parts
}

// NormalizeID removes the dashes of a block id.
func NormalizeID(id string) string { return strings.TrimSpace(strings.ReplaceAll(id, "-", "")) }

// PushCodeBlock replaces the content of an existing code block.
func (c *Client) PushCodeBlock(ctx context.Context, blockID, content string) error {
	if c.Token == "" || blockID == "" {
		return errors.New("notion token and block id are required")
	}
	block := codeBlock{Code: code{Language: "plain text"}}
	for _, part := range chunks(content, MaxChunk) {
		block.Code.RichText = append(block.Code.RichText, richText{Type: "text", Text: text{Content: part}})
	}
	payload, err := json.Marshal(block)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s/blocks/%s", BaseURL, NormalizeID(blockID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, addr, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", Version)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot update notion block: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("cannot update notion block: HTTP %s: %s", resp.Status, msg)
	}
	return nil
}
