package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent"

const defaultTimeout = 15 * time.Second

type GeminiChatParts struct {
	Text string `json:"text"`
}

type GeminiChatContent struct {
	Parts []*GeminiChatParts `json:"parts"`
	Role  string             `json:"role,omitempty"`
}

type GeminiChatRequest struct {
	Contents          []*GeminiChatContent `json:"contents"`
	SystemInstruction *GeminiChatContent   `json:"systemInstruction,omitempty"`
}

// ChatHistory is one transcript turn on the wire.
type ChatHistory struct {
	Chat string
	Role string
}

type GeminiChatCandidate struct {
	Content *GeminiChatContent `json:"content"`
}

type GeminiChatResponse struct {
	Candidates []*GeminiChatCandidate `json:"candidates"`
}

// Client talks to the Gemini generateContent endpoint. Requests are
// stateless: the full transcript travels with every call and no
// server-side conversation is assumed.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithBaseURL points the client at a different endpoint. Used by
// tests to swap in a local fake.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Generate sends the whole transcript plus the system directive and returns
// the first candidate's text. Any transport, status, or shape problem is an
// error; the caller decides how to degrade.
func (c *Client) Generate(ctx context.Context, chatHistories []*ChatHistory, systemDirective string) (string, error) {
	chatContents := make([]*GeminiChatContent, 0, len(chatHistories))
	for _, chatHistory := range chatHistories {
		chatContents = append(chatContents, &GeminiChatContent{
			Parts: []*GeminiChatParts{
				{
					Text: chatHistory.Chat,
				},
			},
			Role: chatHistory.Role,
		})
	}
	payload := GeminiChatRequest{
		Contents: chatContents,
		SystemInstruction: &GeminiChatContent{
			Parts: []*GeminiChatParts{{Text: systemDirective}},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("response has no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}
