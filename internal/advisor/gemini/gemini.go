// Package gemini adapts the Gemini generateContent REST endpoint to the
// advisor port.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash-latest"
	defaultTimeout = 30 * time.Second
)

const systemPrompt = `You are an intelligent financial advisor and stock analysis expert.
Help users with:
1. Stock analysis and investment advice
2. Personal finance management
3. Market insights and trends
4. Investment strategies

Provide helpful, accurate, and actionable financial guidance.
Always remind users to do their own research and consider their risk tolerance.`

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	model      string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
	}, nil
}

// Chat implements advisor.Advisor. The system prompt opens the
// conversation, followed by the full prior turns and the new message.
func (c *Client) Chat(ctx context.Context, history []core.ChatTurn, message string) (string, error) {
	contents := make([]content, 0, len(history)+2)
	contents = append(contents, content{Role: "user", Parts: []part{{Text: systemPrompt}}})
	for _, turn := range history {
		role := "user"
		if turn.Role == core.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: turn.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	return c.generate(ctx, contents)
}

// AnalyzeStock implements advisor.Advisor with the snapshot as
// grounding context.
func (c *Client) AnalyzeStock(ctx context.Context, snap core.StockSnapshot) (string, error) {
	prompt := buildAnalysisPrompt(snap)
	return c.generate(ctx, []content{{Role: "user", Parts: []part{{Text: prompt}}}})
}

func (c *Client) generate(ctx context.Context, contents []content) (string, error) {
	payload, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", &core.GatewayError{Provider: "gemini", Op: "generate", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &core.GatewayError{Provider: "gemini", Op: "generate", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Gemini request failed", "error", err, "model", c.model)
		return "", &core.GatewayError{Provider: "gemini", Op: "generate", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &core.GatewayError{
			Provider: "gemini",
			Op:       "generate",
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", &core.GatewayError{Provider: "gemini", Op: "generate", Err: err}
	}
	if genResp.Error != nil {
		return "", &core.GatewayError{
			Provider: "gemini",
			Op:       "generate",
			Err:      fmt.Errorf("%s: %s", genResp.Error.Status, genResp.Error.Message),
		}
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", &core.GatewayError{
			Provider: "gemini",
			Op:       "generate",
			Err:      fmt.Errorf("empty response"),
		}
	}

	var sb strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &core.GatewayError{
			Provider: "gemini",
			Op:       "generate",
			Err:      fmt.Errorf("empty response"),
		}
	}

	slog.DebugContext(ctx, "Gemini response received", "model", c.model, "length", len(text))
	return text, nil
}

func buildAnalysisPrompt(snap core.StockSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following stock data for %s (%s):\n\n", snap.CompanyName, snap.Symbol)
	fmt.Fprintf(&b, "Current Price: $%.2f\n", snap.CurrentPrice)
	fmt.Fprintf(&b, "Daily Change: $%.2f (%.2f%%)\n", snap.Change, snap.ChangePercent)
	fmt.Fprintf(&b, "Volume: %d\n", snap.Volume)
	if snap.MarketCap > 0 {
		fmt.Fprintf(&b, "Market Cap: $%.0f\n", snap.MarketCap)
	}
	fmt.Fprintf(&b, "Sector: %s\n", snap.Sector)
	if snap.PERatio > 0 {
		fmt.Fprintf(&b, "P/E Ratio: %.2f\n", snap.PERatio)
	}
	if snap.DividendYield > 0 {
		fmt.Fprintf(&b, "Dividend Yield: %.2f%%\n", snap.DividendYield*100)
	}
	b.WriteString(`
Provide a comprehensive analysis including:
1. Current market position and recent performance
2. Key financial metrics interpretation
3. Investment outlook (bullish/bearish/neutral)
4. Risk assessment
5. Actionable recommendation for retail investors

Keep the analysis professional but accessible, around 200-300 words.`)
	return b.String()
}
