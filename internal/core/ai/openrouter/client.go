package openrouter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"smart-recipe-generator/internal/core/ai/cache"
	"smart-recipe-generator/internal/infrastructure/config"
	"smart-recipe-generator/internal/pkg/common"
)

const baseURL = "https://openrouter.ai/api/v1"

// Client calls the OpenRouter chat completions API to generate recipes.
type Client struct {
	http      *resty.Client
	cache     *cache.Service
	model     string
	maxTokens int
}

// NewClient creates an OpenRouter client. The cache may be nil.
func NewClient(cfg config.OpenRouterConfig, cacheSvc *cache.Service) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("HTTP-Referer", "https://github.com/smart-recipe-generator").
		SetHeader("X-Title", "Smart Recipe Generator")

	return &Client{
		http:      httpClient,
		cache:     cacheSvc,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Generate requests count recipes matching the query. The raw model output is
// cached by prompt hash so identical queries skip the upstream call.
func (c *Client) Generate(ctx context.Context, q *common.RecipeQuery, count int) ([]common.Recipe, error) {
	prompt := buildPrompt(q, count)

	if c.cache != nil {
		if cached := c.cache.Get(ctx, prompt); cached != "" {
			return parseRecipes(cached)
		}
	}

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	recipes, err := parseRecipes(content)
	if err != nil {
		return nil, err
	}

	if c.cache != nil && len(recipes) > 0 {
		c.cache.Set(ctx, prompt, content)
	}
	return recipes, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	}

	var result chatResponse
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&result).
		Post("/chat/completions")

	requestID := ""
	if resp != nil {
		requestID = resp.Header().Get("X-Request-Id")
	}
	common.LogGenerationCall(time.Since(start), err, requestID)

	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if result.Error != nil {
		return "", fmt.Errorf("openrouter error %d: %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}

	content := result.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("openrouter returned empty content")
	}
	return content, nil
}

// buildPrompt asks for strict JSON in the shared recipe shape. Models still
// wrap the payload in prose or fences often enough that parsing stays
// defensive.
func buildPrompt(q *common.RecipeQuery, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d practical recipe(s) using these ingredients: %s.\n",
		count, strings.Join(q.Ingredients, ", "))

	if len(q.DietTags) > 0 {
		fmt.Fprintf(&b, "Every recipe must satisfy ALL of these dietary requirements: %s.\n",
			strings.Join(q.DietTags, ", "))
	}
	if q.Cuisine != "" {
		fmt.Fprintf(&b, "Cuisine: %s.\n", q.Cuisine)
	}
	if q.MaxTimeMinutes > 0 {
		fmt.Fprintf(&b, "Total cooking time must not exceed %d minutes.\n", q.MaxTimeMinutes)
	}
	if q.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty must be %s.\n", q.Difficulty)
	}

	b.WriteString(`Return ONLY valid JSON, no markdown and no explanations, in exactly this shape:
{"recipes":[{"title":"...","ingredients":[{"name":"...","quantity":"...","unit":"..."}],"steps":["..."],"timeMinutes":30,"difficulty":"EASY","cuisine":"...","dietTags":["..."],"nutrition":{"kcal":0,"protein":0,"carbs":0,"fat":0}}]}
difficulty must be one of EASY, MEDIUM, HARD.`)
	return b.String()
}

// parseRecipes accepts the requested {"recipes":[...]} envelope plus the two
// shapes models fall back to anyway: a bare array and a single object.
func parseRecipes(content string) ([]common.Recipe, error) {
	// A bare array would be mangled by object extraction, so detect it first.
	objStart := strings.Index(content, "{")
	if start, end := strings.Index(content, "["), strings.LastIndex(content, "]"); start != -1 && end > start &&
		(objStart == -1 || start < objStart) {
		var list []common.Recipe
		if err := common.ParseJSON(content[start:end+1], &list); err == nil && len(list) > 0 {
			return list, nil
		}
	}

	cleaned := common.ExtractJSONObject(content)

	var envelope struct {
		Recipes []common.Recipe `json:"recipes"`
	}
	if err := common.ParseJSON(cleaned, &envelope); err == nil && len(envelope.Recipes) > 0 {
		return envelope.Recipes, nil
	}

	var single common.Recipe
	if err := common.ParseJSON(cleaned, &single); err == nil && single.Title != "" {
		return []common.Recipe{single}, nil
	}

	// Some models emit unquoted keys; quoting them is wire cleaning, not
	// candidate repair.
	quoted := common.QuoteJSONKeys(cleaned)
	if err := common.ParseJSON(quoted, &envelope); err == nil && len(envelope.Recipes) > 0 {
		return envelope.Recipes, nil
	}
	if err := common.ParseJSON(quoted, &single); err == nil && single.Title != "" {
		return []common.Recipe{single}, nil
	}

	common.LogWarn("unparseable generation output", zap.Int("length", len(content)))
	return nil, fmt.Errorf("generation output is not valid recipe JSON")
}
