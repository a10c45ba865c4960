// Package assist categorizes transactions with a Gemini model.
package assist

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/spendwise"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// DefaultCategories are the answers the model may give when none are configured.
var DefaultCategories = []string{
	"Salary", "Freelance", "Food", "Groceries", "Transport", "Entertainment",
	"Utilities", "Rent", "Health", "Shopping", "Travel", spendwise.DefaultCategory,
}

// models is the part of genai.Models used here.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini is a spendwise.Categorizer that asks a Gemini model to pick one of
// Categories for a description. Answers are cached by description.
type Gemini struct {
	Model      string
	Categories []string
	models     models
	cache      map[string]string
}

var _ spendwise.Categorizer = (*Gemini)(nil)

// NewGemini creates a categorizer using the Gemini API. An empty apiKey lets
// the client read GEMINI_API_KEY or GOOGLE_API_KEY from the environment.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return newGemini(client.Models), nil
}

func newGemini(m models) *Gemini {
	return &Gemini{
		Model:      DefaultModel,
		Categories: DefaultCategories,
		models:     m,
		cache:      make(map[string]string),
	}
}

func (g *Gemini) config() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "text/x.enum",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeString,
			Enum: g.Categories,
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You sort personal finance transactions into categories.
			You receive the description of a single transaction, as typed by its owner
			or exported by their bank, and answer with exactly one of the allowed categories.
			When nothing fits, answer "` + spendwise.DefaultCategory + `".
		`}}},
	}
}

// Categorize implements spendwise.Categorizer.
func (g *Gemini) Categorize(ctx context.Context, description string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(description))
	if cat, ok := g.cache[key]; ok {
		return cat, nil
	}

	resp, err := g.models.GenerateContent(ctx, g.Model, genai.Text(description), g.config())
	if err != nil {
		return "", fmt.Errorf("cannot categorize %q: %w", description, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("cannot categorize %q: empty response from %s", description, g.Model)
	}
	answer := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	cat := g.match(answer)
	log.Printf("categorized %q as %q (model said %q)", description, cat, answer)
	g.cache[key] = cat
	return cat, nil
}

// match returns the allowed category equal to answer ignoring case, or the default one.
func (g *Gemini) match(answer string) string {
	answer = strings.Trim(answer, `"'. `)
	for _, c := range g.Categories {
		if strings.EqualFold(c, answer) {
			return c
		}
	}
	return spendwise.DefaultCategory
}
