package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini asks a text generator for CozyBot-style advice.
type Gemini struct {
	gen Generator
}

// NewGemini wraps gen.
func NewGemini(gen Generator) *Gemini {
	return &Gemini{gen: gen}
}

// New returns a Gemini-backed advisor, or Unconfigured when apiKey is empty
// or the client cannot be built.
func New(ctx context.Context, apiKey, model string) Advisor {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return Unconfigured()
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[advisor] gemini client: %v", err)
		return Unconfigured()
	}
	return NewGemini(&genaiGenerator{client: client, model: model})
}

// Advise builds the prompt and returns the model's reply or a fixed fallback.
func (g *Gemini) Advise(ctx context.Context, room []RoomItem, question string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[advisor] panic: %v", r)
			reply = FailureMessage
		}
	}()
	text, err := g.gen.Generate(ctx, BuildPrompt(room, question))
	if err != nil {
		log.Printf("[advisor] generate: %v", err)
		return FailureMessage
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyReplyMessage
	}
	return text
}

// BuildPrompt describes the room layout and the user's question.
func BuildPrompt(room []RoomItem, question string) string {
	lines := make([]string, 0, len(room))
	for _, item := range room {
		lines = append(lines, fmt.Sprintf("- %s (%s) at position %d,%d", item.Name, item.Color, item.X, item.Y))
	}
	layout := strings.Join(lines, "\n")
	if layout == "" {
		layout = "The room is currently empty."
	}
	var b strings.Builder
	b.WriteString("You are an expert interior designer named \"CozyBot\".\n")
	b.WriteString("The user is designing a room in a game.\n\n")
	b.WriteString("Current Room Layout:\n")
	b.WriteString(layout)
	b.WriteString("\n\nUser Question: \"")
	b.WriteString(question)
	b.WriteString("\"\n\n")
	b.WriteString("Provide a short, friendly, and creative piece of advice (max 2 sentences).\n")
	b.WriteString("Suggest specific items or color combinations if relevant.\n")
	b.WriteString("Focus on aesthetics, mood, and practical layout.\n")
	return b.String()
}

type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
