package main

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

// PuzzleProvider generates a puzzle for an age tier, theme, and
// difficulty. Implementations may fail; callers fall back to the
// built-in puzzles.
type PuzzleProvider interface {
	GeneratePuzzle(ctx context.Context, age AgeGroup, theme string, difficulty Difficulty) (*PuzzleDocument, error)
}

// GeminiClient wraps the Google GenAI client for VertexAI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGeminiClient(ctx context.Context, projectID, region string) (*GeminiClient, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: defaultModel,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}

const generatePromptFmt = `Lag et kryssord for barn i alderen %s år, på norsk.

Tema: %s
Antall ord: %d
Rutenett: maks %dx%d ruter

Svar med JSON på nøyaktig dette formatet:
{
  "title": "<kort og morsom tittel>",
  "theme": "<temaet>",
  "width": <antall kolonner>,
  "height": <antall rader>,
  "words": [
    {"answer": "ORD", "clue": "<enkel ledetråd>", "image_keyword": "<english noun for image search>", "row": 0, "col": 0, "direction": "ACROSS"},
    ...
  ]
}

Regler:
- "answer" er ett norsk ord i store bokstaver, uten mellomrom eller bindestrek.
- "row" og "col" er 0-indeksert; "direction" er "ACROSS" eller "DOWN".
- Hvert ord må få plass i rutenettet fra sin posisjon.
- Ord som krysser hverandre må ha samme bokstav i kryssruten.
- Ledetrådene skal passe aldersgruppen og være uten fasitordet.
- Svar KUN med JSON, uten kommentarer eller markdown.`

// difficultyWordCount is how many words a generated puzzle should have.
var difficultyWordCount = map[Difficulty]int{Easy: 4, Medium: 6, Hard: 8}

// difficultyGridSize is the maximum grid dimension per difficulty.
var difficultyGridSize = map[Difficulty]int{Easy: 6, Medium: 8, Hard: 10}

// GeneratePuzzle asks Gemini for a crossword and parses the JSON reply.
func (g *GeminiClient) GeneratePuzzle(ctx context.Context, age AgeGroup, theme string, difficulty Difficulty) (*PuzzleDocument, error) {
	if theme == "" {
		theme = "dyr og natur"
	}
	size := difficultyGridSize[difficulty]
	prompt := fmt.Sprintf(generatePromptFmt, age, theme, difficultyWordCount[difficulty], size, size)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	return parsePuzzle([]byte(text))
}

// parsePuzzle decodes and normalizes a provider reply. Word geometry is
// trusted apart from what rendering needs: out-of-bounds words are
// dropped by Normalize, and a puzzle left without words is an error.
func parsePuzzle(data []byte) (*PuzzleDocument, error) {
	var p PuzzleDocument
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse puzzle JSON: %w\nraw response: %s", err, data)
	}

	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("invalid puzzle dimensions: %dx%d", p.Width, p.Height)
	}

	p.Normalize()
	if len(p.Words) == 0 {
		return nil, fmt.Errorf("puzzle has no usable words")
	}

	return &p, nil
}
