package mastery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/metamind-labs/metamind/internal/llm"
	"github.com/metamind-labs/metamind/internal/store"
)

// SkillExtract is the outcome of analyzing a session transcript.
type SkillExtract struct {
	// Skills the student demonstrably worked on, at most 5, snake_case.
	Skills []string `json:"skills"`

	// Reason is a one-sentence justification for the selection.
	Reason string `json:"reason"`
}

// SkillExtractor identifies which skills a tutoring session exercised.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, topic string, turns []*store.Interaction) (*SkillExtract, error)
}

const maxExtractedSkills = 5

var skillExtractSchema = &llm.Schema{
	Name:        "skill-extract",
	Description: "Skills the student practiced in a tutoring session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"maxItems": maxExtractedSkills,
			},
			"reason": map[string]any{"type": "string"},
		},
		"required":             []any{"skills", "reason"},
		"additionalProperties": false,
	},
}

const skillExtractSystemPrompt = `You analyze transcripts of Socratic math tutoring sessions.
Identify the specific skills the student actually practiced, judged from
what they attempted and where they struggled. Name each skill as a short
snake_case identifier, e.g. "common_denominator". Return at most 5 skills.
Do not invent skills the transcript gives no evidence for.`

// LLMExtractor asks an LLM provider to name the skills a session
// exercised. Failures are returned to the caller; the aggregator decides
// how to degrade.
type LLMExtractor struct {
	provider llm.Provider
}

func NewLLMExtractor(provider llm.Provider) *LLMExtractor {
	return &LLMExtractor{provider: provider}
}

func (e *LLMExtractor) ExtractSkills(ctx context.Context, topic string, turns []*store.Interaction) (*SkillExtract, error) {
	resp, err := e.provider.Generate(ctx, llm.Request{
		System: skillExtractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExtractPrompt(topic, turns)},
		},
		Schema:    skillExtractSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, err
	}

	var out SkillExtract
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if len(out.Skills) > maxExtractedSkills {
		out.Skills = out.Skills[:maxExtractedSkills]
	}
	return &out, nil
}

func buildExtractPrompt(topic string, turns []*store.Interaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\nTranscript:\n", topic)
	for _, it := range turns {
		fmt.Fprintf(&b, "[%d] %s: %s\n", it.TurnIndex, it.Speaker, it.Content)
	}
	b.WriteString("\nWhich skills did the student practice?")
	return b.String()
}
