package fairness

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/metamind-labs/metamind/internal/llm"
)

// Interpretation is an advisory narrative over computed metrics. It
// never alters the metrics themselves.
type Interpretation struct {
	Summary           string   `json:"summary"`
	LikelyCauses      []string `json:"likely_causes"`
	RecommendedChecks []string `json:"recommended_checks"`
	Mitigations       []string `json:"mitigations"`
	Confidence        float64  `json:"confidence"`
}

// Interpreter turns metrics and their threshold verdict into a
// human-readable reading of the disparity.
type Interpreter interface {
	Interpret(ctx context.Context, m *Metrics, a *Analysis) (*Interpretation, error)
}

var interpretSchema = &llm.Schema{
	Name:        "fairness-interpret",
	Description: "Reading of a fairness audit's metric gaps",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"likely_causes": map[string]any{
				"type": "array", "items": map[string]any{"type": "string"},
			},
			"recommended_checks": map[string]any{
				"type": "array", "items": map[string]any{"type": "string"},
			},
			"mitigations": map[string]any{
				"type": "array", "items": map[string]any{"type": "string"},
			},
			"confidence": map[string]any{
				"type": "number", "minimum": 0, "maximum": 1,
			},
		},
		"required":             []any{"summary", "likely_causes", "recommended_checks", "mitigations", "confidence"},
		"additionalProperties": false,
	},
}

const interpretSystemPrompt = `You review fairness audits of an AI tutoring system.
You are given per-group outcome metrics and the gaps between groups.
Suggest plausible causes for the observed disparities and concrete checks
to confirm or rule them out. Statistical noise from small samples is a
valid cause. Be specific, not alarmist; the metrics are observational and
do not by themselves prove bias.`

// LLMInterpreter asks an LLM provider to narrate an audit result.
type LLMInterpreter struct {
	provider llm.Provider
}

func NewLLMInterpreter(provider llm.Provider) *LLMInterpreter {
	return &LLMInterpreter{provider: provider}
}

func (i *LLMInterpreter) Interpret(ctx context.Context, m *Metrics, a *Analysis) (*Interpretation, error) {
	payload, err := json.Marshal(struct {
		Metrics  *Metrics  `json:"metrics"`
		Analysis *Analysis `json:"analysis"`
	}{m, a})
	if err != nil {
		return nil, err
	}

	resp, err := i.provider.Generate(ctx, llm.Request{
		System: interpretSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Audit result:\n%s\n\nInterpret the gaps.", payload)},
		},
		Schema:    interpretSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, err
	}

	var out Interpretation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &out, nil
}
