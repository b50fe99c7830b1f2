package agent

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/genai"
)

// Facts are the market figures given to the analyst, by name.
type Facts map[string]string

// String lists the facts, one per line, sorted by name.
func (f Facts) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var b strings.Builder
	for _, k := range keys {
		if f[k] == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", k, f[k])
	}
	return b.String()
}

// Analyst writes market alerts.
type Analyst struct {
	expert *Expert
}

// NewAnalyst returns an Analyst using model, or DefaultModel when empty.
func NewAnalyst(client *genai.Client, model string) *Analyst {
	if model == "" {
		model = DefaultModel
	}
	e := &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			Você é um analista de mercado que escreve para um trader brasileiro pessoa física.
			A partir dos números recebidos, escreva no máximo três alertas curtos, em português,
			separados por " • ", sobre movimentos relevantes ou riscos do dia.
			Não invente números, use apenas os fornecidos. Sem introdução, sem markdown.
			Se nada for relevante, responda "Sem alertas".`}}},
		},
	}
	e.Start(client)
	return &Analyst{expert: e}
}

// Alerts returns the alerts for the given facts. Without facts it returns "".
func (a *Analyst) Alerts(ctx context.Context, facts Facts) (string, error) {
	list := facts.String()
	if list == "" {
		return "", nil
	}
	answer, err := a.expert.Ask(ctx, "Números de mercado de hoje:\n"+list)
	if err != nil {
		return "", fmt.Errorf("cannot write market alerts: %w", err)
	}
	// the dashboard shows alerts on a single line.
	return strings.Join(strings.Fields(answer), " "), nil
}
