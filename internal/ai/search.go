package ai

import (
	"context"
	"strings"

	genai "google.golang.org/genai"
)

const (
	healthSystemInstruction = "Você é um assistente virtual da Clínica Pro Vida. Responda perguntas sobre saúde de forma profissional, ética e baseada em evidências. Sempre lembre o usuário de que sua resposta não substitui uma consulta médica real. Responda em Português do Brasil."
	noAnswerText            = "Não foi possível obter uma resposta no momento."
)

// Search answers a health question with Google Search grounding enabled.
func (a *Adapter) Search(ctx context.Context, query string) (SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{}, ErrEmptyQuery
	}

	resp, err := a.gen.GenerateContent(ctx, a.searchModel,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: query}}}},
		&genai.GenerateContentConfig{
			Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: healthSystemInstruction}}},
		},
	)
	if err != nil {
		failureEvent(&a.log, ctx).Err(err).Str("model", a.searchModel).Msg("health advice query failed")
		return SearchResult{}, ErrHealthAdvice
	}

	text := responseText(resp)
	if text == "" {
		text = noAnswerText
	}
	return SearchResult{
		Text:    text,
		Sources: DedupeSources(groundingSources(resp)),
	}, nil
}

// responseText joins the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
