package ai

import (
	"context"

	genai "google.golang.org/genai"
)

type recordedCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

// fakeGenerator returns a canned response and records each call.
type fakeGenerator struct {
	resp  *genai.GenerateContentResponse
	err   error
	calls []recordedCall
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, recordedCall{model: model, contents: contents, config: config})
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func textResponse(text string, chunks ...*genai.GroundingChunk) *genai.GenerateContentResponse {
	cand := &genai.Candidate{
		Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
	}
	if len(chunks) > 0 {
		cand.GroundingMetadata = &genai.GroundingMetadata{GroundingChunks: chunks}
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{cand}}
}

func webChunk(uri, title string) *genai.GroundingChunk {
	return &genai.GroundingChunk{Web: &genai.GroundingChunkWeb{URI: uri, Title: title}}
}

func partsResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Role: "model", Parts: parts},
	}}}
}
