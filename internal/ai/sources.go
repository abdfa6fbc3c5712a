package ai

import (
	"strings"

	genai "google.golang.org/genai"
)

const defaultSourceTitle = "Fonte Web"

// groundingSources collects the web citations of the first candidate.
// Chunks without a web URI are dropped.
func groundingSources(resp *genai.GenerateContentResponse) []SourceReference {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}
	out := make([]SourceReference, 0, len(meta.GroundingChunks))
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		uri := strings.TrimSpace(chunk.Web.URI)
		if uri == "" {
			continue
		}
		title := strings.TrimSpace(chunk.Web.Title)
		if title == "" {
			title = defaultSourceTitle
		}
		out = append(out, SourceReference{URI: uri, Title: title})
	}
	return out
}

// DedupeSources keeps the first reference seen for each URI, in input order.
func DedupeSources(refs []SourceReference) []SourceReference {
	out := make([]SourceReference, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.URI]; ok {
			continue
		}
		seen[ref.URI] = struct{}{}
		out = append(out, ref)
	}
	return out
}
