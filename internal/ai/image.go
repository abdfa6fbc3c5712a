package ai

import (
	"context"
	"strings"

	genai "google.golang.org/genai"
)

// EditImage applies a text instruction to a data-URI image and returns the
// result as a PNG data URI. The output type is always PNG.
func (a *Adapter) EditImage(ctx context.Context, image, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if strings.TrimSpace(image) == "" || prompt == "" {
		return "", ErrInvalidImageRequest
	}
	in := ParseDataURI(image)

	resp, err := a.gen.GenerateContent(ctx, a.imageModel,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: in.MIMEType, Data: in.Bytes()}},
				{Text: prompt},
			},
		}},
		nil,
	)
	if err != nil {
		failureEvent(&a.log, ctx).Err(err).Str("model", a.imageModel).Str("mime", in.MIMEType).Msg("image edit failed")
		return "", ErrImageEdit
	}

	blob := firstInlineImage(resp)
	if blob == nil {
		a.log.Warn().Str("model", a.imageModel).Msg("image edit returned no image part")
		return "", ErrNoImageProduced
	}
	return EncodeDataURI(pngMIMEType, blob.Data), nil
}

func firstInlineImage(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0 {
			return p.InlineData
		}
	}
	return nil
}
