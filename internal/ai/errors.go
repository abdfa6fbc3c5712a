package ai

import "errors"

// Errors returned by the adapter. Remote failures are always reported as
// one of these; the underlying cause only reaches the operator log.
var (
	ErrEmptyQuery          = errors.New("ai: empty query")
	ErrHealthAdvice        = errors.New("ai: health-advice query failed")
	ErrInvalidImageRequest = errors.New("ai: image and prompt are required")
	ErrImageEdit           = errors.New("ai: image edit failed")
	ErrNoImageProduced     = errors.New("ai: no image produced")
)

var publicMessages = []struct {
	err error
	msg string
}{
	{ErrEmptyQuery, "Digite uma pergunta."},
	{ErrHealthAdvice, "Falha ao consultar o assistente de saúde."},
	{ErrInvalidImageRequest, "Envie uma imagem e descreva a edição desejada."},
	{ErrNoImageProduced, "Nenhuma imagem gerada."},
	{ErrImageEdit, "Falha ao editar a imagem."},
}

// PublicMessage returns the localized message shown to a visitor for err.
// ok is false when err is not one of the adapter's errors.
func PublicMessage(err error) (msg string, ok bool) {
	for _, m := range publicMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return "", false
}
