// Package booking validates appointment requests from the contact form.
// Nothing is stored or forwarded; the clinic calls the visitor back.
package booking

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrMissingField = errors.New("booking: missing required field")
	ErrInvalidEmail = errors.New("booking: invalid email")
)

type Request struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

type Acknowledgment struct {
	Message string `json:"message"`
}

// Normalize trims every field.
func (r Request) Normalize() Request {
	return Request{
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.TrimSpace(r.Email),
		Message: strings.TrimSpace(r.Message),
	}
}

func (r Request) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", r.Name},
		{"phone", r.Phone},
		{"email", r.Email},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != r.Email {
		return ErrInvalidEmail
	}
	return nil
}

// Submit validates req and returns the acknowledgment shown to the visitor.
func Submit(req Request) (Acknowledgment, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return Acknowledgment{}, err
	}
	return Acknowledgment{
		Message: fmt.Sprintf("Olá %s, recebemos sua solicitação!\n\nNossa equipe entrará em contato pelo telefone %s em breve para confirmar seu agendamento.", req.Name, req.Phone),
	}, nil
}

// PublicMessage localizes a Submit error for the visitor.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "Preencha nome, telefone e email."
	case errors.Is(err, ErrInvalidEmail):
		return "Informe um email válido."
	default:
		return "Não foi possível enviar sua solicitação."
	}
}
