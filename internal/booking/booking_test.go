package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitAcknowledges(t *testing.T) {
	ack, err := Submit(Request{Name: "  Maria Silva ", Phone: "(11) 91234-5678", Email: "maria@example.com"})
	require.NoError(t, err)
	require.Equal(t, "Olá Maria Silva, recebemos sua solicitação!\n\nNossa equipe entrará em contato pelo telefone (11) 91234-5678 em breve para confirmar seu agendamento.", ack.Message)
}

func TestSubmitMissingFields(t *testing.T) {
	cases := map[string]Request{
		"name":  {Phone: "1", Email: "a@b.com"},
		"phone": {Name: "A", Phone: "   ", Email: "a@b.com"},
		"email": {Name: "A", Phone: "1"},
	}
	for field, req := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := Submit(req)
			require.ErrorIs(t, err, ErrMissingField)
			require.Contains(t, err.Error(), field)
			require.Equal(t, "Preencha nome, telefone e email.", PublicMessage(err))
		})
	}
}

func TestSubmitInvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "Maria <maria@example.com>"} {
		_, err := Submit(Request{Name: "A", Phone: "1", Email: email})
		require.ErrorIs(t, err, ErrInvalidEmail, email)
	}
}

func TestMessageIsOptional(t *testing.T) {
	_, err := Submit(Request{Name: "A", Phone: "1", Email: "a@b.com", Message: "Desejo agendar uma consulta"})
	require.NoError(t, err)
}
