package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Credenciais inválidas", code: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "Dado obrigatório ausente", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "Rota inexistente", code: ErrRouteNotFound, wantStatus: http.StatusNotFound},
		{name: "Método não aceito", code: ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed},
		{name: "Falha no envio", code: ErrSubmissionFailed, wantStatus: http.StatusBadGateway},
		{name: "Tempo limite do envio", code: ErrSubmissionTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "Código desconhecido vira erro interno", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)

	apiErr := FromError(errors.New("falhou"), ErrExternalService)
	assert.Equal(t, ErrExternalService, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
