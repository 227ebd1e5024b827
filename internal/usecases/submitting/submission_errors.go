package submitting

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDate bloqueia o envio antes de qualquer chamada externa
	ErrMissingDate    = errors.New("data do registro é obrigatória")
	ErrInvalidDate    = errors.New("data do registro inválida")
	ErrNegativeCount  = errors.New("contagens não podem ser negativas")
	ErrAppendFailed   = errors.New("falha ao gravar o registro")
	ErrAppendTimeout  = errors.New("tempo limite ao gravar o registro")
	ErrTargetDisabled = errors.New("destino de gravação não configurado")
)

// SubmissionError é um erro de envio com o código da API
type SubmissionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Target  string // Destino da gravação, quando houve tentativa
	Details string // Detalhes adicionais
}

func (e *SubmissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// IsValidationError indica erro do formulário, que nunca chegou a ser enviado
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNegativeCount)
}

func NewSubmissionError(baseErr error, code string, target string, details string) *SubmissionError {
	return &SubmissionError{
		Err:     baseErr,
		Code:    code,
		Target:  target,
		Details: details,
	}
}
