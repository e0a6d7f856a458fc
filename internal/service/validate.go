package service

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"go-auth-api/internal/domain"
)

// Registration rule messages, surfaced verbatim to the client.
const (
	MsgNameRequired     = "El campo 'Nombre' no debe estar vacío."
	MsgEmailRequired    = "El correo es obligatorio."
	MsgEmailFormat      = "El correo electrónico no tiene un formato válido."
	MsgPasswordRequired = "La contraseña es obligatoria."
	MsgPasswordLength   = "La contraseña debe tener al menos 8 caracteres."
	MsgPasswordUpper    = "La contraseña debe incluir al menos una letra mayúscula."
	MsgPasswordLower    = "La contraseña debe incluir al menos una letra minúscula."
	MsgPasswordDigit    = "La contraseña debe incluir al menos un número."
	MsgPasswordSymbol   = "La contraseña debe incluir al menos un símbolo."
)

// RegisterValidator checks registration input before anything touches the
// store. Rules run in declaration order and the first violation wins. Pure:
// no side effects, no I/O.
type RegisterValidator struct {
	v *validator.Validate
}

func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{v: validator.New()}
}

func (rv *RegisterValidator) Validate(in RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &domain.ValidationError{Field: "name", Message: MsgNameRequired}
	}

	if strings.TrimSpace(in.Email) == "" {
		return &domain.ValidationError{Field: "email", Message: MsgEmailRequired}
	}
	if err := rv.v.Var(in.Email, "email"); err != nil {
		return &domain.ValidationError{Field: "email", Message: MsgEmailFormat}
	}

	if in.Password == "" {
		return &domain.ValidationError{Field: "password", Message: MsgPasswordRequired}
	}
	if len(in.Password) < 8 {
		return &domain.ValidationError{Field: "password", Message: MsgPasswordLength}
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range in.Password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	switch {
	case !hasUpper:
		return &domain.ValidationError{Field: "password", Message: MsgPasswordUpper}
	case !hasLower:
		return &domain.ValidationError{Field: "password", Message: MsgPasswordLower}
	case !hasDigit:
		return &domain.ValidationError{Field: "password", Message: MsgPasswordDigit}
	case !hasSymbol:
		return &domain.ValidationError{Field: "password", Message: MsgPasswordSymbol}
	}
	return nil
}
