package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/taller-api/internal/domain"
)

// validate instancia compartida; el validador cachea la metadata de structs.
var validate = validator.New()

// validarBody corre las reglas `validate` del DTO. Los fallos se envuelven
// en domain.ErrInvalidInput con el primer campo que falla, para que
// respondErr los traduzca a 400.
func validarBody(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: campo %s (regla %s)", domain.ErrInvalidInput, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
