package dto

import (
	"bytes"
	"strconv"
	"strings"
)

// APIResponse es el sobre uniforme de todas las respuestas del servicio:
// {success, data|error, message?}. La capa HTTP decide el código de estado.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(data any, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// Fail construye una respuesta de error de negocio.
func Fail(mensaje string) APIResponse {
	return APIResponse{Success: false, Error: mensaje}
}

// FlexInt es un entero que tolera los campos numéricos mal formados de los
// formularios: acepta número JSON, cadena numérica, null o basura, y todo lo
// no numérico se convierte en 0 (comportamiento documentado, no un defecto).
type FlexInt int

// UnmarshalJSON implementa la coerción silenciosa a 0.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = 0
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(x))
	}
	return nil
}

// Int devuelve el valor como int.
func (f FlexInt) Int() int { return int(f) }

// FlexFloat es el equivalente de FlexInt para campos con decimales.
type FlexFloat float64

// UnmarshalJSON implementa la coerción silenciosa a 0.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = 0
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		return nil
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexFloat(x)
	}
	return nil
}

// Float devuelve el valor como float64.
func (f FlexFloat) Float() float64 { return float64(f) }
