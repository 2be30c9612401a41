package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkerRequest entrada para crear una trabajadora.
type CreateWorkerRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=100"`
	Apellido    string          `json:"apellido" validate:"max=100"`
	Cedula      string          `json:"cedula" validate:"required,min=1,max=20"`
	Cargo       string          `json:"cargo" validate:"required,min=1,max=100"`
	Salario     decimal.Decimal `json:"salario"`
	Email       string          `json:"email" validate:"omitempty,email,max=100"`
	Telefono    string          `json:"telefono" validate:"max=20"`
	ReferenceID string          `json:"reference_id" validate:"max=50"`
}

// UpdateWorkerRequest entrada para actualización parcial (la cédula no cambia).
type UpdateWorkerRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=100"`
	Apellido    *string          `json:"apellido" validate:"omitempty,max=100"`
	Cargo       *string          `json:"cargo" validate:"omitempty,min=1,max=100"`
	Salario     *decimal.Decimal `json:"salario"`
	Email       *string          `json:"email" validate:"omitempty,email,max=100"`
	Telefono    *string          `json:"telefono" validate:"omitempty,max=20"`
	Activo      *bool            `json:"activo"`
	ReferenceID *string          `json:"reference_id" validate:"omitempty,max=50"`
}

// WorkerResponse salida de una trabajadora.
type WorkerResponse struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	Apellido      string          `json:"apellido"`
	Cedula        string          `json:"cedula"`
	Cargo         string          `json:"cargo"`
	Salario       decimal.Decimal `json:"salario"`
	Email         string          `json:"email,omitempty"`
	Telefono      string          `json:"telefono,omitempty"`
	Activo        bool            `json:"activo"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
}

// WorkerListResponse lista de trabajadoras con su total.
type WorkerListResponse struct {
	Workers []WorkerResponse `json:"data"`
	Total   int              `json:"total"`
}
