package dto

// CreateFactoryRequest entrada para registrar un taller satélite.
type CreateFactoryRequest struct {
	Owner      string `json:"owner" validate:"required,min=1,max=100"`
	DocumentID string `json:"document_id" validate:"omitempty,max=50"`
}

// UpdateFactoryRequest entrada para actualización parcial de un taller.
type UpdateFactoryRequest struct {
	Owner      *string `json:"owner" validate:"omitempty,min=1,max=100"`
	DocumentID *string `json:"document_id" validate:"omitempty,max=50"`
}

// FactoryResponse salida de un taller.
type FactoryResponse struct {
	ID         int64  `json:"id_factory"`
	Owner      string `json:"owner"`
	DocumentID string `json:"document_id,omitempty"`
}

// FactoryListResponse lista de talleres con su total.
type FactoryListResponse struct {
	Factories []FactoryResponse `json:"data"`
	Total     int               `json:"total"`
}
