package dto

import "time"

// DeliverySizes agrupa las cantidades por talla de un lote entregado. Los
// campos usan FlexInt: lo no numérico del formulario entra como 0.
type DeliverySizes struct {
	Sz6_12  FlexInt `json:"sz6_12"`
	Sz12_18 FlexInt `json:"sz12_18"`
	Sz18_24 FlexInt `json:"sz18_24"`
	Sz24_36 FlexInt `json:"sz24_36"`
	Sz36_48 FlexInt `json:"sz36_48"`
	Sz2     FlexInt `json:"sz2"`
	Sz4     FlexInt `json:"sz4"`
	Sz6     FlexInt `json:"sz6"`
	Sz8     FlexInt `json:"sz8"`
	Sz10    FlexInt `json:"sz10"`
	Sz12    FlexInt `json:"sz12"`
	Sz14    FlexInt `json:"sz14"`
	Sz16    FlexInt `json:"sz16"`
	Sz18    FlexInt `json:"sz18"`
}

// CreateDeliveryRequest entrada para registrar una entrega de piezas.
type CreateDeliveryRequest struct {
	Owner      string    `json:"owner" validate:"required,min=1,max=100"`
	Date       time.Time `json:"date" validate:"required"`
	Lot        string    `json:"lot" validate:"max=50"`
	Type       string    `json:"type" validate:"max=50"`
	Color      string    `json:"color" validate:"max=50"`
	Rib        string    `json:"rib" validate:"max=100"`
	TypeFabric string    `json:"type_fabric" validate:"max=100"`
	Annotation string    `json:"annotation" validate:"max=500"`
	IDGroup    string    `json:"id_group" validate:"max=50"`
	ModifiedBy string    `json:"modified_by" validate:"max=100"`
	DeliverySizes
}

// UpdateDeliveryRequest entrada para actualización parcial. Solo los campos
// presentes sobreescriben; la auditoría se estampa siempre.
type UpdateDeliveryRequest struct {
	Owner      *string    `json:"owner" validate:"omitempty,min=1,max=100"`
	Date       *time.Time `json:"date"`
	Lot        *string    `json:"lot" validate:"omitempty,max=50"`
	Type       *string    `json:"type" validate:"omitempty,max=50"`
	Color      *string    `json:"color" validate:"omitempty,max=50"`
	Rib        *string    `json:"rib" validate:"omitempty,max=100"`
	TypeFabric *string    `json:"type_fabric" validate:"omitempty,max=100"`
	Annotation *string    `json:"annotation" validate:"omitempty,max=500"`
	IDGroup    *string    `json:"id_group" validate:"omitempty,max=50"`
	ModifiedBy string     `json:"modified_by" validate:"max=100"`

	Sz6_12  *FlexInt `json:"sz6_12"`
	Sz12_18 *FlexInt `json:"sz12_18"`
	Sz18_24 *FlexInt `json:"sz18_24"`
	Sz24_36 *FlexInt `json:"sz24_36"`
	Sz36_48 *FlexInt `json:"sz36_48"`
	Sz2     *FlexInt `json:"sz2"`
	Sz4     *FlexInt `json:"sz4"`
	Sz6     *FlexInt `json:"sz6"`
	Sz8     *FlexInt `json:"sz8"`
	Sz10    *FlexInt `json:"sz10"`
	Sz12    *FlexInt `json:"sz12"`
	Sz14    *FlexInt `json:"sz14"`
	Sz16    *FlexInt `json:"sz16"`
	Sz18    *FlexInt `json:"sz18"`
}

// SoftDeleteRequest autor de una desactivación de entrega.
type SoftDeleteRequest struct {
	ModifiedBy string `json:"modified_by" validate:"max=100"`
}

// DeliveryResponse salida de una entrega.
type DeliveryResponse struct {
	ID         int64     `json:"id_delivery"`
	Owner      string    `json:"owner"`
	Date       time.Time `json:"date"`
	Lot        string    `json:"lot,omitempty"`
	Type       string    `json:"type,omitempty"`
	Color      string    `json:"color,omitempty"`
	Rib        string    `json:"rib,omitempty"`
	TypeFabric string    `json:"type_fabric,omitempty"`
	Annotation string    `json:"annotation,omitempty"`

	Sz6_12  int `json:"sz6_12"`
	Sz12_18 int `json:"sz12_18"`
	Sz18_24 int `json:"sz18_24"`
	Sz24_36 int `json:"sz24_36"`
	Sz36_48 int `json:"sz36_48"`
	Sz2     int `json:"sz2"`
	Sz4     int `json:"sz4"`
	Sz6     int `json:"sz6"`
	Sz8     int `json:"sz8"`
	Sz10    int `json:"sz10"`
	Sz12    int `json:"sz12"`
	Sz14    int `json:"sz14"`
	Sz16    int `json:"sz16"`
	Sz18    int `json:"sz18"`

	TotalUnidades int       `json:"total_unidades"`
	IDGroup       string    `json:"id_group,omitempty"`
	Status        string    `json:"status"`
	ModifiedAt    time.Time `json:"modified_at"`
	ModifiedBy    string    `json:"modified_by"`
}

// DeliveryListResponse lista de entregas con su total.
type DeliveryListResponse struct {
	Deliveries []DeliveryResponse `json:"data"`
	Total      int                `json:"total"`
}
