package usecase

import (
	"context"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/bogota"
)

// DeliveryUseCase gestiona las entregas de piezas. El borrado es siempre
// lógico y cada mutación estampa la auditoría (modified_at / modified_by).
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
}

// NewDeliveryUseCase construye el caso de uso con el puerto de persistencia.
func NewDeliveryUseCase(repo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo}
}

// Create registra una entrega nueva. El status entra forzado a "active" sin
// importar lo que mande el llamador.
func (uc *DeliveryUseCase) Create(ctx context.Context, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	d := &entity.DeliveredPieces{
		Owner:      in.Owner,
		Date:       in.Date,
		Lot:        in.Lot,
		Type:       in.Type,
		Color:      in.Color,
		Rib:        in.Rib,
		TypeFabric: in.TypeFabric,
		Annotation: in.Annotation,

		Sz6_12:  in.Sz6_12.Int(),
		Sz12_18: in.Sz12_18.Int(),
		Sz18_24: in.Sz18_24.Int(),
		Sz24_36: in.Sz24_36.Int(),
		Sz36_48: in.Sz36_48.Int(),
		Sz2:     in.Sz2.Int(),
		Sz4:     in.Sz4.Int(),
		Sz6:     in.Sz6.Int(),
		Sz8:     in.Sz8.Int(),
		Sz10:    in.Sz10.Int(),
		Sz12:    in.Sz12.Int(),
		Sz14:    in.Sz14.Int(),
		Sz16:    in.Sz16.Int(),
		Sz18:    in.Sz18.Int(),

		IDGroup:    in.IDGroup,
		Status:     entity.StatusActive,
		ModifiedAt: bogota.Now(),
		ModifiedBy: autorODefecto(in.ModifiedBy),
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// GetByID obtiene una entrega. domain.ErrNotFound si no existe.
func (uc *DeliveryUseCase) GetByID(ctx context.Context, id int64) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDeliveryResponse(d), nil
}

// Update sobreescribe solo los campos presentes y siempre refresca la
// auditoría. Es un rastro, no un historial: los valores previos se pierden.
func (uc *DeliveryUseCase) Update(ctx context.Context, id int64, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	if in.Owner != nil {
		d.Owner = *in.Owner
	}
	if in.Date != nil {
		d.Date = *in.Date
	}
	if in.Lot != nil {
		d.Lot = *in.Lot
	}
	if in.Type != nil {
		d.Type = *in.Type
	}
	if in.Color != nil {
		d.Color = *in.Color
	}
	if in.Rib != nil {
		d.Rib = *in.Rib
	}
	if in.TypeFabric != nil {
		d.TypeFabric = *in.TypeFabric
	}
	if in.Annotation != nil {
		d.Annotation = *in.Annotation
	}
	if in.IDGroup != nil {
		d.IDGroup = *in.IDGroup
	}

	aplicarTalla(&d.Sz6_12, in.Sz6_12)
	aplicarTalla(&d.Sz12_18, in.Sz12_18)
	aplicarTalla(&d.Sz18_24, in.Sz18_24)
	aplicarTalla(&d.Sz24_36, in.Sz24_36)
	aplicarTalla(&d.Sz36_48, in.Sz36_48)
	aplicarTalla(&d.Sz2, in.Sz2)
	aplicarTalla(&d.Sz4, in.Sz4)
	aplicarTalla(&d.Sz6, in.Sz6)
	aplicarTalla(&d.Sz8, in.Sz8)
	aplicarTalla(&d.Sz10, in.Sz10)
	aplicarTalla(&d.Sz12, in.Sz12)
	aplicarTalla(&d.Sz14, in.Sz14)
	aplicarTalla(&d.Sz16, in.Sz16)
	aplicarTalla(&d.Sz18, in.Sz18)

	d.ModifiedAt = bogota.Now()
	d.ModifiedBy = autorODefecto(in.ModifiedBy)

	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// SoftDelete pasa la entrega a "inactive" y estampa la auditoría. Sobre un
// registro ya inactivo vuelve a tener éxito y re-estampa la auditoría.
func (uc *DeliveryUseCase) SoftDelete(ctx context.Context, id int64, modifiedBy string) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	d.Status = entity.StatusInactive
	d.ModifiedAt = bogota.Now()
	d.ModifiedBy = autorODefecto(modifiedBy)
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// ListAll devuelve todas las entregas, activas e inactivas.
func (uc *DeliveryUseCase) ListAll(ctx context.Context) (*dto.DeliveryListResponse, error) {
	deliveries, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDeliveryList(deliveries), nil
}

// ListActive devuelve solo las entregas con status "active".
func (uc *DeliveryUseCase) ListActive(ctx context.Context) (*dto.DeliveryListResponse, error) {
	deliveries, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toDeliveryList(deliveries), nil
}

// ListByGroup devuelve las entregas activas de un grupo.
// domain.ErrNotFound cuando el grupo no tiene ninguna activa.
func (uc *DeliveryUseCase) ListByGroup(ctx context.Context, idGroup string) (*dto.DeliveryListResponse, error) {
	deliveries, err := uc.repo.ListActiveByGroup(ctx, idGroup)
	if err != nil {
		return nil, err
	}
	if len(deliveries) == 0 {
		return nil, domain.ErrNotFound
	}
	return toDeliveryList(deliveries), nil
}

// ListOnePerGroup devuelve una entrega activa por cada id_group distinto
// (desempate: la de menor id del grupo).
func (uc *DeliveryUseCase) ListOnePerGroup(ctx context.Context) (*dto.DeliveryListResponse, error) {
	deliveries, err := uc.repo.ListOnePerGroup(ctx)
	if err != nil {
		return nil, err
	}
	return toDeliveryList(deliveries), nil
}

func autorODefecto(modifiedBy string) string {
	if modifiedBy == "" {
		return entity.ModificadoPorDefecto
	}
	return modifiedBy
}

func aplicarTalla(dst *int, v *dto.FlexInt) {
	if v != nil {
		*dst = v.Int()
	}
}

func toDeliveryResponse(d *entity.DeliveredPieces) *dto.DeliveryResponse {
	if d == nil {
		return nil
	}
	return &dto.DeliveryResponse{
		ID:         d.ID,
		Owner:      d.Owner,
		Date:       d.Date,
		Lot:        d.Lot,
		Type:       d.Type,
		Color:      d.Color,
		Rib:        d.Rib,
		TypeFabric: d.TypeFabric,
		Annotation: d.Annotation,

		Sz6_12:  d.Sz6_12,
		Sz12_18: d.Sz12_18,
		Sz18_24: d.Sz18_24,
		Sz24_36: d.Sz24_36,
		Sz36_48: d.Sz36_48,
		Sz2:     d.Sz2,
		Sz4:     d.Sz4,
		Sz6:     d.Sz6,
		Sz8:     d.Sz8,
		Sz10:    d.Sz10,
		Sz12:    d.Sz12,
		Sz14:    d.Sz14,
		Sz16:    d.Sz16,
		Sz18:    d.Sz18,

		TotalUnidades: d.TotalUnidades(),
		IDGroup:       d.IDGroup,
		Status:        d.Status,
		ModifiedAt:    d.ModifiedAt,
		ModifiedBy:    d.ModifiedBy,
	}
}

func toDeliveryList(deliveries []*entity.DeliveredPieces) *dto.DeliveryListResponse {
	out := &dto.DeliveryListResponse{Deliveries: make([]dto.DeliveryResponse, 0, len(deliveries))}
	for _, d := range deliveries {
		out.Deliveries = append(out.Deliveries, *toDeliveryResponse(d))
	}
	out.Total = len(out.Deliveries)
	return out
}
