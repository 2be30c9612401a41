package usecase

import (
	"context"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// FactoryUseCase gestiona los talleres satélite.
type FactoryUseCase struct {
	repo repository.FactoryRepository
}

// NewFactoryUseCase construye el caso de uso con el puerto de persistencia.
func NewFactoryUseCase(repo repository.FactoryRepository) *FactoryUseCase {
	return &FactoryUseCase{repo: repo}
}

// Create registra un taller.
func (uc *FactoryUseCase) Create(ctx context.Context, in dto.CreateFactoryRequest) (*dto.FactoryResponse, error) {
	f := &entity.Factory{
		Owner:      in.Owner,
		DocumentID: in.DocumentID,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFactoryResponse(f), nil
}

// GetByID obtiene un taller. domain.ErrNotFound si no existe.
func (uc *FactoryUseCase) GetByID(ctx context.Context, id int64) (*dto.FactoryResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return toFactoryResponse(f), nil
}

// List devuelve todos los talleres.
func (uc *FactoryUseCase) List(ctx context.Context) (*dto.FactoryListResponse, error) {
	factories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.FactoryListResponse{Factories: make([]dto.FactoryResponse, 0, len(factories))}
	for _, f := range factories {
		out.Factories = append(out.Factories, *toFactoryResponse(f))
	}
	out.Total = len(out.Factories)
	return out, nil
}

// Update sobreescribe solo los campos presentes.
func (uc *FactoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateFactoryRequest) (*dto.FactoryResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if in.Owner != nil {
		f.Owner = *in.Owner
	}
	if in.DocumentID != nil {
		f.DocumentID = *in.DocumentID
	}
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return toFactoryResponse(f), nil
}

// Delete elimina un taller. domain.ErrNotFound si no existe.
func (uc *FactoryUseCase) Delete(ctx context.Context, id int64) error {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toFactoryResponse(f *entity.Factory) *dto.FactoryResponse {
	if f == nil {
		return nil
	}
	return &dto.FactoryResponse{
		ID:         f.ID,
		Owner:      f.Owner,
		DocumentID: f.DocumentID,
	}
}
