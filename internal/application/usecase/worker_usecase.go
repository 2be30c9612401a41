package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/bogota"
)

// WorkerUseCase aplica las reglas de negocio de la nómina de trabajadoras.
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase construye el caso de uso con el puerto de persistencia.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create registra una trabajadora nueva. Devuelve domain.ErrDuplicate si la
// cédula ya existe. Si no llega reference_id se genera uno para el carnet.
func (uc *WorkerUseCase) Create(ctx context.Context, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	referenceID := in.ReferenceID
	if referenceID == "" {
		referenceID = uuid.NewString()
	}
	w := &entity.Worker{
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Cedula:        in.Cedula,
		Telefono:      in.Telefono,
		Cargo:         in.Cargo,
		Salario:       in.Salario,
		Activo:        true,
		FechaCreacion: bogota.Now(),
		Email:         in.Email,
		ReferenceID:   referenceID,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toWorkerResponse(w), nil
}

// GetByID obtiene una trabajadora. domain.ErrNotFound si no existe.
func (uc *WorkerUseCase) GetByID(ctx context.Context, id int64) (*dto.WorkerResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkerResponse(w), nil
}

// List devuelve la nómina completa, incluidas las desactivadas.
func (uc *WorkerUseCase) List(ctx context.Context) (*dto.WorkerListResponse, error) {
	workers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toWorkerList(workers), nil
}

// ListActive devuelve solo las trabajadoras activas.
func (uc *WorkerUseCase) ListActive(ctx context.Context) (*dto.WorkerListResponse, error) {
	workers, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toWorkerList(workers), nil
}

// Update sobreescribe solo los campos presentes en la petición.
func (uc *WorkerUseCase) Update(ctx context.Context, id int64, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		w.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		w.Apellido = *in.Apellido
	}
	if in.Cargo != nil {
		w.Cargo = *in.Cargo
	}
	if in.Salario != nil {
		w.Salario = *in.Salario
	}
	if in.Email != nil {
		w.Email = *in.Email
	}
	if in.Telefono != nil {
		w.Telefono = *in.Telefono
	}
	if in.Activo != nil {
		w.Activo = *in.Activo
	}
	if in.ReferenceID != nil {
		w.ReferenceID = *in.ReferenceID
	}
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return toWorkerResponse(w), nil
}

// Deactivate es el borrado lógico: la trabajadora queda con Activo=false y
// sigue apareciendo en el listado sin filtrar.
func (uc *WorkerUseCase) Deactivate(ctx context.Context, id int64) error {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if w == nil {
		return domain.ErrNotFound
	}
	w.Activo = false
	return uc.repo.Update(ctx, w)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:            w.ID,
		Nombre:        w.Nombre,
		Apellido:      w.Apellido,
		Cedula:        w.Cedula,
		Cargo:         w.Cargo,
		Salario:       w.Salario,
		Email:         w.Email,
		Telefono:      w.Telefono,
		Activo:        w.Activo,
		ReferenceID:   w.ReferenceID,
		FechaCreacion: w.FechaCreacion,
	}
}

func toWorkerList(workers []*entity.Worker) *dto.WorkerListResponse {
	out := &dto.WorkerListResponse{Workers: make([]dto.WorkerResponse, 0, len(workers))}
	for _, w := range workers {
		out.Workers = append(out.Workers, *toWorkerResponse(w))
	}
	out.Total = len(out.Workers)
	return out
}
