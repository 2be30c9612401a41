package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/bogota"
)

// AssistenceUseCase controla el ciclo llegada → salida de la asistencia
// diaria. Todas las comparaciones de "hoy" son por día civil de Bogotá.
type AssistenceUseCase struct {
	workers repository.WorkerRepository
	repo    repository.AssistenceRepository
}

// NewAssistenceUseCase construye el caso de uso con sus puertos.
func NewAssistenceUseCase(workers repository.WorkerRepository, repo repository.AssistenceRepository) *AssistenceUseCase {
	return &AssistenceUseCase{workers: workers, repo: repo}
}

// MarkArrival marca la llegada de la trabajadora identificada por ID.
// domain.ErrNotFound si no existe; domain.ErrAlreadyMarked si ya tiene
// registro con llegada en el día civil de hoy.
func (uc *AssistenceUseCase) MarkArrival(ctx context.Context, workerID int64) (*dto.AssistenceResponse, error) {
	w, err := uc.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return uc.marcarLlegada(ctx, w)
}

// MarkArrivalByCode marca la llegada usando el código de barras del carnet.
func (uc *AssistenceUseCase) MarkArrivalByCode(ctx context.Context, referenceID string) (*dto.AssistenceResponse, error) {
	w, err := uc.workers.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return uc.marcarLlegada(ctx, w)
}

func (uc *AssistenceUseCase) marcarLlegada(ctx context.Context, w *entity.Worker) (*dto.AssistenceResponse, error) {
	ahora := bogota.Now()

	// Chequeo previo; el índice único (worker_id, día) cubre la carrera
	// entre el chequeo y el insert.
	existente, err := uc.repo.FindByWorkerAndDay(ctx, w.ID, ahora)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrAlreadyMarked
	}

	a := &entity.Assistence{
		WorkerID:      w.ID,
		WorkerNombre:  w.NombreCompleto(),
		ArrivalTime:   ahora,
		FechaCreacion: ahora,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAssistenceResponse(a), nil
}

// MarkDeparture estampa la salida y devuelve las horas trabajadas.
// domain.ErrNotFound si el registro no existe; domain.ErrAlreadyDeparted si
// la salida ya fue registrada.
func (uc *AssistenceUseCase) MarkDeparture(ctx context.Context, assistenceID int64) (*dto.AssistenceResponse, error) {
	a, err := uc.repo.GetByID(ctx, assistenceID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.DepartureTime != nil {
		return nil, domain.ErrAlreadyDeparted
	}

	salida := bogota.Now()
	if err := uc.repo.StampDeparture(ctx, a.ID, salida); err != nil {
		return nil, err
	}
	a.DepartureTime = &salida
	return toAssistenceResponse(a), nil
}

// ListToday devuelve las asistencias del día civil de hoy con su estado
// derivado (Presente / Salió) y horas trabajadas cuando existen.
func (uc *AssistenceUseCase) ListToday(ctx context.Context) (*dto.AsistenciasDiaResponse, error) {
	hoy := bogota.Today()
	asistencias, err := uc.repo.ListByDay(ctx, hoy)
	if err != nil {
		return nil, err
	}
	out := &dto.AsistenciasDiaResponse{
		Asistencias: make([]dto.AssistenceResponse, 0, len(asistencias)),
		Fecha:       hoy.Format("02/01/2006"),
	}
	for _, a := range asistencias {
		out.Asistencias = append(out.Asistencias, *toAssistenceResponse(a))
	}
	out.Total = len(out.Asistencias)
	return out, nil
}

// ListByWorker devuelve el historial de asistencia de una trabajadora.
func (uc *AssistenceUseCase) ListByWorker(ctx context.Context, workerID int64) (*dto.AsistenciasDiaResponse, error) {
	w, err := uc.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	asistencias, err := uc.repo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	out := &dto.AsistenciasDiaResponse{
		Asistencias: make([]dto.AssistenceResponse, 0, len(asistencias)),
	}
	for _, a := range asistencias {
		out.Asistencias = append(out.Asistencias, *toAssistenceResponse(a))
	}
	out.Total = len(out.Asistencias)
	return out, nil
}

func toAssistenceResponse(a *entity.Assistence) *dto.AssistenceResponse {
	loc := bogota.Location()
	llegada := a.ArrivalTime.In(loc)

	out := &dto.AssistenceResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		Worker:      a.WorkerNombre,
		ArrivalTime: llegada.Format(time.RFC3339),
		Fecha:       llegada.Format("02/01/2006"),
		HoraLlegada: llegada.Format("15:04:05"),
		HoraSalida:  "---",
		Estado:      a.Estado(),
	}
	if a.DepartureTime != nil {
		salida := a.DepartureTime.In(loc)
		iso := salida.Format(time.RFC3339)
		out.DepartureTime = &iso
		out.HoraSalida = salida.Format("15:04:05")
	}
	if horas, ok := a.HorasTrabajadas(); ok {
		out.HorasTrabajadas = &horas
	}
	return out
}
