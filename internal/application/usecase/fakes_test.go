package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/pkg/bogota"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// adaptadores de PostgreSQL: (nil, nil) cuando no existe, centinelas de
// dominio en los conflictos de unicidad.
// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkerRepo struct {
	workers map[int64]*entity.Worker
	nextID  int64
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[int64]*entity.Worker)}
}

func (f *fakeWorkerRepo) Create(_ context.Context, w *entity.Worker) error {
	for _, x := range f.workers {
		if x.Cedula == w.Cedula {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	w.ID = f.nextID
	copia := *w
	f.workers[w.ID] = &copia
	return nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id int64) (*entity.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, nil
	}
	copia := *w
	return &copia, nil
}

func (f *fakeWorkerRepo) GetByReferenceID(_ context.Context, referenceID string) (*entity.Worker, error) {
	for _, w := range f.workers {
		if w.ReferenceID == referenceID {
			copia := *w
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) List(_ context.Context) ([]*entity.Worker, error) {
	return f.listar(func(*entity.Worker) bool { return true }), nil
}

func (f *fakeWorkerRepo) ListActive(_ context.Context) ([]*entity.Worker, error) {
	return f.listar(func(w *entity.Worker) bool { return w.Activo }), nil
}

func (f *fakeWorkerRepo) listar(keep func(*entity.Worker) bool) []*entity.Worker {
	var out []*entity.Worker
	for _, w := range f.workers {
		if keep(w) {
			copia := *w
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeWorkerRepo) Update(_ context.Context, w *entity.Worker) error {
	if _, ok := f.workers[w.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *w
	f.workers[w.ID] = &copia
	return nil
}

func (f *fakeWorkerRepo) AvgSalarioActivoPorCargo(_ context.Context, cargo string) (decimal.Decimal, bool, error) {
	suma := decimal.Zero
	n := 0
	for _, w := range f.workers {
		if w.Activo && w.Cargo == cargo {
			suma = suma.Add(w.Salario)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero, false, nil
	}
	return suma.Div(decimal.NewFromInt(int64(n))), true, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeAssistenceRepo struct {
	registros map[int64]*entity.Assistence
	nextID    int64
}

func newFakeAssistenceRepo() *fakeAssistenceRepo {
	return &fakeAssistenceRepo{registros: make(map[int64]*entity.Assistence)}
}

func (f *fakeAssistenceRepo) Create(_ context.Context, a *entity.Assistence) error {
	// Mismo contrato que el índice único (worker_id, día civil).
	for _, x := range f.registros {
		if x.WorkerID == a.WorkerID && bogota.SameDay(x.ArrivalTime, a.ArrivalTime) {
			return domain.ErrAlreadyMarked
		}
	}
	f.nextID++
	a.ID = f.nextID
	copia := *a
	f.registros[a.ID] = &copia
	return nil
}

func (f *fakeAssistenceRepo) GetByID(_ context.Context, id int64) (*entity.Assistence, error) {
	a, ok := f.registros[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (f *fakeAssistenceRepo) FindByWorkerAndDay(_ context.Context, workerID int64, day time.Time) (*entity.Assistence, error) {
	for _, a := range f.registros {
		if a.WorkerID == workerID && bogota.SameDay(a.ArrivalTime, day) {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeAssistenceRepo) ListByDay(_ context.Context, day time.Time) ([]*entity.Assistence, error) {
	var out []*entity.Assistence
	for _, a := range f.registros {
		if bogota.SameDay(a.ArrivalTime, day) {
			copia := *a
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArrivalTime.Before(out[j].ArrivalTime) })
	return out, nil
}

func (f *fakeAssistenceRepo) ListByWorker(_ context.Context, workerID int64) ([]*entity.Assistence, error) {
	var out []*entity.Assistence
	for _, a := range f.registros {
		if a.WorkerID == workerID {
			copia := *a
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArrivalTime.After(out[j].ArrivalTime) })
	return out, nil
}

// StampDeparture respeta el mismo contrato que el UPDATE condicionado: cero
// filas cuando la salida ya existe.
func (f *fakeAssistenceRepo) StampDeparture(_ context.Context, id int64, salida time.Time) error {
	a, ok := f.registros[id]
	if !ok || a.DepartureTime != nil {
		return domain.ErrAlreadyDeparted
	}
	t := salida
	a.DepartureTime = &t
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeDeliveryRepo struct {
	entregas map[int64]*entity.DeliveredPieces
	nextID   int64
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{entregas: make(map[int64]*entity.DeliveredPieces)}
}

func (f *fakeDeliveryRepo) Create(_ context.Context, d *entity.DeliveredPieces) error {
	f.nextID++
	d.ID = f.nextID
	copia := *d
	f.entregas[d.ID] = &copia
	return nil
}

func (f *fakeDeliveryRepo) GetByID(_ context.Context, id int64) (*entity.DeliveredPieces, error) {
	d, ok := f.entregas[id]
	if !ok {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

func (f *fakeDeliveryRepo) Update(_ context.Context, d *entity.DeliveredPieces) error {
	if _, ok := f.entregas[d.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *d
	f.entregas[d.ID] = &copia
	return nil
}

func (f *fakeDeliveryRepo) ListAll(_ context.Context) ([]*entity.DeliveredPieces, error) {
	return f.listar(func(*entity.DeliveredPieces) bool { return true }), nil
}

func (f *fakeDeliveryRepo) ListActive(_ context.Context) ([]*entity.DeliveredPieces, error) {
	return f.listar(func(d *entity.DeliveredPieces) bool { return d.Status == entity.StatusActive }), nil
}

func (f *fakeDeliveryRepo) ListActiveByGroup(_ context.Context, idGroup string) ([]*entity.DeliveredPieces, error) {
	return f.listar(func(d *entity.DeliveredPieces) bool {
		return d.Status == entity.StatusActive && d.IDGroup == idGroup
	}), nil
}

func (f *fakeDeliveryRepo) ListOnePerGroup(_ context.Context) ([]*entity.DeliveredPieces, error) {
	// Una por grupo, la de menor id, como el DISTINCT ON del adaptador real.
	porGrupo := make(map[string]*entity.DeliveredPieces)
	for _, d := range f.entregas {
		if d.Status != entity.StatusActive {
			continue
		}
		actual, ok := porGrupo[d.IDGroup]
		if !ok || d.ID < actual.ID {
			porGrupo[d.IDGroup] = d
		}
	}
	var out []*entity.DeliveredPieces
	for _, d := range porGrupo {
		copia := *d
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDGroup < out[j].IDGroup })
	return out, nil
}

func (f *fakeDeliveryRepo) listar(keep func(*entity.DeliveredPieces) bool) []*entity.DeliveredPieces {
	var out []*entity.DeliveredPieces
	for _, d := range f.entregas {
		if keep(d) {
			copia := *d
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, x := range f.users {
		if x.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	copia := *u
	f.users[u.ID] = &copia
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	return f.listar(func(*entity.User) bool { return true }), nil
}

func (f *fakeUserRepo) ListActive(_ context.Context) ([]*entity.User, error) {
	return f.listar(func(u *entity.User) bool { return u.Estado == entity.StatusActive }), nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *u
	f.users[u.ID] = &copia
	return nil
}

func (f *fakeUserRepo) listar(keep func(*entity.User) bool) []*entity.User {
	var out []*entity.User
	for _, u := range f.users {
		if keep(u) {
			copia := *u
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
