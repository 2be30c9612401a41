package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

func entregaBase(owner, idGroup string) dto.CreateDeliveryRequest {
	return dto.CreateDeliveryRequest{
		Owner:   owner,
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Lot:     "L-01",
		Type:    "camiseta",
		Color:   "rojo",
		IDGroup: idGroup,
		DeliverySizes: dto.DeliverySizes{
			Sz2: dto.FlexInt(5),
			Sz4: dto.FlexInt(3),
		},
	}
}

func TestDeliveryCreate_StatusForzadoActivo(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	out, err := uc.Create(context.Background(), entregaBase("Taller Norte", "g1"))

	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.Equal(t, 8, out.TotalUnidades)
	assert.Equal(t, entity.ModificadoPorDefecto, out.ModifiedBy,
		"sin autor explícito la auditoría queda como system")
	assert.False(t, out.ModifiedAt.IsZero())
}

func TestDeliveryUpdate_ParcialYReestampaAuditoria(t *testing.T) {
	repo := newFakeDeliveryRepo()
	uc := usecase.NewDeliveryUseCase(repo)

	creada, err := uc.Create(context.Background(), entregaBase("Taller Norte", "g1"))
	require.NoError(t, err)

	color := "azul"
	sz2 := dto.FlexInt(10)
	out, err := uc.Update(context.Background(), creada.ID, dto.UpdateDeliveryRequest{
		Color:      &color,
		Sz2:        &sz2,
		ModifiedBy: "paula",
	})

	require.NoError(t, err)
	assert.Equal(t, "azul", out.Color)
	assert.Equal(t, 10, out.Sz2)
	assert.Equal(t, 3, out.Sz4, "las tallas ausentes no cambian")
	assert.Equal(t, "Taller Norte", out.Owner, "los campos ausentes no cambian")
	assert.Equal(t, "paula", out.ModifiedBy)
}

func TestDeliveryUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	_, err := uc.Update(context.Background(), 77, dto.UpdateDeliveryRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeliverySoftDelete_EsIdempotente(t *testing.T) {
	repo := newFakeDeliveryRepo()
	uc := usecase.NewDeliveryUseCase(repo)

	creada, err := uc.Create(context.Background(), entregaBase("Taller Norte", "g1"))
	require.NoError(t, err)

	primera, err := uc.SoftDelete(context.Background(), creada.ID, "ana")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, primera.Status)
	assert.Equal(t, "ana", primera.ModifiedBy)

	// Repetir sobre un registro ya inactivo vuelve a tener éxito y
	// re-estampa la auditoría con el nuevo autor.
	segunda, err := uc.SoftDelete(context.Background(), creada.ID, "carlos")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, segunda.Status)
	assert.Equal(t, "carlos", segunda.ModifiedBy)
}

func TestDeliverySoftDelete_NoEsBorradoFisico(t *testing.T) {
	repo := newFakeDeliveryRepo()
	uc := usecase.NewDeliveryUseCase(repo)

	creada, err := uc.Create(context.Background(), entregaBase("Taller Norte", "g1"))
	require.NoError(t, err)

	_, err = uc.SoftDelete(context.Background(), creada.ID, "")
	require.NoError(t, err)

	activas, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, activas.Total)

	todas, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, todas.Total, "la fila sigue existiendo con status inactive")
	assert.Equal(t, entity.StatusInactive, todas.Deliveries[0].Status)
}

func TestDeliveryListByGroup_GrupoSinActivas(t *testing.T) {
	repo := newFakeDeliveryRepo()
	uc := usecase.NewDeliveryUseCase(repo)

	creada, err := uc.Create(context.Background(), entregaBase("Taller Norte", "g1"))
	require.NoError(t, err)

	out, err := uc.ListByGroup(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	_, err = uc.SoftDelete(context.Background(), creada.ID, "")
	require.NoError(t, err)

	_, err = uc.ListByGroup(context.Background(), "g1")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un grupo cuyo único registro quedó inactivo se reporta como no encontrado")
}

func TestDeliveryListOnePerGroup_MenorIDPorGrupo(t *testing.T) {
	repo := newFakeDeliveryRepo()
	uc := usecase.NewDeliveryUseCase(repo)

	for _, in := range []dto.CreateDeliveryRequest{
		entregaBase("Taller Norte", "g1"),
		entregaBase("Taller Norte", "g1"),
		entregaBase("Taller Sur", "g2"),
	} {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	out, err := uc.ListOnePerGroup(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, int64(1), out.Deliveries[0].ID, "desempate por menor id dentro del grupo")
	assert.Equal(t, "g2", out.Deliveries[1].IDGroup)
}
