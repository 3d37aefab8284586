package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdu/inventory-api/internal/application/dto"
	"github.com/bdu/inventory-api/internal/application/inventory"
	"github.com/bdu/inventory-api/internal/domain"
	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/infrastructure/memory"
)

// setup crea el motor sobre el almacén en memoria y un producto con el stock
// inicial dado (aplicado vía movimiento IN, el único camino que muta stock).
func setup(t *testing.T, initialStock int64) (*memory.Store, *inventory.ApplyMoveUseCase, int64) {
	t.Helper()
	store := memory.NewStore()
	uc := inventory.NewApplyMoveUseCase(store.TxRunner())

	product := &entity.Product{SKU: "A1", Name: "Widget", UnitPrice: decimal.NewFromFloat(9.99)}
	require.NoError(t, store.Products().Create(product))

	if initialStock > 0 {
		_, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
			ProductID: product.ID,
			Quantity:  initialStock,
			MoveType:  entity.MoveTypeIN,
		})
		require.NoError(t, err)
	}
	return store, uc, product.ID
}

func stockOf(t *testing.T, store *memory.Store, productID int64) int64 {
	t.Helper()
	p, err := store.Products().GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func ledgerLen(t *testing.T, store *memory.Store, productID int64) int {
	t.Helper()
	moves, err := store.Moves().ListByProduct(productID)
	require.NoError(t, err)
	return len(moves)
}

func TestApplyMove_INSumaStock(t *testing.T) {
	store, uc, id := setup(t, 0)

	out, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 5, MoveType: entity.MoveTypeIN,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, id, out.ProductID)
	assert.Equal(t, int64(5), out.Quantity)
	assert.Equal(t, entity.MoveTypeIN, out.MoveType)
	assert.NotZero(t, out.ID)
	assert.False(t, out.CreatedAt.IsZero())

	assert.Equal(t, int64(5), stockOf(t, store, id))
	assert.Equal(t, 1, ledgerLen(t, store, id))
}

func TestApplyMove_OUTRestaStock(t *testing.T) {
	store, uc, id := setup(t, 5)

	out, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 3, MoveType: entity.MoveTypeOUT,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MoveTypeOUT, out.MoveType)
	assert.Equal(t, int64(2), stockOf(t, store, id))
	assert.Equal(t, 2, ledgerLen(t, store, id))
}

// TestApplyMove_OUTExacto verifica que una salida por el stock completo deja 0
// y que la siguiente salida de 1 se rechaza con stock insuficiente sin mutar nada.
func TestApplyMove_OUTExacto(t *testing.T) {
	store, uc, id := setup(t, 7)

	_, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 7, MoveType: entity.MoveTypeOUT,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stockOf(t, store, id))

	out, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 1, MoveType: entity.MoveTypeOUT,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, out)
	assert.Equal(t, int64(0), stockOf(t, store, id))
	assert.Equal(t, 2, ledgerLen(t, store, id))
}

func TestApplyMove_CantidadInvalida(t *testing.T) {
	store, uc, id := setup(t, 5)

	for _, qty := range []int64{0, -3} {
		for _, moveType := range []string{entity.MoveTypeIN, entity.MoveTypeOUT} {
			_, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
				ProductID: id, Quantity: qty, MoveType: moveType,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		}
	}
	assert.Equal(t, int64(5), stockOf(t, store, id))
	assert.Equal(t, 1, ledgerLen(t, store, id))
}

// TestApplyMove_TipoInvalido verifica que el tipo se valida antes que la
// cantidad y la suficiencia: tipo malo + cantidad mala → INVALID_MOVE_TYPE.
func TestApplyMove_TipoInvalido(t *testing.T) {
	store, uc, id := setup(t, 5)

	for _, moveType := range []string{"", "in", "TRANSFER", "SALIDA"} {
		_, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
			ProductID: id, Quantity: -1, MoveType: moveType,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidMoveType)
	}
	assert.Equal(t, int64(5), stockOf(t, store, id))
}

// TestApplyMove_ProductoInexistente verifica que la existencia se valida
// primero: producto inexistente gana aunque tipo y cantidad también sean malos.
func TestApplyMove_ProductoInexistente(t *testing.T) {
	store, uc, _ := setup(t, 5)

	_, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: 9999, Quantity: -1, MoveType: "XX",
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	moves, err := store.Moves().List()
	require.NoError(t, err)
	assert.Len(t, moves, 1) // solo el IN inicial
}

// TestApplyMove_Escenario recorre el escenario de referencia: crear producto,
// IN 5, OUT 3, OUT 10 rechazado; stock y libro exactos en cada paso.
func TestApplyMove_Escenario(t *testing.T) {
	store, uc, id := setup(t, 0)

	_, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 5, MoveType: entity.MoveTypeIN,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), stockOf(t, store, id))
	assert.Equal(t, 1, ledgerLen(t, store, id))

	_, err = uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 3, MoveType: entity.MoveTypeOUT,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stockOf(t, store, id))
	assert.Equal(t, 2, ledgerLen(t, store, id))

	_, err = uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 10, MoveType: entity.MoveTypeOUT,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), stockOf(t, store, id))
	assert.Equal(t, 2, ledgerLen(t, store, id))
}

// TestApplyMove_LibroReconstruyeStock verifica la propiedad de ida y vuelta:
// la suma de cantidades con signo del libro siempre iguala el stock actual.
func TestApplyMove_LibroReconstruyeStock(t *testing.T) {
	store, uc, id := setup(t, 0)

	steps := []struct {
		qty      int64
		moveType string
	}{
		{10, entity.MoveTypeIN},
		{4, entity.MoveTypeOUT},
		{7, entity.MoveTypeIN},
		{13, entity.MoveTypeOUT},
		{1, entity.MoveTypeIN},
	}
	for _, s := range steps {
		_, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
			ProductID: id, Quantity: s.qty, MoveType: s.moveType,
		})
		require.NoError(t, err)
	}

	moves, err := store.Moves().ListByProduct(id)
	require.NoError(t, err)
	var sum int64
	for _, m := range moves {
		sum += m.SignedQuantity()
	}
	assert.Equal(t, stockOf(t, store, id), sum)
	assert.Equal(t, int64(1), sum) // 10-4+7-13+1
}

// TestApplyMove_SalidasConcurrentes lanza N salidas concurrentes de 1 contra
// stock N: todas deben aplicarse serializadas y el stock final es 0 con
// exactamente N asientos (más el IN inicial).
func TestApplyMove_SalidasConcurrentes(t *testing.T) {
	const n = 50
	store, uc, id := setup(t, n)

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
				ProductID: id, Quantity: 1, MoveType: entity.MoveTypeOUT,
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "salida %d", i)
	}
	assert.Equal(t, int64(0), stockOf(t, store, id))
	assert.Equal(t, n+1, ledgerLen(t, store, id))
}

// TestApplyMove_SalidasConcurrentesExceso lanza N+1 salidas contra stock N:
// exactamente una debe rechazarse con stock insuficiente (cualquiera de ellas).
func TestApplyMove_SalidasConcurrentesExceso(t *testing.T) {
	const n = 50
	store, uc, id := setup(t, n)

	var wg sync.WaitGroup
	errs := make([]error, n+1)
	for i := 0; i < n+1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
				ProductID: id, Quantity: 1, MoveType: entity.MoveTypeOUT,
			})
		}(i)
	}
	wg.Wait()

	rejected := 0
	for _, err := range errs {
		if err != nil {
			rejected++
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, rejected)
	assert.Equal(t, int64(0), stockOf(t, store, id))
	assert.Equal(t, n+1, ledgerLen(t, store, id))
}

// TestApplyMove_NotaOpcional verifica que la nota viaja al asiento tal cual.
func TestApplyMove_NotaOpcional(t *testing.T) {
	store, uc, id := setup(t, 0)

	note := "reposición semanal"
	out, err := uc.ApplyMove(context.Background(), dto.CreateStockMoveRequest{
		ProductID: id, Quantity: 2, MoveType: entity.MoveTypeIN, Note: &note,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Note)
	assert.Equal(t, note, *out.Note)

	moves, err := store.Moves().ListByProduct(id)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	require.NotNil(t, moves[0].Note)
	assert.Equal(t, note, *moves[0].Note)
}
