package inventory

import (
	"context"

	"github.com/bdu/inventory-api/internal/application/dto"
	"github.com/bdu/inventory-api/internal/domain"
	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/domain/repository"
)

// ApplyMoveUseCase aplica un movimiento de stock (IN u OUT) de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único camino que muta Product.Stock e inserta en stock_moves.
type ApplyMoveUseCase struct {
	txRunner TxRunner
}

// NewApplyMoveUseCase construye el motor de movimientos.
func NewApplyMoveUseCase(txRunner TxRunner) *ApplyMoveUseCase {
	return &ApplyMoveUseCase{txRunner: txRunner}
}

// ApplyMove valida y aplica un movimiento contra la fila bloqueada del
// producto y registra el asiento en el libro, todo en una transacción.
//
// Orden de validación fijo: existencia → tipo → cantidad → suficiencia;
// la primera falla corta el resto y decide el motivo que ve el caller.
// Las validaciones de existencia y suficiencia leen el valor autoritativo
// bajo el bloqueo de fila, nunca un stock cacheado.
//
// En un rechazo no ocurre ninguna mutación y no se inserta fila alguna;
// el caller no debe reintentar automáticamente (son fallas semánticas).
func (uc *ApplyMoveUseCase) ApplyMove(ctx context.Context, in dto.CreateStockMoveRequest) (*dto.StockMoveResponse, error) {
	var created *entity.StockMove

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error {
		// Bloquea la fila del producto; movers concurrentes sobre el mismo
		// producto se serializan aquí, otros productos no se bloquean.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if in.MoveType != entity.MoveTypeIN && in.MoveType != entity.MoveTypeOUT {
			return domain.ErrInvalidMoveType
		}
		if in.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}

		newStock := product.Stock + in.Quantity
		if in.MoveType == entity.MoveTypeOUT {
			if product.Stock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock = product.Stock - in.Quantity
		}

		// Exactamente una mutación (stock) y una inserción (asiento),
		// en la misma transacción.
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		move := &entity.StockMove{
			ProductID: product.ID,
			Quantity:  in.Quantity,
			MoveType:  in.MoveType,
			Note:      in.Note,
		}
		if err := moveRepo.Create(move); err != nil {
			return err
		}
		created = move
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.StockMoveResponse{
		ID:        created.ID,
		ProductID: created.ProductID,
		Quantity:  created.Quantity,
		MoveType:  created.MoveType,
		Note:      created.Note,
		CreatedAt: created.CreatedAt,
	}, nil
}
