package usecase

import (
	"github.com/bdu/inventory-api/internal/application/dto"
	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/domain/repository"
)

// StockMoveUseCase consultas sobre el libro de movimientos. La creación de
// movimientos pasa por el motor (inventory.ApplyMoveUseCase), nunca por aquí.
type StockMoveUseCase struct {
	repo repository.StockMoveRepository
}

// NewStockMoveUseCase construye el caso de uso.
func NewStockMoveUseCase(repo repository.StockMoveRepository) *StockMoveUseCase {
	return &StockMoveUseCase{repo: repo}
}

// List lista movimientos, más recientes primero. Si productID no es nil,
// filtra por producto.
func (uc *StockMoveUseCase) List(productID *int64) ([]dto.StockMoveResponse, error) {
	var (
		moves []*entity.StockMove
		err   error
	)
	if productID != nil {
		moves, err = uc.repo.ListByProduct(*productID)
	} else {
		moves, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, *toStockMoveResponse(m))
	}
	return out, nil
}

// toStockMoveResponse convierte la entidad al DTO de salida.
func toStockMoveResponse(m *entity.StockMove) *dto.StockMoveResponse {
	return &dto.StockMoveResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		MoveType:  m.MoveType,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
