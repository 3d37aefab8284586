package usecase

import (
	"github.com/bdu/inventory-api/internal/application/dto"
	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Stock se maneja vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos, más recientes primero.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Create crea un nuevo producto con stock 0. SKU duplicado devuelve
// domain.ErrDuplicate (constraint único en el almacenamiento).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		SKU:       in.SKU,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		Stock:     0,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza sku, name y unit_price. Devuelve filas afectadas:
// 0 significa que el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (int64, error) {
	product := &entity.Product{
		ID:        id,
		SKU:       in.SKU,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
	}
	return uc.repo.Update(product)
}

// Delete elimina un producto por ID (sus movimientos caen en cascada).
// Devuelve filas afectadas: 0 significa que el producto no existe.
func (uc *ProductUseCase) Delete(id int64) (int64, error) {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}
