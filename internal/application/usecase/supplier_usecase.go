package usecase

import (
	"github.com/bdu/inventory-api/internal/application/dto"
	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores (sin reglas de negocio).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List lista proveedores, más recientes primero.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Create crea un nuevo proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update reemplaza name, email y phone. Devuelve filas afectadas:
// 0 significa que el proveedor no existe.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest) (int64, error) {
	supplier := &entity.Supplier{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	return uc.repo.Update(supplier)
}

// Delete elimina un proveedor por ID. Devuelve filas afectadas.
func (uc *SupplierUseCase) Delete(id int64) (int64, error) {
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}
