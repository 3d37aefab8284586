package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bdu/inventory-api/internal/application/inventory"
	"github.com/bdu/inventory-api/internal/domain"
	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/domain/repository"
)

// Store almacén en memoria que implementa los mismos puertos que el adaptador
// PostgreSQL. El mutex del Store hace las veces de bloqueo de fila: todo el
// acceso se canaliza por un solo proceso, así que serializar lectura-
// modificación-escritura aquí cumple el mismo contrato que SELECT FOR UPDATE.
// Lo usan las suites de tests del motor y de los handlers.
type Store struct {
	mu sync.Mutex

	products  map[int64]*entity.Product
	suppliers map[int64]*entity.Supplier
	moves     []*entity.StockMove

	nextProductID  int64
	nextSupplierID int64
	nextMoveID     int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[int64]*entity.Product),
		suppliers: make(map[int64]*entity.Supplier),
	}
}

// Products devuelve el repositorio de productos (cada operación es atómica).
func (s *Store) Products() repository.ProductRepository {
	return &productRepo{s: s, locked: false}
}

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() repository.SupplierRepository {
	return &supplierRepo{s: s}
}

// Moves devuelve el repositorio del libro de movimientos.
func (s *Store) Moves() repository.StockMoveRepository {
	return &moveRepo{s: s, locked: false}
}

// TxRunner devuelve un runner transaccional sobre el almacén.
func (s *Store) TxRunner() inventory.TxRunner {
	return &txRunner{s: s}
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

var _ inventory.TxRunner = (*txRunner)(nil)

type txRunner struct {
	s *Store
}

// Run toma el mutex del Store durante toda la transacción y pasa repos que no
// vuelven a bloquear. Si fn falla se restaura el snapshot previo: mutación de
// stock y asiento del libro se confirman juntos o ninguno.
func (r *txRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	moveRepo repository.StockMoveRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := r.s.snapshotLocked()
	err := fn(&productRepo{s: r.s, locked: true}, &moveRepo{s: r.s, locked: true})
	if err != nil {
		r.s.restoreLocked(snapshot)
		return err
	}
	return nil
}

type storeSnapshot struct {
	products       map[int64]*entity.Product
	moves          []*entity.StockMove
	nextProductID  int64
	nextMoveID     int64
}

func (s *Store) snapshotLocked() storeSnapshot {
	products := make(map[int64]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		products[id] = &cp
	}
	moves := make([]*entity.StockMove, len(s.moves))
	copy(moves, s.moves)
	return storeSnapshot{
		products:      products,
		moves:         moves,
		nextProductID: s.nextProductID,
		nextMoveID:    s.nextMoveID,
	}
}

func (s *Store) restoreLocked(snap storeSnapshot) {
	s.products = snap.products
	s.moves = snap.moves
	s.nextProductID = snap.nextProductID
	s.nextMoveID = snap.nextMoveID
}

// ── Productos ────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*productRepo)(nil)

type productRepo struct {
	s *Store
	// locked indica que el mutex ya lo sostiene el txRunner.
	locked bool
}

func (r *productRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *productRepo) Create(product *entity.Product) error {
	defer r.lock()()
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.nextProductID++
	product.ID = r.s.nextProductID
	product.CreatedAt = time.Now()
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id int64) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// GetForUpdate lee el valor autoritativo bajo el mutex del Store; dentro de
// una tx el mutex ya está tomado, así que lectura y "bloqueo" son una sola
// operación igual que en el adaptador PostgreSQL.
func (r *productRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) Update(product *entity.Product) (int64, error) {
	defer r.lock()()
	existing, ok := r.s.products[product.ID]
	if !ok {
		return 0, nil
	}
	for _, p := range r.s.products {
		if p.ID != product.ID && p.SKU == product.SKU {
			return 0, domain.ErrDuplicate
		}
	}
	existing.SKU = product.SKU
	existing.Name = product.Name
	existing.UnitPrice = product.UnitPrice
	return 1, nil
}

func (r *productRepo) UpdateStock(id int64, stock int64) error {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = stock
	return nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	defer r.lock()()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *productRepo) Delete(id int64) (int64, error) {
	defer r.lock()()
	if _, ok := r.s.products[id]; !ok {
		return 0, nil
	}
	delete(r.s.products, id)
	// Cascada: el libro no conserva asientos de productos eliminados.
	kept := r.s.moves[:0]
	for _, m := range r.s.moves {
		if m.ProductID != id {
			kept = append(kept, m)
		}
	}
	r.s.moves = kept
	return 1, nil
}

// ── Proveedores ──────────────────────────────────────────────────────────────

var _ repository.SupplierRepository = (*supplierRepo)(nil)

type supplierRepo struct {
	s *Store
}

func (r *supplierRepo) Create(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextSupplierID++
	supplier.ID = r.s.nextSupplierID
	supplier.CreatedAt = time.Now()
	cp := *supplier
	r.s.suppliers[supplier.ID] = &cp
	return nil
}

func (r *supplierRepo) List() ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, s := range r.s.suppliers {
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *supplierRepo) Update(supplier *entity.Supplier) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.suppliers[supplier.ID]
	if !ok {
		return 0, nil
	}
	existing.Name = supplier.Name
	existing.Email = supplier.Email
	existing.Phone = supplier.Phone
	return 1, nil
}

func (r *supplierRepo) Delete(id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return 0, nil
	}
	delete(r.s.suppliers, id)
	return 1, nil
}

// ── Libro de movimientos ─────────────────────────────────────────────────────

var _ repository.StockMoveRepository = (*moveRepo)(nil)

type moveRepo struct {
	s      *Store
	locked bool
}

func (r *moveRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *moveRepo) Create(move *entity.StockMove) error {
	defer r.lock()()
	r.s.nextMoveID++
	move.ID = r.s.nextMoveID
	move.CreatedAt = time.Now()
	cp := *move
	r.s.moves = append(r.s.moves, &cp)
	return nil
}

func (r *moveRepo) List() ([]*entity.StockMove, error) {
	defer r.lock()()
	list := make([]*entity.StockMove, 0, len(r.s.moves))
	for i := len(r.s.moves) - 1; i >= 0; i-- {
		cp := *r.s.moves[i]
		list = append(list, &cp)
	}
	return list, nil
}

func (r *moveRepo) ListByProduct(productID int64) ([]*entity.StockMove, error) {
	defer r.lock()()
	var list []*entity.StockMove
	for i := len(r.s.moves) - 1; i >= 0; i-- {
		if r.s.moves[i].ProductID == productID {
			cp := *r.s.moves[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}
