package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bdu/inventory-api/internal/application/dto"
	"github.com/bdu/inventory-api/internal/application/inventory"
	"github.com/bdu/inventory-api/internal/application/usecase"
	"github.com/bdu/inventory-api/internal/domain"
)

// StockMoveHandler maneja las peticiones HTTP del libro de movimientos.
// La creación invoca el motor; el listado es consulta pura.
type StockMoveHandler struct {
	apply *inventory.ApplyMoveUseCase
	query *usecase.StockMoveUseCase
}

// NewStockMoveHandler construye el handler.
func NewStockMoveHandler(apply *inventory.ApplyMoveUseCase, query *usecase.StockMoveUseCase) *StockMoveHandler {
	return &StockMoveHandler{apply: apply, query: query}
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         stock_moves
// @Produce      json
// @Param        product_id  query  int  false  "Filtrar por producto"
// @Success      200  {array}  dto.StockMoveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock_moves [get]
func (h *StockMoveHandler) List(c *fiber.Ctx) error {
	var productID *int64
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "product_id inválido"})
		}
		productID = &id
	}
	out, err := h.query.List(productID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Aplicar movimiento de stock (IN/OUT)
// @Description  Valida y aplica el movimiento contra la fila bloqueada del
//
//	producto y registra el asiento, todo en una transacción. Un rechazo
//	no muta nada y devuelve un código de motivo estable.
//
// @Tags         stock_moves
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockMoveRequest  true  "product_id, quantity, move_type, note?"
// @Success      201   {object}  dto.StockMoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock_moves [post]
func (h *StockMoveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.apply.ApplyMove(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrInvalidMoveType:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVE_TYPE", Message: "move_type debe ser IN u OUT"})
		case domain.ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "quantity debe ser > 0"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
