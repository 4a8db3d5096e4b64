package adaptor

import (
	"net/http"

	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/admin/products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.GetProducts(r.Context()))
}

// AddProduct handles POST /api/admin/products
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if !decodeAndValidate(w, r, &req, "Product name is required") {
		return
	}

	resp, err := h.service.AddProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add product")
		return
	}

	utils.ResponseCreated(w, resp)
}

// RenameProduct handles PUT /api/admin/products
func (h *ProductHandler) RenameProduct(w http.ResponseWriter, r *http.Request) {
	var req request.RenameProductRequest
	if !decodeAndValidate(w, r, &req, "oldName and newName are required") {
		return
	}

	resp, err := h.service.RenameProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rename product")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// DeleteProduct handles DELETE /api/admin/products
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if !decodeAndValidate(w, r, &req, "Product name is required") {
		return
	}

	resp, err := h.service.DeleteProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, resp)
}
