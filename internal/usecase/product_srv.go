package usecase

import (
	"context"
	"errors"
	"strings"

	"beton-feedback/internal/audit"
	"beton-feedback/internal/catalog"
	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/dto/response"
	"beton-feedback/internal/notify"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context) *response.ProductsResponse
	AddProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductsResponse, error)
	RenameProduct(ctx context.Context, req *request.RenameProductRequest) (*response.ProductsResponse, error)
	DeleteProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductsResponse, error)
}

type productService struct {
	state *State
	log   *zap.Logger
}

func NewProductService(state *State, log *zap.Logger) ProductService {
	return &productService{
		state: state,
		log:   log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context) *response.ProductsResponse {
	return &response.ProductsResponse{Success: true, Products: s.state.Products.List()}
}

func (s *productService) AddProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductsResponse, error) {
	name := strings.TrimSpace(req.Name)
	products, err := s.state.Products.Add(name)
	if err != nil {
		return nil, productError(err)
	}

	s.changed(ctx, audit.ActionAddProduct, map[string]any{"name": name}, products)
	return &response.ProductsResponse{Success: true, Products: products}, nil
}

func (s *productService) RenameProduct(ctx context.Context, req *request.RenameProductRequest) (*response.ProductsResponse, error) {
	oldName, newName := strings.TrimSpace(req.OldName), strings.TrimSpace(req.NewName)
	products, err := s.state.Products.Rename(oldName, newName)
	if err != nil {
		return nil, productError(err)
	}

	s.changed(ctx, audit.ActionUpdateProduct, map[string]any{
		"oldName": oldName,
		"newName": newName,
	}, products)
	return &response.ProductsResponse{Success: true, Products: products}, nil
}

func (s *productService) DeleteProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductsResponse, error) {
	name := strings.TrimSpace(req.Name)
	products, err := s.state.Products.Remove(name)
	if err != nil {
		return nil, productError(err)
	}

	s.changed(ctx, audit.ActionDeleteProduct, map[string]any{"name": name}, products)
	return &response.ProductsResponse{Success: true, Products: products}, nil
}

func (s *productService) changed(ctx context.Context, action string, details map[string]any, products []string) {
	recordAction(ctx, s.state.Audit, s.log, action, details)
	s.state.Events.Publish(notify.EventProductsUpdated, map[string]any{"products": products})
	s.log.Info("Product catalog changed", zap.String("action", action), zap.Int("count", len(products)))
}

func productError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrProductExists):
		return utils.NewConflictError("Product already exists")
	case errors.Is(err, catalog.ErrProductNotFound):
		return utils.NewNotFoundError("Product not found")
	case errors.Is(err, catalog.ErrEmptyProduct):
		return utils.NewValidationError("Product name is required", nil)
	default:
		return utils.NewInternalError("Failed to update products", err)
	}
}
