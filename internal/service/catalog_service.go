package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kronos/internal/cache"
	"kronos/internal/errors"
	"kronos/internal/model"
	"kronos/internal/repository"
	"kronos/internal/storage"
)

const (
	productListCacheKey = "products:list"
	productListCacheTTL = time.Minute
)

// CreateProductInput is the validated payload for product creation.
// Optional fields stay nil and are stored as NULL.
type CreateProductInput struct {
	Name           string
	Brand          string
	Model          *string
	Description    *string
	Price          *decimal.Decimal
	Stock          *int
	MovementType   *string
	CaseMaterial   *string
	StrapMaterial  *string
	CaseDiameter   *decimal.Decimal
	WaterResistant *string
	Image          *string
}

// CatalogService exposes product listing, creation and image ingestion.
// Authentication and the admin gate run in middleware before any of the
// mutating operations are reached.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error)
	UploadImage(ctx context.Context, filename, contentType string, file io.Reader) (string, error)
	SeedProducts(ctx context.Context, inputs []CreateProductInput) (int, error)
}

type catalogService struct {
	products repository.ProductRepository
	objects  storage.ObjectStore
	cache    *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(products repository.ProductRepository, objects storage.ObjectStore, cache *cache.Client) CatalogService {
	return &catalogService{
		products: products,
		objects:  objects,
		cache:    cache,
	}
}

// ListProducts returns all products newest first, serving from the Redis
// cache when possible. Repository failures surface as ErrRepository; no
// partial results.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, productListCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRepository, err)
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, productListCacheKey, payload, productListCacheTTL)
	}

	return products, nil
}

// CreateProduct validates required fields and persists a new product.
// The returned record carries the server-assigned ID and timestamp.
func (s *catalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Brand) == "" {
		missing = append(missing, "brand")
	}
	if input.Price == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, errors.NewValidationError(missing...)
	}

	if input.Price.IsNegative() {
		return nil, errors.NewValidationError("price")
	}

	stock := 0
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, errors.NewValidationError("stock")
		}
		stock = *input.Stock
	}

	product := &model.Product{
		Name:           strings.TrimSpace(input.Name),
		Brand:          strings.TrimSpace(input.Brand),
		Model:          input.Model,
		Description:    input.Description,
		Price:          *input.Price,
		Stock:          stock,
		MovementType:   input.MovementType,
		CaseMaterial:   input.CaseMaterial,
		StrapMaterial:  input.StrapMaterial,
		CaseDiameter:   input.CaseDiameter,
		WaterResistant: input.WaterResistant,
		Image:          input.Image,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRepository, err)
	}

	// Invalidate the list cache so the new product shows up immediately
	_ = s.cache.Delete(ctx, productListCacheKey)

	return product, nil
}

// UploadImage stores the file under a collision-resistant generated name and
// returns its public URL. No product record is created here; the caller
// passes the URL into a later CreateProduct call. An upload followed by a
// failed create leaves the object orphaned.
func (s *catalogService) UploadImage(ctx context.Context, filename, contentType string, file io.Reader) (string, error) {
	if file == nil {
		return "", errors.NewValidationError("image")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}

	path := fmt.Sprintf("products/%d_%s.%s", time.Now().UnixMilli(), randomToken(), ext)

	if err := s.objects.Put(ctx, path, file, contentType); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	return s.objects.PublicURL(path), nil
}

// SeedProducts inserts demo catalog entries through the regular create path
// and returns how many were created. Used by the seed command and the
// admin-gated seed endpoint.
func (s *catalogService) SeedProducts(ctx context.Context, inputs []CreateProductInput) (int, error) {
	count := 0
	for _, input := range inputs {
		if _, err := s.CreateProduct(ctx, input); err != nil {
			return count, fmt.Errorf("seed product %q: %w", input.Name, err)
		}
		count++
	}
	return count, nil
}

func randomToken() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to time
		return fmt.Sprintf("%08x", time.Now().UnixNano()&0xffffffff)
	}
	return hex.EncodeToString(b[:])
}
