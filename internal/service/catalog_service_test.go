package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kronos/internal/cache"
	"kronos/internal/errors"
	"kronos/internal/model"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockObjectStore is a mock implementation of storage.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, path string, r io.Reader, contentType string) error {
	args := m.Called(ctx, path, r, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) PublicURL(path string) string {
	return "http://localhost:5000/storage/" + path
}

func decPtr(s string) *decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

// assignInsertFields mimics the repository assigning ID and timestamp on insert.
func assignInsertFields(repo *MockProductRepository) {
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*model.Product)
			p.ID = uuid.New()
			p.CreatedAt = time.Now()
		}).Return(nil)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	tests := []struct {
		name           string
		input          CreateProductInput
		setupMock      func(*MockProductRepository)
		wantErrFields  []string
		wantRepository bool
	}{
		{
			name: "successful create with required fields only",
			input: CreateProductInput{
				Name:  "Submariner",
				Brand: "Rolex",
				Price: decPtr("10900.00"),
			},
			setupMock: assignInsertFields,
		},
		{
			name: "missing name",
			input: CreateProductInput{
				Brand: "Rolex",
				Price: decPtr("10900.00"),
			},
			setupMock:     func(*MockProductRepository) {},
			wantErrFields: []string{"name"},
		},
		{
			name: "missing name brand and price",
			input: CreateProductInput{
				Name: "   ",
			},
			setupMock:     func(*MockProductRepository) {},
			wantErrFields: []string{"name", "brand", "price"},
		},
		{
			name: "negative price",
			input: CreateProductInput{
				Name:  "Submariner",
				Brand: "Rolex",
				Price: decPtr("-1"),
			},
			setupMock:     func(*MockProductRepository) {},
			wantErrFields: []string{"price"},
		},
		{
			name: "negative stock",
			input: CreateProductInput{
				Name:  "Submariner",
				Brand: "Rolex",
				Price: decPtr("10900.00"),
				Stock: intPtr(-3),
			},
			setupMock:     func(*MockProductRepository) {},
			wantErrFields: []string{"stock"},
		},
		{
			name: "repository insert failure",
			input: CreateProductInput{
				Name:  "Submariner",
				Brand: "Rolex",
				Price: decPtr("10900.00"),
			},
			setupMock: func(m *MockProductRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).
					Return(fmt.Errorf("connection refused"))
			},
			wantRepository: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			tt.setupMock(mockRepo)

			svc := NewCatalogService(mockRepo, new(MockObjectStore), &cache.Client{})
			product, err := svc.CreateProduct(context.Background(), tt.input)

			switch {
			case len(tt.wantErrFields) > 0:
				assert.Nil(t, product)
				var vErr *errors.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantErrFields, vErr.Fields)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			case tt.wantRepository:
				assert.Nil(t, product)
				assert.ErrorIs(t, err, errors.ErrRepository)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, product)
				assert.NotEqual(t, uuid.Nil, product.ID)
				assert.False(t, product.CreatedAt.IsZero())
				assert.Equal(t, 0, product.Stock) // defaults when absent
				assert.Nil(t, product.Model)      // optional fields stay NULL
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_CreateProduct_AssignsDistinctIDs(t *testing.T) {
	mockRepo := new(MockProductRepository)
	assignInsertFields(mockRepo)
	svc := NewCatalogService(mockRepo, new(MockObjectStore), &cache.Client{})

	input := CreateProductInput{Name: "Speedmaster", Brand: "Omega", Price: decPtr("7300")}
	first, err := svc.CreateProduct(context.Background(), input)
	assert.NoError(t, err)
	second, err := svc.CreateProduct(context.Background(), input)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCatalogService_ListProducts(t *testing.T) {
	newest := model.Product{ID: uuid.New(), Name: "B", Brand: "Omega", CreatedAt: time.Now()}
	oldest := model.Product{ID: uuid.New(), Name: "A", Brand: "Rolex", CreatedAt: time.Now().Add(-time.Hour)}

	t.Run("returns newest first", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("ListAll", mock.Anything).Return([]model.Product{newest, oldest}, nil)

		svc := NewCatalogService(mockRepo, new(MockObjectStore), &cache.Client{})
		products, err := svc.ListProducts(context.Background())

		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, "B", products[0].Name)
		assert.Equal(t, "A", products[1].Name)
	})

	t.Run("empty catalog", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("ListAll", mock.Anything).Return([]model.Product{}, nil)

		svc := NewCatalogService(mockRepo, new(MockObjectStore), &cache.Client{})
		products, err := svc.ListProducts(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("repository failure surfaces, no partial results", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("ListAll", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

		svc := NewCatalogService(mockRepo, new(MockObjectStore), &cache.Client{})
		products, err := svc.ListProducts(context.Background())

		assert.ErrorIs(t, err, errors.ErrRepository)
		assert.Nil(t, products)
	})
}

var uploadPathPattern = regexp.MustCompile(`^products/\d+_[0-9a-f]{8}\.jpg$`)

func TestCatalogService_UploadImage(t *testing.T) {
	t.Run("stores under generated name and returns public URL", func(t *testing.T) {
		mockStore := new(MockObjectStore)
		var gotPath string
		mockStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
			Run(func(args mock.Arguments) { gotPath = args.String(1) }).Return(nil)

		svc := NewCatalogService(new(MockProductRepository), mockStore, &cache.Client{})
		url, err := svc.UploadImage(context.Background(), "watch.jpg", "image/jpeg", bytes.NewReader([]byte("jpegdata")))

		assert.NoError(t, err)
		assert.Regexp(t, uploadPathPattern, gotPath)
		assert.Equal(t, "http://localhost:5000/storage/"+gotPath, url)
	})

	t.Run("sequential uploads of the same filename never collide", func(t *testing.T) {
		mockStore := new(MockObjectStore)
		var paths []string
		mockStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
			Run(func(args mock.Arguments) { paths = append(paths, args.String(1)) }).Return(nil)

		svc := NewCatalogService(new(MockProductRepository), mockStore, &cache.Client{})
		for i := 0; i < 2; i++ {
			_, err := svc.UploadImage(context.Background(), "watch.jpg", "image/jpeg", bytes.NewReader([]byte("jpegdata")))
			assert.NoError(t, err)
		}

		assert.Len(t, paths, 2)
		assert.NotEqual(t, paths[0], paths[1])
	})

	t.Run("storage failure", func(t *testing.T) {
		mockStore := new(MockObjectStore)
		mockStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(fmt.Errorf("bucket unavailable"))

		svc := NewCatalogService(new(MockProductRepository), mockStore, &cache.Client{})
		url, err := svc.UploadImage(context.Background(), "watch.jpg", "image/jpeg", bytes.NewReader(nil))

		assert.ErrorIs(t, err, errors.ErrStorage)
		assert.Empty(t, url)
	})

	t.Run("missing extension falls back to bin", func(t *testing.T) {
		mockStore := new(MockObjectStore)
		var gotPath string
		mockStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { gotPath = args.String(1) }).Return(nil)

		svc := NewCatalogService(new(MockProductRepository), mockStore, &cache.Client{})
		_, err := svc.UploadImage(context.Background(), "watch", "application/octet-stream", bytes.NewReader([]byte("data")))

		assert.NoError(t, err)
		assert.Regexp(t, `\.bin$`, gotPath)
	})
}

// Upload and create are independent calls with no compensation step: a
// successful upload followed by a failed create leaves the object behind.
// That orphan is an accepted design gap, asserted here so it stays visible.
func TestCatalogService_UploadThenFailedCreateLeavesOrphan(t *testing.T) {
	mockStore := new(MockObjectStore)
	mockStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mockRepo := new(MockProductRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("insert failed"))

	svc := NewCatalogService(mockRepo, mockStore, &cache.Client{})

	url, err := svc.UploadImage(context.Background(), "watch.jpg", "image/jpeg", bytes.NewReader([]byte("jpegdata")))
	assert.NoError(t, err)
	assert.NotEmpty(t, url)

	_, err = svc.CreateProduct(context.Background(), CreateProductInput{
		Name:  "Submariner",
		Brand: "Rolex",
		Price: decPtr("10900"),
		Image: &url,
	})
	assert.ErrorIs(t, err, errors.ErrRepository)

	// the stored object is never cleaned up
	mockStore.AssertNumberOfCalls(t, "Put", 1)
}
