package services

import (
	"time"

	"github.com/NelushGayashan/demo-api/models"
)

// ProductStore is the persistence contract the product service needs.
type ProductStore interface {
	Create(product *models.Product) error
	FindByID(id uint) (*models.Product, error)
	FindBySKU(sku string) (*models.Product, error)
	FindAll() ([]models.Product, error)
	ExistsByID(id uint) (bool, error)
	Update(product *models.Product) error
	DeleteByID(id uint) error
	DistinctCategories() ([]string, error)
	DistinctBrands() ([]string, error)
}

// ProductFilter holds the optional listing criteria. Empty strings and nil
// pointers mean "no filter".
type ProductFilter struct {
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

// GetProducts fetches all products and narrows them in memory, preserving
// store order.
func (s *ProductService) GetProducts(filter ProductFilter) ([]models.Product, error) {
	products, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && !equalsFold(p.Category, filter.Category) {
			continue
		}
		if filter.Brand != "" && !equalsFold(p.Brand, filter.Brand) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !containsFold(p.Name, filter.Search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.store.FindByID(id)
}

func (s *ProductService) GetProductBySKU(sku string) (*models.Product, error) {
	return s.store.FindBySKU(sku)
}

func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.GetProducts(ProductFilter{Category: category})
}

func (s *ProductService) GetProductsByBrand(brand string) ([]models.Product, error) {
	return s.GetProducts(ProductFilter{Brand: brand})
}

// GetLowStockProducts returns products whose stock is strictly below the
// threshold. Products without a stock value are excluded.
func (s *ProductService) GetLowStockProducts(threshold int) ([]models.Product, error) {
	products, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}
	low := make([]models.Product, 0)
	for _, p := range products {
		if p.Stock != nil && *p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

// CreateProduct discards any client-supplied id and stamps both timestamps.
func (s *ProductService) CreateProduct(product *models.Product) (*models.Product, error) {
	product.ID = 0
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := s.store.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct overwrites every mutable field of the stored product with the
// payload's values, nulls included. Identity and createdAt are carried over.
func (s *ProductService) UpdateProduct(id uint, payload models.Product) (*models.Product, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = payload.Name
	existing.Description = payload.Description
	existing.Price = payload.Price
	existing.Category = payload.Category
	existing.Stock = payload.Stock
	existing.SKU = payload.SKU
	existing.Brand = payload.Brand
	existing.UpdatedAt = time.Now()

	if err := s.store.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProductService) DeleteProduct(id uint) (bool, error) {
	exists, err := s.store.ExistsByID(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := s.store.DeleteByID(id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ProductService) GetAllCategories() ([]string, error) {
	return s.store.DistinctCategories()
}

func (s *ProductService) GetAllBrands() ([]string, error) {
	return s.store.DistinctBrands()
}
