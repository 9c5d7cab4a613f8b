package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/repository"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(repository.NewProductRepository(setupTestDB(t)))
}

func seedProducts(t *testing.T, svc *ProductService) []*models.Product {
	t.Helper()
	seed := []*models.Product{
		{Name: "Widget", Price: 9.99, Category: strPtr("Tools"), Brand: strPtr("Acme"), Stock: intPtr(5), SKU: strPtr("WID-001")},
		{Name: "Cordless Drill", Price: 129.99, Category: strPtr("Tools"), Brand: strPtr("Bosch"), Stock: intPtr(25), SKU: strPtr("DRL-001")},
		{Name: "Office Chair", Price: 89.50, Category: strPtr("Furniture"), Brand: strPtr("Acme"), Stock: intPtr(12), SKU: strPtr("CHR-001")},
		{Name: "Mystery Box", Price: 19.99, SKU: strPtr("BOX-001")},
	}
	for _, p := range seed {
		_, err := svc.CreateProduct(p)
		require.NoError(t, err)
	}
	return seed
}

func TestProductService_Create(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.CreateProduct(&models.Product{
		ID:       999, // client-supplied identity must be discarded
		Name:     "Widget",
		Price:    9.99,
		Category: strPtr("Tools"),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := svc.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)
}

func TestProductService_CreateDuplicateSKU(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.CreateProduct(&models.Product{Name: "Widget", Price: 9.99, SKU: strPtr("WID-001")})
	require.NoError(t, err)

	_, err = svc.CreateProduct(&models.Product{Name: "Gadget", Price: 4.99, SKU: strPtr("WID-001")})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestProductService_GetProducts_NoFilter(t *testing.T) {
	svc := newProductService(t)
	seeded := seedProducts(t, svc)

	products, err := svc.GetProducts(ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, len(seeded))

	// store order preserved
	for i, p := range products {
		assert.Equal(t, seeded[i].Name, p.Name)
	}
}

func TestProductService_GetProducts_Filters(t *testing.T) {
	svc := newProductService(t)
	seedProducts(t, svc)

	t.Run("category is case-insensitive", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{Category: "tools"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Widget", products[0].Name)
	})

	t.Run("min price is inclusive", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{MinPrice: floatPtr(89.50)})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("max price is inclusive", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{MaxPrice: floatPtr(89.50)})
		require.NoError(t, err)
		assert.Contains(t, names(products), "Office Chair")

		products, err = svc.GetProducts(ProductFilter{MaxPrice: floatPtr(89.49)})
		require.NoError(t, err)
		assert.NotContains(t, names(products), "Office Chair")
		assert.Equal(t, []string{"Widget", "Mystery Box"}, names(products))
	})

	t.Run("min price excludes cheaper products", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{MinPrice: floatPtr(10)})
		require.NoError(t, err)
		for _, p := range products {
			assert.NotEqual(t, "Widget", p.Name)
		}
	})

	t.Run("search matches name substring", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{Search: "drill"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Cordless Drill", products[0].Name)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		byCategory, err := svc.GetProducts(ProductFilter{Category: "Tools"})
		require.NoError(t, err)
		byBrand, err := svc.GetProducts(ProductFilter{Brand: "Acme"})
		require.NoError(t, err)
		both, err := svc.GetProducts(ProductFilter{Category: "Tools", Brand: "Acme"})
		require.NoError(t, err)

		require.Len(t, both, 1)
		assert.Equal(t, "Widget", both[0].Name)
		// the conjunction is the intersection of the single-criterion lists
		assert.Contains(t, names(byCategory), "Widget")
		assert.Contains(t, names(byBrand), "Widget")
	})

	t.Run("nil category never matches", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{Category: "Tools"})
		require.NoError(t, err)
		assert.NotContains(t, names(products), "Mystery Box")
	})
}

func TestProductService_LowStock(t *testing.T) {
	svc := newProductService(t)
	seedProducts(t, svc)

	// strict less-than: stock 12 is below 13, not below 12
	products, err := svc.GetLowStockProducts(12)
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget"}, names(products))

	products, err = svc.GetLowStockProducts(13)
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget", "Office Chair"}, names(products))

	// nil stock is excluded, not treated as zero
	assert.NotContains(t, names(products), "Mystery Box")
}

func TestProductService_Update(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.CreateProduct(&models.Product{
		Name:     "Widget",
		Price:    9.99,
		Category: strPtr("Tools"),
		Brand:    strPtr("Acme"),
		Stock:    intPtr(5),
	})
	require.NoError(t, err)
	createdAt := created.CreatedAt

	time.Sleep(5 * time.Millisecond)

	updated, err := svc.UpdateProduct(created.ID, models.Product{
		Name:  "Widget Pro",
		Price: 14.99,
		// category, brand and stock omitted: nulls overwrite, this is a
		// total overwrite, not a sparse patch
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Widget Pro", updated.Name)
	assert.Equal(t, 14.99, updated.Price)
	assert.Nil(t, updated.Category)
	assert.Nil(t, updated.Brand)
	assert.Nil(t, updated.Stock)
	assert.True(t, updated.CreatedAt.Equal(createdAt))
	assert.True(t, updated.UpdatedAt.After(createdAt))

	stored, err := svc.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", stored.Name)
	assert.Nil(t, stored.Category)
}

func TestProductService_UpdateDuplicateSKU(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.CreateProduct(&models.Product{Name: "Widget", Price: 9.99, SKU: strPtr("WID-001")})
	require.NoError(t, err)
	second, err := svc.CreateProduct(&models.Product{Name: "Gadget", Price: 4.99, SKU: strPtr("GAD-001")})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(second.ID, models.Product{
		Name:  "Gadget",
		Price: 4.99,
		SKU:   strPtr("WID-001"),
	})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	svc := newProductService(t)
	seedProducts(t, svc)

	before, err := svc.GetProducts(ProductFilter{})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(4242, models.Product{Name: "Ghost", Price: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// no store mutation on a failed update
	after, err := svc.GetProducts(ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProductService_Delete(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.CreateProduct(&models.Product{Name: "Widget", Price: 9.99})
	require.NoError(t, err)

	deleted, err := svc.DeleteProduct(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetProductByID(created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err = svc.DeleteProduct(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProductService_DistinctCategoriesAndBrands(t *testing.T) {
	svc := newProductService(t)
	seedProducts(t, svc)

	categories, err := svc.GetAllCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Furniture", "Tools"}, categories)

	brands, err := svc.GetAllBrands()
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Bosch"}, brands)
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}
