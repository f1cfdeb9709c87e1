package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/catalog"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
)

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	db := newFakeDB()
	db.addProduct("P-001", "Café molido", 12.50)
	uc := catalog.NewProductUseCase(&productRepo{db})

	_, err := uc.Create(context.Background(), testUserID, dto.CreateProductRequest{
		Code:  "P-001",
		Name:  "Otro café",
		Price: decimal.NewFromFloat(10),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CodigoLiberadoPorSoftDelete(t *testing.T) {
	db := newFakeDB()
	p := db.addProduct("P-001", "Café molido", 12.50)
	uc := catalog.NewProductUseCase(&productRepo{db})

	require.NoError(t, uc.Delete(context.Background(), p.ID))

	// El código de un producto eliminado puede reutilizarse.
	created, err := uc.Create(context.Background(), testUserID, dto.CreateProductRequest{
		Code:  "P-001",
		Name:  "Café nuevo",
		Price: decimal.NewFromFloat(14),
	})
	require.NoError(t, err)
	assert.Equal(t, "P-001", created.Code)
	assert.NotEqual(t, p.ID, created.ID)
}

func TestProductCreate_RedondeaPrecio(t *testing.T) {
	db := newFakeDB()
	uc := catalog.NewProductUseCase(&productRepo{db})

	created, err := uc.Create(context.Background(), testUserID, dto.CreateProductRequest{
		Code:  "P-002",
		Name:  "Azúcar",
		Price: decimal.NewFromFloat(3.199),
	})
	require.NoError(t, err)
	assert.True(t, created.Price.Equal(decimal.NewFromFloat(3.20)), "precio fue %s", created.Price)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	db := newFakeDB()
	uc := catalog.NewProductUseCase(&productRepo{db})

	casos := []dto.CreateProductRequest{
		{Code: "", Name: "Sin código", Price: decimal.NewFromFloat(1)},
		{Code: "P-001", Name: "", Price: decimal.NewFromFloat(1)},
		{Code: "P-001", Name: "Precio negativo", Price: decimal.NewFromFloat(-1)},
	}
	for _, in := range casos {
		_, err := uc.Create(context.Background(), testUserID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProductUpdate_SoloNombreYPrecio(t *testing.T) {
	db := newFakeDB()
	p := db.addProduct("P-001", "Café molido", 12.50)
	uc := catalog.NewProductUseCase(&productRepo{db})

	nuevoNombre := "Café premium"
	updated, err := uc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, "Café premium", updated.Name)
	assert.Equal(t, "P-001", updated.Code, "el código no cambia en update")
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(12.50)))
}

func TestProductGetByID_EliminadoNoVisible(t *testing.T) {
	db := newFakeDB()
	p := db.addProduct("P-001", "Café molido", 12.50)
	uc := catalog.NewProductUseCase(&productRepo{db})

	require.NoError(t, uc.Delete(context.Background(), p.ID))

	_, err := uc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
