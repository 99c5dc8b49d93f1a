package impl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogCSV(t *testing.T) {
	csv := "Product Name, Rate (₹) ,MRP (₹)\r\n" +
		"Foaming Face Wash,299,399\r\n" +
		"\r\n" +
		"Hydra Serum,549"

	rows := parseCatalogCSV(csv)
	require.Len(t, rows, 2)

	// Headers are lowercased and trimmed.
	assert.Equal(t, "Foaming Face Wash", rows[0]["product name"])
	assert.Equal(t, "299", rows[0]["rate (₹)"])
	assert.Equal(t, "399", rows[0]["mrp (₹)"])

	// Short rows read missing cells as empty strings.
	assert.Equal(t, "549", rows[1]["rate (₹)"])
	assert.Equal(t, "", rows[1]["mrp (₹)"])
}

func TestParseCatalogCSV_HeaderOnly(t *testing.T) {
	assert.Nil(t, parseCatalogCSV("Product Name,Rate"))
	assert.Nil(t, parseCatalogCSV(""))
}

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Gentle Face Wash", "Cleansers"},
		{"Vitamin C SERUM", "Serums"},
		{"Daily Moisturizer", "Moisturizers"},
		{"Moisture Boost Gel", "Moisturizers"},
		{"Mineral Sunscreen", "Sunscreen"},
		{"SPF 50 Lotion", "Sunscreen"},
		{"Night Cream", "Treatments"},
		{"Under Eye Gel", "Treatments"},
		{"", "Treatments"},
		// Ordered rules: "wash" outranks "cream".
		{"Cream Face Wash", "Cleansers"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, guessCategory(tt.name), "name: %q", tt.name)
	}
}

func TestProductFromImportRow(t *testing.T) {
	row := map[string]string{
		"product name":   "Hydra Serum",
		"variant / type": "30ml pump",
		"net qty":        "30 ml",
		"mrp":            "799",
		"rate":           "549",
	}

	product, ok := productFromImportRow(row, "", 4.5)
	require.True(t, ok)
	assert.Equal(t, "Hydra Serum", product.Name)
	assert.Equal(t, "Serums", product.Category)
	assert.Equal(t, "30ml pump", product.Description)
	assert.Equal(t, "30 ml", product.NetQuantity)
	assert.Equal(t, 799.0, product.OriginalPrice)
	assert.Equal(t, 549.0, product.Price)
	assert.Equal(t, 4.5, product.Rating)
	assert.Equal(t, entity.StockStatusInStock, product.StockStatus)
	assert.NotNil(t, product.Images)
}

func TestProductFromImportRow_DefaultCategoryOverridesGuess(t *testing.T) {
	row := map[string]string{"name": "Hydra Serum"}

	product, ok := productFromImportRow(row, "Eye Care", 4.5)
	require.True(t, ok)
	assert.Equal(t, "Eye Care", product.Category)
}

func TestProductFromImportRow_NamelessRowSkipped(t *testing.T) {
	_, ok := productFromImportRow(map[string]string{"rate": "100"}, "", 4.5)
	assert.False(t, ok)
}

func TestProductFromImportRow_GarbageNumbersReadAsZero(t *testing.T) {
	row := map[string]string{
		"product name": "Mystery Tonic",
		"rate":         "n/a",
		"mrp":          "call us",
	}

	product, ok := productFromImportRow(row, "", 4.5)
	require.True(t, ok)
	assert.Zero(t, product.Price)
	assert.Zero(t, product.OriginalPrice)
}

func TestAdminService_ImportProducts(t *testing.T) {
	productRepo := &fakeProductRepo{}
	svc := newAdminService(productRepo, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, &fakePublisher{})

	csv := "Product Name,Variant / Type,Net Qty,Rate,MRP\n" +
		"Gentle Face Wash,Gel,100 ml,299,399\n" +
		",,,100,200\n" +
		"Hydra Serum,Pump,30 ml,549,799\n"

	report, err := svc.ImportProducts(context.Background(), strings.NewReader(csv), "")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, []string{"Gentle Face Wash", "Hydra Serum"}, report.Products)
	assert.Len(t, productRepo.products, 2)
}

func TestAdminService_ImportProducts_AbortsOnFirstStoreError(t *testing.T) {
	productRepo := &fakeProductRepo{createErr: errors.New("quota exceeded")}
	svc := newAdminService(productRepo, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, &fakePublisher{})

	csv := "Product Name\nFirst\nSecond\n"

	_, err := svc.ImportProducts(context.Background(), strings.NewReader(csv), "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMPORT_FAILED", appErr.ErrorCode())
}
