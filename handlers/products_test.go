// products_test.go - Tests for product CRUD and access control

package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"go-ecommerce-backend/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestProductCreateRequiresAdmin(t *testing.T) {
	router, db := setupTest(t)
	_, userToken := createUser(t, db, "user@test.com", models.RoleUser)
	_, adminToken := createUser(t, db, "admin@test.com", models.RoleAdmin)

	input := ProductInput{Name: "Widget", Price: 9.99, Stock: intPtr(50)}

	// No token
	w := doJSON(router, "POST", "/api/products", input, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Regular user
	w = doJSON(router, "POST", "/api/products", input, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin
	w = doJSON(router, "POST", "/api/products", input, adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Widget", body["name"])
	assert.Equal(t, float64(50), body["stock"])
}

func TestProductCreateValidation(t *testing.T) {
	router, db := setupTest(t)
	_, adminToken := createUser(t, db, "admin@test.com", models.RoleAdmin)

	// Price must be positive
	w := doJSON(router, "POST", "/api/products", ProductInput{Name: "Bad", Price: -1, Stock: intPtr(1)}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Stock must be non-negative
	w = doJSON(router, "POST", "/api/products", ProductInput{Name: "Bad", Price: 1, Stock: intPtr(-5)}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductListPagination(t *testing.T) {
	router, db := setupTest(t)
	for i := 0; i < 25; i++ {
		createProduct(t, db, fmt.Sprintf("Product %02d", i), 10, 5)
	}

	w := doJSON(router, "GET", "/api/products?page=2&limit=10", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["current_page"])
	assert.Equal(t, float64(3), pagination["total_pages"])
	assert.Equal(t, float64(25), pagination["total_items"])
	assert.Equal(t, float64(10), pagination["items_per_page"])
	assert.Len(t, body["products"], 10)

	// Limit above 100 is clamped
	w = doJSON(router, "GET", "/api/products?limit=500", nil, "")
	pagination = decodeBody(t, w)["pagination"].(map[string]interface{})
	assert.Equal(t, float64(100), pagination["items_per_page"])
}

func TestProductListCategoryFilter(t *testing.T) {
	router, db := setupTest(t)
	db.Create(&models.Product{Name: "Mouse", Price: 20, Stock: 3, Category: "electronics"})
	db.Create(&models.Product{Name: "Mug", Price: 5, Stock: 3, Category: "kitchen"})

	w := doJSON(router, "GET", "/api/products?category=electronics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	products := body["products"].([]interface{})
	assert.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].(map[string]interface{})["name"])
}

func TestProductSearch(t *testing.T) {
	router, db := setupTest(t)
	db.Create(&models.Product{Name: "Blue Widget", Description: "a widget", Price: 1, Stock: 1})
	db.Create(&models.Product{Name: "Mug", Description: "holds widget-strength coffee", Price: 1, Stock: 1})
	db.Create(&models.Product{Name: "Chair", Description: "for sitting", Price: 1, Stock: 1})

	w := doJSON(router, "GET", "/api/products/search?q=WIDGET", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["products"], 2, "matches name or description, case-insensitive")

	w = doJSON(router, "GET", "/api/products/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductGetUpdateDelete(t *testing.T) {
	router, db := setupTest(t)
	_, adminToken := createUser(t, db, "admin@test.com", models.RoleAdmin)
	product := createProduct(t, db, "Widget", 9.99, 50)

	// Get
	w := doJSON(router, "GET", fmt.Sprintf("/api/products/%d", product.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/products/99999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Partial update: only price changes
	newPrice := 14.99
	w = doJSON(router, "PUT", fmt.Sprintf("/api/products/%d", product.ID),
		ProductUpdateInput{Price: &newPrice}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	db.First(&updated, product.ID)
	assert.Equal(t, 14.99, updated.Price)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 50, updated.Stock)

	w = doJSON(router, "PUT", "/api/products/99999", ProductUpdateInput{Price: &newPrice}, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Delete
	w = doJSON(router, "DELETE", fmt.Sprintf("/api/products/%d", product.ID), nil, adminToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "DELETE", fmt.Sprintf("/api/products/%d", product.ID), nil, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
