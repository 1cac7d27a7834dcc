// helpers_test.go - Shared test harness: throwaway sqlite DB, router, fixtures

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go-ecommerce-backend/auth"
	"go-ecommerce-backend/config"
	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// setupTest creates a fresh sqlite database and a fully wired router.
// The DB file is removed before and after so every test starts clean.
// _txlock=immediate keeps concurrent order placements from deadlocking
// on sqlite's deferred-to-write lock upgrade.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := "test_" + t.Name() + ".db"
	_ = os.Remove(path)
	t.Cleanup(func() { _ = os.Remove(path) })

	cfg := &config.Config{
		Env:       "test",
		DBDriver:  "sqlite",
		DBDSN:     path + "?_busy_timeout=10000&_txlock=immediate",
		JWTSecret: testSecret,
	}
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	return NewRouter(db, cfg), db
}

// createUser inserts a user directly and returns a valid token for it.
func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) (models.User, string) {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := auth.Issue([]byte(testSecret), user.ID, user.Role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return user, token
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Description: "test product",
		Price:       price,
		Stock:       stock,
		Category:    "test",
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
	return out
}
