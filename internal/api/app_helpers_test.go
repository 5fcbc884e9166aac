package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"expenses/internal/db"
	"expenses/internal/models"
	"expenses/internal/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecretKey = "dGVzdC1zZWNyZXQta2V5LXRlc3Qtc2VjcmV0LWtleS0xMjM0"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "expenses-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	tokens, err := services.NewTokenService(testSecretKey, time.Hour)
	if err != nil {
		t.Fatalf("init token service: %v", err)
	}

	handler := NewHandler(db.NewRepositories(database), tokens)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestPerson(t *testing.T, database *gorm.DB, email string, password string) models.Person {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	person := models.Person{
		Email:        email,
		PasswordHash: string(passwordHash),
		Name:         "Test Person",
		Role:         models.RoleUser,
		Enabled:      true,
	}
	if err := database.Create(&person).Error; err != nil {
		t.Fatalf("create person: %v", err)
	}
	return person
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, bearer string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(raw)
}

func authenticateTestPerson(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/authenticate", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("authenticate status = %d, want 200", response.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	decodeBody(t, response, &result)
	if result.Token == "" {
		t.Fatal("expected non-empty token")
	}
	return result.Token
}
