package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories/postgres"
	"github.com/daveylupes/womantech/internal/services"
	"github.com/daveylupes/womantech/internal/utils"
	"github.com/daveylupes/womantech/internal/validator"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Payment{},
		&models.Notification{},
		&models.Message{},
		&models.Invite{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	slogLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	appLogger := utils.NewSlogLogger(slogLogger)

	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})
	serviceManager := services.NewServiceManager(db, repo, slogLogger, validator.New(), nil)
	if err := serviceManager.Initialize(context.Background()); err != nil {
		t.Fatalf("failed to initialize services: %v", err)
	}

	router := gin.New()
	SetupMiddleware(router, appLogger, "*")
	NewHandlerManager(serviceManager, appLogger, repo).SetupRoutes(router)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"wallet_address": "0xAA01",
		"name":           "Ada",
		"role":           "MENTOR",
		"skills":         []string{"Rust", "Go"},
	}
}

func TestUserRoutes_Register(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users/register", registerBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.WalletAddress != "0xAA01" || resp.Role != models.RoleMentor {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Reputation != 0 || resp.SubscriptionTier != models.TierFree || !resp.IsActive {
		t.Errorf("defaults not applied: %+v", resp)
	}
	if len(resp.Skills) != 2 {
		t.Errorf("unexpected skills: %v", resp.Skills)
	}
}

func TestUserRoutes_RegisterDuplicateWallet(t *testing.T) {
	router := setupRouter(t)

	if w := doJSON(t, router, http.MethodPost, "/api/users/register", registerBody()); w.Code != http.StatusOK {
		t.Fatalf("first register failed: %d", w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/api/users/register", registerBody())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate wallet, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected explanatory message")
	}
}

func TestUserRoutes_RegisterValidationDetail(t *testing.T) {
	router := setupRouter(t)

	body := registerBody()
	body["role"] = "WIZARD"

	w := doJSON(t, router, http.MethodPost, "/api/users/register", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Details []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Message != "Validation failed" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if len(resp.Details) == 0 || resp.Details[0].Field != "role" {
		t.Errorf("expected field-level detail on role, got %+v", resp.Details)
	}
}

func TestUserRoutes_RegisterMalformedBody(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestUserRoutes_Me(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/users/me", nil)
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Authentication not implemented yet" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestUserRoutes_GetByWallet(t *testing.T) {
	router := setupRouter(t)

	if w := doJSON(t, router, http.MethodPost, "/api/users/register", registerBody()); w.Code != http.StatusOK {
		t.Fatalf("register failed: %d", w.Code)
	}

	t.Run("found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/users/0xAA01", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp models.UserResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Name != "Ada" {
			t.Errorf("unexpected user: %+v", resp)
		}
	})

	t.Run("missing", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/users/0xMISSING", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("deactivated", func(t *testing.T) {
		if w := doJSON(t, router, http.MethodDelete, "/api/users/0xAA01", nil); w.Code != http.StatusNoContent {
			t.Fatalf("deactivate failed: %d", w.Code)
		}

		w := doJSON(t, router, http.MethodGet, "/api/users/0xAA01", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 for deactivated user, got %d", w.Code)
		}
	})
}

func TestUserRoutes_Search(t *testing.T) {
	router := setupRouter(t)

	seed := []map[string]interface{}{
		{"wallet_address": "0xAA01", "name": "Ada", "role": "MENTOR", "skills": []string{"Go"}},
		{"wallet_address": "0xAA02", "name": "Grace", "role": "MENTOR", "skills": []string{"Compilers"}},
		{"wallet_address": "0xAA03", "name": "Barbara", "role": "MENTOR"},
		{"wallet_address": "0xAA04", "name": "Katherine", "role": "MENTEE"},
	}
	for _, body := range seed {
		if w := doJSON(t, router, http.MethodPost, "/api/users/register", body); w.Code != http.StatusOK {
			t.Fatalf("seed register failed: %d %s", w.Code, w.Body.String())
		}
	}

	t.Run("by role with limit", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/users/search?role=MENTOR&limit=2", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp services.SearchUsersResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Users) != 2 {
			t.Errorf("expected 2 users, got %d", len(resp.Users))
		}
	})

	t.Run("by skill", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/users/search?skills=Go", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp services.SearchUsersResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Users) != 1 || resp.Users[0].WalletAddress != "0xAA01" {
			t.Errorf("expected only Ada, got %+v", resp.Users)
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/users/search?limit=abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestPlaceholderRoutes(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/api/sessions/", "/api/payments/"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}

		var resp models.PlaceholderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: failed to decode response: %v", path, err)
		}
		if resp.Implemented {
			t.Errorf("%s: placeholder must report implemented=false", path)
		}
		if resp.Message == "" {
			t.Errorf("%s: placeholder must carry a message", path)
		}
	}
}

func TestRootAndHealth(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from root, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health payload: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("unexpected health status: %v", resp["status"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on responses")
	}
}
