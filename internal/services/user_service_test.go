package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daveylupes/womantech/internal/events"
	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
	"github.com/daveylupes/womantech/internal/repositories/postgres"
	"github.com/daveylupes/womantech/internal/validator"
)

func setupUserService(t *testing.T) (UserService, repositories.Repository, *events.MockEventPublisher) {
	t.Helper()

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
	publisher := events.NewMockEventPublisher(slogLogger)
	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})
	svc := NewUserService(repo, db, slogLogger, validator.New(), publisher)

	return svc, repo, publisher
}

func registerAda(t *testing.T, svc UserService) *UserResponse {
	t.Helper()

	rate := decimal.RequireFromString("120.50")
	resp, err := svc.Register(context.Background(), &RegisterUserRequest{
		WalletAddress: "0xAA01",
		Name:          "Ada",
		Role:          models.RoleMentor,
		Skills:        []string{"Rust", "Go"},
		HourlyRate:    &rate,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return resp
}

func TestUserService_RegisterAndFind(t *testing.T) {
	svc, _, publisher := setupUserService(t)
	ctx := context.Background()

	created := registerAda(t, svc)

	if created.ID == 0 {
		t.Error("expected assigned ID")
	}
	if created.Reputation != 0 {
		t.Errorf("expected reputation 0, got %d", created.Reputation)
	}
	if created.SubscriptionTier != models.TierFree {
		t.Errorf("expected FREE tier, got %s", created.SubscriptionTier)
	}
	if !created.IsActive {
		t.Error("expected active user")
	}
	if !reflect.DeepEqual(created.Skills, []string{"Rust", "Go"}) {
		t.Errorf("unexpected skills: %v", created.Skills)
	}

	found, err := svc.GetByWallet(ctx, "0xAA01")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found.Name != "Ada" || found.Role != models.RoleMentor {
		t.Errorf("unexpected user: %+v", found)
	}
	if found.HourlyRate == nil || !found.HourlyRate.Equal(decimal.RequireFromString("120.50")) {
		t.Errorf("unexpected hourly rate: %v", found.HourlyRate)
	}
	if !reflect.DeepEqual(found.Skills, created.Skills) {
		t.Errorf("skills did not round trip: %v vs %v", found.Skills, created.Skills)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	event := published[0]
	if event.Type != events.EventUserRegistered {
		t.Errorf("expected %s event, got %s", events.EventUserRegistered, event.Type)
	}
	if event.ID == "" || event.Timestamp.IsZero() {
		t.Error("event envelope missing ID or timestamp")
	}
	if event.Source != events.EventSource {
		t.Errorf("unexpected event source: %s", event.Source)
	}
}

func TestUserService_RegisterDuplicateWallet(t *testing.T) {
	svc, _, _ := setupUserService(t)
	ctx := context.Background()

	registerAda(t, svc)

	_, err := svc.Register(ctx, &RegisterUserRequest{
		WalletAddress: "0xAA01",
		Name:          "Impostor",
		Role:          models.RoleMentee,
	})
	if !errors.Is(err, ErrDuplicateWallet) {
		t.Errorf("expected ErrDuplicateWallet, got %v", err)
	}
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := setupUserService(t)
	ctx := context.Background()

	email := "ada@example.com"
	_, err := svc.Register(ctx, &RegisterUserRequest{
		WalletAddress: "0xAA01",
		Name:          "Ada",
		Email:         &email,
		Role:          models.RoleMentor,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err = svc.Register(ctx, &RegisterUserRequest{
		WalletAddress: "0xBB01",
		Name:          "Grace",
		Email:         &email,
		Role:          models.RoleMentee,
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc, _, publisher := setupUserService(t)

	_, err := svc.Register(context.Background(), &RegisterUserRequest{
		WalletAddress: "0xAA01",
		Name:          "Ada",
		Role:          "WIZARD",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}

	if len(publisher.GetPublishedEvents()) != 0 {
		t.Error("no event should be published for rejected registration")
	}
}

func TestUserService_GetCurrent(t *testing.T) {
	svc, _, _ := setupUserService(t)

	_, err := svc.GetCurrent(context.Background())
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestUserService_GetByWallet_NotFound(t *testing.T) {
	svc, _, _ := setupUserService(t)

	_, err := svc.GetByWallet(context.Background(), "0xMISSING")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Search(t *testing.T) {
	svc, _, _ := setupUserService(t)
	ctx := context.Background()

	seed := []struct {
		wallet string
		name   string
		role   models.UserRole
		skills []string
	}{
		{"0xAA01", "Ada", models.RoleMentor, []string{"Rust", "Go"}},
		{"0xAA02", "Grace", models.RoleMentor, []string{"Compilers"}},
		{"0xAA03", "Barbara", models.RoleMentor, []string{"Go"}},
		{"0xAA04", "Katherine", models.RoleMentee, []string{"Go"}},
		{"0xAA05", "Margaret", models.RoleMentee, nil},
	}
	for _, s := range seed {
		_, err := svc.Register(ctx, &RegisterUserRequest{
			WalletAddress: s.wallet,
			Name:          s.name,
			Role:          s.role,
			Skills:        s.skills,
		})
		if err != nil {
			t.Fatalf("seed register failed: %v", err)
		}
	}

	t.Run("mentors with limit", func(t *testing.T) {
		role := "MENTOR"
		result, err := svc.Search(ctx, &SearchUsersRequest{Role: &role, Limit: 2})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if result.Total != 2 || len(result.Users) != 2 {
			t.Errorf("expected 2 results, got %d", len(result.Users))
		}
		for _, u := range result.Users {
			if u.Role != models.RoleMentor {
				t.Errorf("unexpected role %s", u.Role)
			}
		}
	})

	t.Run("skill filter", func(t *testing.T) {
		skill := "Go"
		result, err := svc.Search(ctx, &SearchUsersRequest{Skills: &skill})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(result.Users) != 3 {
			t.Errorf("expected 3 users with Go, got %d", len(result.Users))
		}
	})

	t.Run("unknown role yields empty result", func(t *testing.T) {
		role := "WIZARD"
		result, err := svc.Search(ctx, &SearchUsersRequest{Role: &role})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(result.Users) != 0 {
			t.Errorf("expected empty result, got %d", len(result.Users))
		}
	})

	t.Run("no filters uses default limit", func(t *testing.T) {
		result, err := svc.Search(ctx, &SearchUsersRequest{})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(result.Users) != 5 {
			t.Errorf("expected all 5 seeded users, got %d", len(result.Users))
		}
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, _, publisher := setupUserService(t)
	ctx := context.Background()

	registerAda(t, svc)
	publisher.ClearEvents()

	name := "Ada Lovelace"
	bio := "First programmer"
	updated, err := svc.UpdateProfile(ctx, "0xAA01", &UpdateUserRequest{
		Name:   &name,
		Bio:    &bio,
		Skills: []string{"Analytical Engines"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Name != name {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if updated.Bio == nil || *updated.Bio != bio {
		t.Errorf("expected updated bio, got %v", updated.Bio)
	}
	if !reflect.DeepEqual(updated.Skills, []string{"Analytical Engines"}) {
		t.Errorf("expected replaced skills, got %v", updated.Skills)
	}
	// Role stays fixed after registration.
	if updated.Role != models.RoleMentor {
		t.Errorf("role must not change, got %s", updated.Role)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventUserUpdated {
		t.Errorf("expected one %s event, got %v", events.EventUserUpdated, published)
	}
}

func TestUserService_Deactivate(t *testing.T) {
	svc, _, _ := setupUserService(t)
	ctx := context.Background()

	registerAda(t, svc)

	if err := svc.Deactivate(ctx, "0xAA01"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	if _, err := svc.GetByWallet(ctx, "0xAA01"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after deactivation, got %v", err)
	}

	// Deactivating twice reports not found.
	if err := svc.Deactivate(ctx, "0xAA01"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound on second deactivate, got %v", err)
	}
}
