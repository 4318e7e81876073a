package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
)

func TestPostgreSQLRepository_WithTransactionRollback(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgreSQLRepository(RepositoryConfig{DB: db})
	ctx := context.Background()

	boom := errors.New("boom")
	err := repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.User().Create(ctx, nil, newTestUser("0xAA01", "Ada", models.RoleMentor, nil)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected propagated error, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected rollback to discard insert, found %d rows", count)
	}
}

func TestPostgreSQLRepository_WithTransactionCommit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgreSQLRepository(RepositoryConfig{DB: db})
	ctx := context.Background()

	err := repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		return txRepo.User().Create(ctx, nil, newTestUser("0xAA01", "Ada", models.RoleMentor, nil))
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	if _, err := repo.User().GetByWallet(ctx, nil, "0xAA01"); err != nil {
		t.Errorf("expected committed user, got %v", err)
	}
}

func TestRepositoryManager_Lifecycle(t *testing.T) {
	db := setupTestDB(t)

	manager := NewRepositoryManager(RepositoryConfig{DB: db})
	if err := manager.Initialize(); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	if manager.GetRepository() == nil {
		t.Fatal("expected repository after initialization")
	}

	if err := manager.HealthCheck(context.Background()); err != nil {
		t.Errorf("health check failed: %v", err)
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestRepositoryManager_RequiresDatabase(t *testing.T) {
	manager := NewRepositoryManager(RepositoryConfig{})
	if err := manager.Initialize(); err == nil {
		t.Error("expected error when database connection is missing")
	}
}

func TestInvitePostgreSQL_MarkUsedOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitePostgreSQL(db)
	ctx := context.Background()

	invite := &models.Invite{
		Email:     "ada@example.com",
		Code:      "WELCOME-1",
		Role:      models.RoleMentor,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := repo.Create(ctx, nil, invite); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetByCode(ctx, nil, "WELCOME-1")
	if err != nil {
		t.Fatalf("get by code failed: %v", err)
	}
	if got.Expired(time.Now()) {
		t.Error("fresh invite must not be expired")
	}

	now := time.Now()
	if err := repo.MarkUsed(ctx, nil, got.ID, now); err != nil {
		t.Fatalf("mark used failed: %v", err)
	}

	// A second redemption finds no unused row.
	if err := repo.MarkUsed(ctx, nil, got.ID, now); !repositories.IsNotFoundError(err) {
		t.Errorf("expected not found on double redemption, got %v", err)
	}
}

func TestMessagePostgreSQL_Conversation(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserPostgreSQL(db, nil)
	msgRepo := NewMessagePostgreSQL(db)
	ctx := context.Background()

	ada := newTestUser("0xAA01", "Ada", models.RoleMentor, nil)
	grace := newTestUser("0xAA02", "Grace", models.RoleMentee, nil)
	for _, u := range []*models.User{ada, grace} {
		if err := userRepo.Create(ctx, nil, u); err != nil {
			t.Fatalf("seed user failed: %v", err)
		}
	}

	msgs := []*models.Message{
		{SenderID: ada.ID, ReceiverID: grace.ID, Content: "hi"},
		{SenderID: grace.ID, ReceiverID: ada.ID, Content: "hello"},
		{SenderID: ada.ID, ReceiverID: ada.ID, Content: "note to self"},
	}
	for _, m := range msgs {
		if err := msgRepo.Create(ctx, nil, m); err != nil {
			t.Fatalf("create message failed: %v", err)
		}
	}

	conv, err := msgRepo.ListConversation(ctx, nil, ada.ID, grace.ID, 10)
	if err != nil {
		t.Fatalf("list conversation failed: %v", err)
	}
	if len(conv) != 2 {
		t.Errorf("expected both directions of the conversation, got %d", len(conv))
	}

	if err := msgRepo.MarkRead(ctx, nil, conv[0].ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
}
