package service

import (
	"errors"
	"testing"

	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/repository"

	"gorm.io/gorm"
)

func newSessionService(db *gorm.DB) *SessionService {
	return NewSessionService(repository.NewSessionRepository(db), repository.NewCategoryRepository(db))
}

func TestEnsureCreatesAndReusesSessions(t *testing.T) {
	db := setupServiceDB(t, "session_ensure")
	svc := newSessionService(db)

	created, err := svc.Ensure("")
	if err != nil {
		t.Fatalf("ensure blank failed: %v", err)
	}
	if created.Token == "" {
		t.Fatalf("new session should get a token")
	}
	if created.SelectedCategory != constants.CategoryAll {
		t.Fatalf("new session filter want %s got %s", constants.CategoryAll, created.SelectedCategory)
	}

	same, err := svc.Ensure(created.Token)
	if err != nil {
		t.Fatalf("ensure existing failed: %v", err)
	}
	if same.ID != created.ID {
		t.Fatalf("existing token should reuse session, got %d want %d", same.ID, created.ID)
	}

	fresh, err := svc.Ensure("unknown-token")
	if err != nil {
		t.Fatalf("ensure unknown failed: %v", err)
	}
	if fresh.ID == created.ID || fresh.Token == "unknown-token" {
		t.Fatalf("unknown token should mint a new session, got %+v", fresh)
	}
}

func TestSelectCategoryValidatesAndPersists(t *testing.T) {
	db := setupServiceDB(t, "session_select")
	seedCategories(t, db, "burgers", "fries", "drinks", "desserts")
	seedMenuItem(t, db, "Cheeseburger Deluxe", 399, "burgers", 1)
	svc := newSessionService(db)

	session, err := svc.Ensure("")
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	if err := svc.SelectCategory(session, "burgers"); err != nil {
		t.Fatalf("select burgers failed: %v", err)
	}
	if session.SelectedCategory != "burgers" {
		t.Fatalf("selection want burgers got %s", session.SelectedCategory)
	}

	// unknown categories are rejected and the old selection stays
	if err := svc.SelectCategory(session, "sushi"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("want ErrInvalidCategory got %v", err)
	}
	reloaded, err := svc.Ensure(session.Token)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.SelectedCategory != "burgers" {
		t.Fatalf("selection should survive rejection, got %s", reloaded.SelectedCategory)
	}

	if err := svc.SelectCategory(session, constants.CategoryAll); err != nil {
		t.Fatalf("select all failed: %v", err)
	}
	if session.SelectedCategory != constants.CategoryAll {
		t.Fatalf("selection want %s got %s", constants.CategoryAll, session.SelectedCategory)
	}

	// a category without items is still a valid selection
	if err := svc.SelectCategory(session, "desserts"); err != nil {
		t.Fatalf("select desserts failed: %v", err)
	}
	if session.SelectedCategory != "desserts" {
		t.Fatalf("selection want desserts got %s", session.SelectedCategory)
	}
}
