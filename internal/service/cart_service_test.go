package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// setupServiceDB opens a private in-memory database per test so carts and
// orders never bleed between cases. models.DB is swapped for the checkout
// transaction and restored on cleanup.
func setupServiceDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Session{}, &models.MenuItem{}, &models.CartLine{}, &models.Order{}, &models.OrderLine{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	prev := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = prev })
	return db
}

func seedSession(t *testing.T, db *gorm.DB, token string) *models.Session {
	t.Helper()
	session := &models.Session{Token: token}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	return session
}

func seedCategories(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	for i, name := range names {
		category := &models.Category{Name: name, SortOrder: i + 1}
		if err := db.Create(category).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price int64, category string, sortOrder int) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		Name:      name,
		UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Category:  category,
		SortOrder: sortOrder,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}
	return item
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	db := setupServiceDB(t, "cart_add_increment")
	session := seedSession(t, db, "add-increment")
	burger := seedMenuItem(t, db, "Cheeseburger Deluxe", 399, "burgers", 1)
	svc := newCartService(db)

	first, err := svc.AddItem(session.ID, burger.ID)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if first.ItemName != "Cheeseburger Deluxe" || first.Quantity != 1 {
		t.Fatalf("first add want quantity 1 got %+v", first)
	}

	second, err := svc.AddItem(session.ID, burger.ID)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if second.Quantity != 2 {
		t.Fatalf("second add want quantity 2 got %d", second.Quantity)
	}

	summary, err := svc.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("lines want 1 got %d", len(summary.Lines))
	}
	if summary.TotalCount != 2 {
		t.Fatalf("total count want 2 got %d", summary.TotalCount)
	}
	if summary.TotalPrice.String() != "798.00" {
		t.Fatalf("total price want 798.00 got %s", summary.TotalPrice.String())
	}
}

func TestAddItemUnknownItemRejected(t *testing.T) {
	db := setupServiceDB(t, "cart_add_unknown")
	session := seedSession(t, db, "add-unknown")
	svc := newCartService(db)

	if _, err := svc.AddItem(session.ID, 9999); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("want ErrItemNotFound got %v", err)
	}
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	db := setupServiceDB(t, "cart_remove_absent")
	session := seedSession(t, db, "remove-absent")
	fries := seedMenuItem(t, db, "French Fries", 149, "fries", 2)
	svc := newCartService(db)

	if _, err := svc.AddItem(session.ID, fries.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveItem(session.ID, 9999); err != nil {
		t.Fatalf("remove absent should be a no-op, got %v", err)
	}

	summary, err := svc.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("lines want 1 got %d", len(summary.Lines))
	}
}

func TestSetQuantityRules(t *testing.T) {
	db := setupServiceDB(t, "cart_set_quantity")
	session := seedSession(t, db, "set-quantity")
	burger := seedMenuItem(t, db, "Beef Burger", 499, "burgers", 1)
	nuggets := seedMenuItem(t, db, "Chicken Nuggets", 199, "burgers", 3)
	svc := newCartService(db)

	if _, err := svc.AddItem(session.ID, burger.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.SetQuantity(session.ID, burger.ID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity want ErrInvalidQuantity got %v", err)
	}

	// positive quantity for an item not in the cart changes nothing
	if err := svc.SetQuantity(session.ID, nuggets.ID, 5); err != nil {
		t.Fatalf("set on absent item should be a no-op, got %v", err)
	}
	summary, err := svc.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].MenuItemID != burger.ID {
		t.Fatalf("cart changed by no-op set: %+v", summary.Lines)
	}

	if err := svc.SetQuantity(session.ID, burger.ID, 3); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	summary, err = svc.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalCount != 3 || summary.TotalPrice.String() != "1497.00" {
		t.Fatalf("want count 3 total 1497.00 got count %d total %s", summary.TotalCount, summary.TotalPrice.String())
	}

	// zero removes the line entirely
	if err := svc.SetQuantity(session.ID, burger.ID, 0); err != nil {
		t.Fatalf("set zero failed: %v", err)
	}
	summary, err = svc.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Lines) != 0 || summary.TotalCount != 0 {
		t.Fatalf("cart should be empty got %+v", summary)
	}
	if !summary.TotalPrice.IsZero() {
		t.Fatalf("empty cart total want 0 got %s", summary.TotalPrice.String())
	}
}

func TestSummaryKeepsInsertionOrder(t *testing.T) {
	db := setupServiceDB(t, "cart_summary_order")
	session := seedSession(t, db, "summary-order")
	cola := seedMenuItem(t, db, "Cola 0.5L", 99, "drinks", 6)
	burger := seedMenuItem(t, db, "Cheeseburger Deluxe", 399, "burgers", 1)
	fries := seedMenuItem(t, db, "French Fries", 149, "fries", 2)
	svc := newCartService(db)

	for _, item := range []*models.MenuItem{cola, burger, fries} {
		if _, err := svc.AddItem(session.ID, item.ID); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	// bumping an existing line must not move it
	if _, err := svc.AddItem(session.ID, burger.ID); err != nil {
		t.Fatalf("re-add failed: %v", err)
	}

	summary, err := svc.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	wantOrder := []uint{cola.ID, burger.ID, fries.ID}
	if len(summary.Lines) != len(wantOrder) {
		t.Fatalf("lines want %d got %d", len(wantOrder), len(summary.Lines))
	}
	for i, line := range summary.Lines {
		if line.MenuItemID != wantOrder[i] {
			t.Fatalf("line %d want item %d got %d", i, wantOrder[i], line.MenuItemID)
		}
	}
	if summary.TotalPrice.String() != "1046.00" {
		t.Fatalf("total want 1046.00 got %s", summary.TotalPrice.String())
	}
}
