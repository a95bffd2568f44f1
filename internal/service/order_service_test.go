package service

import (
	"errors"
	"testing"

	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/queue"
	"github.com/fastbite/fastbite/internal/repository"

	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	client, _ := queue.NewClient(nil) // disabled, enqueues become no-ops
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		client,
	)
}

func TestCheckoutValidatesCustomerFields(t *testing.T) {
	db := setupServiceDB(t, "order_validate")
	session := seedSession(t, db, "order-validate")
	burger := seedMenuItem(t, db, "Cheeseburger Deluxe", 399, "burgers", 1)
	carts := newCartService(db)
	orders := newOrderService(db)

	if _, err := carts.AddItem(session.ID, burger.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cases := []struct {
		name  string
		input CheckoutInput
		field string
	}{
		{"missing name", CheckoutInput{SessionID: session.ID, Phone: "555-0101", DeliveryAddress: "1 Road"}, "name"},
		{"blank phone", CheckoutInput{SessionID: session.ID, CustomerName: "Jane", Phone: "   ", DeliveryAddress: "1 Road"}, "phone"},
		{"missing address", CheckoutInput{SessionID: session.ID, CustomerName: "Jane", Phone: "555-0101"}, "address"},
	}
	for _, tc := range cases {
		_, err := orders.Checkout(tc.input)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: want ValidationError got %v", tc.name, err)
		}
		if vErr.Field != tc.field {
			t.Fatalf("%s: field want %s got %s", tc.name, tc.field, vErr.Field)
		}
	}

	// failed validation must leave the cart untouched
	summary, err := carts.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("cart should survive failed checkout, lines got %d", len(summary.Lines))
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	db := setupServiceDB(t, "order_empty_cart")
	session := seedSession(t, db, "order-empty")
	orders := newOrderService(db)

	_, err := orders.Checkout(CheckoutInput{
		SessionID:       session.ID,
		CustomerName:    "Jane",
		Phone:           "555-0101",
		DeliveryAddress: "1 Road",
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no order should exist, got %d", count)
	}
}

func TestOrderingFlowEndToEnd(t *testing.T) {
	db := setupServiceDB(t, "order_flow")
	session := seedSession(t, db, "order-flow")
	burger := seedMenuItem(t, db, "Cheeseburger Deluxe", 399, "burgers", 1)
	fries := seedMenuItem(t, db, "French Fries", 149, "fries", 2)
	carts := newCartService(db)
	orders := newOrderService(db)

	// burger twice, fries once
	for _, id := range []uint{burger.ID, burger.ID, fries.ID} {
		if _, err := carts.AddItem(session.ID, id); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	summary, err := carts.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalCount != 3 || len(summary.Lines) != 2 {
		t.Fatalf("want count 3 lines 2 got count %d lines %d", summary.TotalCount, len(summary.Lines))
	}
	if summary.TotalPrice.String() != "947.00" {
		t.Fatalf("total want 947.00 got %s", summary.TotalPrice.String())
	}

	// dropping the burger leaves only the fries
	if err := carts.SetQuantity(session.ID, burger.ID, 0); err != nil {
		t.Fatalf("set zero failed: %v", err)
	}
	summary, err = carts.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.TotalPrice.String() != "149.00" {
		t.Fatalf("want single line total 149.00 got lines %d total %s", len(summary.Lines), summary.TotalPrice.String())
	}

	order, err := orders.Checkout(CheckoutInput{
		SessionID:       session.ID,
		CustomerName:    "Jane",
		Phone:           "555-0101",
		DeliveryAddress: "1 Road",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Status != constants.OrderStatusReceived {
		t.Fatalf("status want %s got %s", constants.OrderStatusReceived, order.Status)
	}
	if order.TotalPrice.String() != "149.00" || order.TotalCount != 1 {
		t.Fatalf("order total want 149.00 x1 got %s x%d", order.TotalPrice.String(), order.TotalCount)
	}
	if len(order.Lines) != 1 {
		t.Fatalf("order lines want 1 got %d", len(order.Lines))
	}
	line := order.Lines[0]
	if line.ItemName != "French Fries" || line.Quantity != 1 || line.UnitPrice.String() != "149.00" {
		t.Fatalf("line snapshot wrong: %+v", line)
	}

	// the cart is empty afterwards and ready for a fresh order
	summary, err = carts.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary after checkout failed: %v", err)
	}
	if len(summary.Lines) != 0 || summary.TotalCount != 0 {
		t.Fatalf("cart should be empty after checkout, got %+v", summary)
	}

	got, err := orders.GetForSession(session.ID, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.OrderNo != order.OrderNo {
		t.Fatalf("order no want %s got %s", order.OrderNo, got.OrderNo)
	}
}

func TestCartLineAddedAfterCheckoutIsNeverLost(t *testing.T) {
	db := setupServiceDB(t, "order_late_line")
	session := seedSession(t, db, "order-late-line")
	fries := seedMenuItem(t, db, "French Fries", 149, "fries", 2)
	cola := seedMenuItem(t, db, "Cola 0.5L", 99, "drinks", 6)
	carts := newCartService(db)
	orders := newOrderService(db)

	if _, err := carts.AddItem(session.ID, fries.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	input := CheckoutInput{
		SessionID:       session.ID,
		CustomerName:    "Jane",
		Phone:           "555-0101",
		DeliveryAddress: "1 Road",
	}
	first, err := orders.Checkout(input)
	if err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	if len(first.Lines) != 1 || first.Lines[0].ItemName != "French Fries" {
		t.Fatalf("first order lines wrong: %+v", first.Lines)
	}

	// a line the first checkout never captured must stay in the cart and
	// make it onto the next order, not vanish
	if _, err := carts.AddItem(session.ID, cola.ID); err != nil {
		t.Fatalf("add after checkout failed: %v", err)
	}
	summary, err := carts.Summary(session.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].MenuItemID != cola.ID {
		t.Fatalf("cola should survive in the cart, got %+v", summary.Lines)
	}

	second, err := orders.Checkout(input)
	if err != nil {
		t.Fatalf("second checkout failed: %v", err)
	}
	if len(second.Lines) != 1 || second.Lines[0].ItemName != "Cola 0.5L" {
		t.Fatalf("second order lines wrong: %+v", second.Lines)
	}
}

func TestOrderLookupScopedToSession(t *testing.T) {
	db := setupServiceDB(t, "order_scope")
	owner := seedSession(t, db, "order-owner")
	stranger := seedSession(t, db, "order-stranger")
	cola := seedMenuItem(t, db, "Cola 0.5L", 99, "drinks", 6)
	carts := newCartService(db)
	orders := newOrderService(db)

	if _, err := carts.AddItem(owner.ID, cola.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orders.Checkout(CheckoutInput{
		SessionID:       owner.ID,
		CustomerName:    "Jane",
		Phone:           "555-0101",
		DeliveryAddress: "1 Road",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orders.GetForSession(stranger.ID, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("stranger lookup want ErrOrderNotFound got %v", err)
	}

	list, err := orders.ListForSession(owner.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != order.ID {
		t.Fatalf("owner list want the one order got %+v", list)
	}
}
