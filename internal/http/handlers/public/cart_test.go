package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/fastbite/fastbite/internal/http/response"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/provider"
	"github.com/fastbite/fastbite/internal/repository"
	"github.com/fastbite/fastbite/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartHandlerTest(t *testing.T, name string) (*Handler, *models.Session, *models.MenuItem) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Session{}, &models.MenuItem{}, &models.CartLine{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	session := &models.Session{Token: name + "-token"}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	item := &models.MenuItem{
		Name:      "Cheeseburger Deluxe",
		UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(399)),
		Category:  "burgers",
		SortOrder: 1,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	container := &provider.Container{
		CartRepo:    cartRepo,
		MenuRepo:    menuRepo,
		CartService: service.NewCartService(cartRepo, menuRepo),
	}
	return New(container), session, item
}

func newCartTestContext(t *testing.T, session *models.Session, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("session", session)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v", err)
	}
	return envelope
}

func TestAddCartItemReportsItemName(t *testing.T) {
	h, session, item := setupCartHandlerTest(t, "handler_add")

	c, w := newCartTestContext(t, session, http.MethodPost, "/api/v1/cart/items",
		`{"menu_item_id":`+itoa(item.ID)+`}`)
	h.AddCartItem(c)

	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("status code want 0 got %d", envelope.StatusCode)
	}
	if envelope.Msg != "Cheeseburger Deluxe added to cart" {
		t.Fatalf("unexpected message %q", envelope.Msg)
	}
}

func TestAddCartItemUnknownItemIs404(t *testing.T) {
	h, session, _ := setupCartHandlerTest(t, "handler_add_unknown")

	c, w := newCartTestContext(t, session, http.MethodPost, "/api/v1/cart/items", `{"menu_item_id":9999}`)
	h.AddCartItem(c)

	envelope := decodeEnvelope(t, w)
	if envelope.StatusCode != response.CodeNotFound {
		t.Fatalf("status code want %d got %d", response.CodeNotFound, envelope.StatusCode)
	}
}

func TestSetCartItemQuantityRejectsNegative(t *testing.T) {
	h, session, item := setupCartHandlerTest(t, "handler_set_negative")

	c, w := newCartTestContext(t, session, http.MethodPut, "/api/v1/cart/items/"+itoa(item.ID), `{"quantity":-1}`)
	c.Params = gin.Params{{Key: "item_id", Value: itoa(item.ID)}}
	h.SetCartItemQuantity(c)

	envelope := decodeEnvelope(t, w)
	if envelope.StatusCode != response.CodeBadRequest {
		t.Fatalf("status code want %d got %d", response.CodeBadRequest, envelope.StatusCode)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
