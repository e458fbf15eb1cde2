package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coffeehouse-next/internal/config"
	"github.com/coffeehouse-next/internal/models"
	"github.com/coffeehouse-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/products":
			w.Write([]byte(`{"data":[{"id":1,"name":"Espresso","price":2.5,"category":"coffee"}]}`))
		case strings.HasPrefix(r.URL.Path, "/products/"):
			w.Write([]byte(`{"data":{"id":1,"name":"Espresso","price":2.5,"category":"coffee"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Upstream.BaseURL = upstream.URL
	cfg.Upstream.TimeoutMS = 5000

	return SetupRouter(cfg, provider.NewContainer(cfg))
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, clientID string) envelope {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set("X-Client-ID", clientID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s status want 200 got %d", method, path, w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope failed: %v (%s)", err, w.Body.String())
	}
	return env
}

func TestRouterHealthz(t *testing.T) {
	r := setupRouterTest(t)
	env := doJSON(t, r, http.MethodGet, "/healthz", "", "")
	if env.StatusCode != 0 {
		t.Fatalf("healthz status_code want 0 got %d", env.StatusCode)
	}
}

func TestRouterProductsEnvelope(t *testing.T) {
	r := setupRouterTest(t)
	env := doJSON(t, r, http.MethodGet, "/api/v1/products", "", "")
	if env.StatusCode != 0 || env.Msg != "success" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	var products []models.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		t.Fatalf("unmarshal products failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Espresso" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestRouterCartFlowWithScopes(t *testing.T) {
	r := setupRouterTest(t)

	item := `{"product_id":1,"product_name":"Espresso","category":"coffee","price":"2.50","size":"S","volume":"200ml","additives":[],"quantity":1}`
	env := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", item, "client-a")
	if env.StatusCode != 0 {
		t.Fatalf("add item failed: %+v", env)
	}

	// 同一行项再次加入数量加一
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items", item, "client-a")
	env = doJSON(t, r, http.MethodGet, "/api/v1/cart/summary", "", "client-a")
	var summary struct {
		TotalItems int    `json:"total_items"`
		TotalPrice string `json:"total_price"`
	}
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("unmarshal summary failed: %v", err)
	}
	if summary.TotalItems != 2 || summary.TotalPrice != "5.00" {
		t.Fatalf("summary want 2/5.00 got %+v", summary)
	}

	// 其他作用域不可见
	env = doJSON(t, r, http.MethodGet, "/api/v1/cart/summary", "", "client-b")
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("unmarshal summary failed: %v", err)
	}
	if summary.TotalItems != 0 {
		t.Fatalf("scope isolation broken, client-b sees %d items", summary.TotalItems)
	}
}

func TestRouterOrderRequiresAuth(t *testing.T) {
	r := setupRouterTest(t)
	env := doJSON(t, r, http.MethodPost, "/api/v1/orders", `{"delivery_address":"Broadway 5"}`, "client-a")
	if env.StatusCode != 401 {
		t.Fatalf("unauthenticated order status_code want 401 got %d", env.StatusCode)
	}
}

func TestRouterCustomizeFlow(t *testing.T) {
	r := setupRouterTest(t)

	env := doJSON(t, r, http.MethodPost, "/api/v1/customize/sessions", `{"product_id":1}`, "client-a")
	if env.StatusCode != 0 {
		t.Fatalf("open session failed: %+v", env)
	}
	var session struct {
		ID    string `json:"id"`
		State string `json:"state"`
		Quote struct {
			Total string `json:"total"`
		} `json:"quote"`
	}
	if err := json.Unmarshal(env.Data, &session); err != nil {
		t.Fatalf("unmarshal session failed: %v", err)
	}
	if session.State != "open_ready" || session.Quote.Total != "2.50" {
		t.Fatalf("unexpected session: %+v", session)
	}

	env = doJSON(t, r, http.MethodPut, "/api/v1/customize/sessions/"+session.ID+"/size", `{"size":"L"}`, "client-a")
	if err := json.Unmarshal(env.Data, &session); err != nil {
		t.Fatalf("unmarshal session failed: %v", err)
	}
	if session.Quote.Total != "3.50" {
		t.Fatalf("L quote want 3.50 got %s", session.Quote.Total)
	}

	env = doJSON(t, r, http.MethodPost, "/api/v1/customize/sessions/"+session.ID+"/confirm", "", "client-a")
	if env.StatusCode != 0 {
		t.Fatalf("confirm failed: %+v", env)
	}

	// 确认后会话不存在
	env = doJSON(t, r, http.MethodGet, "/api/v1/customize/sessions/"+session.ID, "", "client-a")
	if env.StatusCode != 404 {
		t.Fatalf("confirmed session status_code want 404 got %d", env.StatusCode)
	}
}
