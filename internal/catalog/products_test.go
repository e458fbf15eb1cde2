package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coffeehouse-next/internal/config"
)

func newTestClient(baseURL string, timeoutMS int) *Client {
	return NewClient(&config.UpstreamConfig{BaseURL: baseURL, TimeoutMS: timeoutMS})
}

func TestProductsServiceGetAllUnwrapsAndCaches(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":1,"name":"Espresso","price":2.5,"category":"coffee"},
			{"id":2,"name":"Green Tea","price":3,"category":"tea"}
		]}`))
	}))
	defer srv.Close()

	svc := NewProductsService(newTestClient(srv.URL, 5000), 0)

	products, err := svc.GetAllProducts(context.Background())
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products want 2 got %d", len(products))
	}
	if products[0].Name != "Espresso" || products[0].Price.String() != "2.50" {
		t.Fatalf("unexpected first product: %+v", products[0])
	}

	// 第二次命中缓存，不再请求远端
	if _, err := svc.GetAllProducts(context.Background()); err != nil {
		t.Fatalf("cached get all failed: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("upstream calls want 1 got %d", calls)
	}
}

func TestProductsServiceCategoryFiltersFromCache(t *testing.T) {
	var categoryCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(`{"data":[
				{"id":1,"name":"Espresso","price":2.5,"category":"coffee"},
				{"id":2,"name":"Green Tea","price":3,"category":"tea"}
			]}`))
		default:
			atomic.AddInt32(&categoryCalls, 1)
			w.Write([]byte(`{"data":[]}`))
		}
	}))
	defer srv.Close()

	svc := NewProductsService(newTestClient(srv.URL, 5000), 0)
	if _, err := svc.GetAllProducts(context.Background()); err != nil {
		t.Fatalf("warm cache failed: %v", err)
	}

	tea, err := svc.GetProductsByCategory(context.Background(), "tea")
	if err != nil {
		t.Fatalf("category filter failed: %v", err)
	}
	if len(tea) != 1 || tea[0].Name != "Green Tea" {
		t.Fatalf("tea filter want Green Tea got %+v", tea)
	}

	// 精确匹配，不做模糊
	none, err := svc.GetProductsByCategory(context.Background(), "te")
	if err != nil {
		t.Fatalf("category filter failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("partial category should match nothing, got %+v", none)
	}

	if atomic.LoadInt32(&categoryCalls) != 0 {
		t.Fatalf("cached filter should not call upstream category endpoint")
	}
}

func TestProductsServiceCategoryFallsBackToUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/category/dessert" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":3,"name":"Cheesecake","price":4,"category":"dessert"}]}`))
	}))
	defer srv.Close()

	svc := NewProductsService(newTestClient(srv.URL, 5000), 0)
	products, err := svc.GetProductsByCategory(context.Background(), "dessert")
	if err != nil {
		t.Fatalf("category fallback failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Cheesecake" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestProductsServiceGetProductByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/7" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":7,"name":"Flat White","price":"4.00","discountPrice":3.5,"category":"coffee"}}`))
	}))
	defer srv.Close()

	svc := NewProductsService(newTestClient(srv.URL, 5000), 0)
	product, err := svc.GetProductByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.Name != "Flat White" || product.Price.String() != "4.00" {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.DiscountPrice == nil || product.DiscountPrice.String() != "3.50" {
		t.Fatalf("discount price want 3.50 got %+v", product.DiscountPrice)
	}
}

func TestClientUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"product not found"}`))
	}))
	defer srv.Close()

	svc := NewProductsService(newTestClient(srv.URL, 5000), 0)
	_, err := svc.GetProductByID(context.Background(), 404)
	upstreamErr, ok := err.(*UpstreamError)
	if !ok {
		t.Fatalf("want UpstreamError got %T: %v", err, err)
	}
	if upstreamErr.Status != 404 || upstreamErr.Message != "product not found" {
		t.Fatalf("unexpected upstream error: %+v", upstreamErr)
	}
}

func TestClientTimeoutSurfacesAsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	svc := NewProductsService(newTestClient(srv.URL, 20), 0)
	_, err := svc.GetAllProducts(context.Background())
	upstreamErr, ok := err.(*UpstreamError)
	if !ok {
		t.Fatalf("want UpstreamError got %T: %v", err, err)
	}
	if upstreamErr.Status != 0 {
		t.Fatalf("network failure should have status 0, got %d", upstreamErr.Status)
	}
}
