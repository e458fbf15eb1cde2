package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientLoginKeepsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("request body not json: %v", err)
		}
		if payload["login"] != "alice" {
			t.Fatalf("login want alice got %s", payload["login"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","data":{"access_token":"tok-123","user":{"id":42,"login":"alice","city":"chicago","street":"state-street","houseNumber":5,"paymentMethod":"card","createdAt":"2024-01-01T00:00:00Z"}}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5000)
	resp, err := client.Login(context.Background(), LoginRequest{Login: "alice", Password: "secret!"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	// 认证接口不剥离 {data} 信封
	if resp.Message != "Login successful" {
		t.Fatalf("message want Login successful got %s", resp.Message)
	}
	if resp.Data == nil || resp.Data.AccessToken != "tok-123" {
		t.Fatalf("access token want tok-123 got %+v", resp.Data)
	}
	if resp.Data.User.ID != 42 || resp.Data.User.Login != "alice" {
		t.Fatalf("unexpected user: %+v", resp.Data.User)
	}
}

func TestClientRegisterForwardsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("request body not json: %v", err)
		}
		// 远端字段为 camelCase
		if payload["confirmPassword"] != "secret!" || payload["houseNumber"] != float64(12) {
			t.Fatalf("unexpected payload: %v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"User registered"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5000)
	resp, err := client.Register(context.Background(), RegisterRequest{
		Login:           "alice",
		Password:        "secret!",
		ConfirmPassword: "secret!",
		City:            "chicago",
		Street:          "state-street",
		HouseNumber:     12,
		PaymentMethod:   "card",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if resp.Message != "User registered" || resp.Data != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
