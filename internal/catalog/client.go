package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coffeehouse-next/internal/config"
)

// UpstreamError 远端 API 错误（status 为 0 表示网络层失败）
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Message)
	}
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

// Client 远端 API 客户端（单次请求，超时即失败，不做重试）
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient 创建远端 API 客户端
func NewClient(cfg *config.UpstreamConfig) *Client {
	timeout := 10 * time.Second
	if cfg != nil && cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	baseURL := ""
	if cfg != nil {
		baseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// getJSON 发送 GET 请求并解析 JSON 响应
// unwrap 为 true 时剥离 {data: ...} 外层（列表/详情接口的返回格式）。
func (c *Client) getJSON(ctx context.Context, path string, dest interface{}, unwrap bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &UpstreamError{Status: 0, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, dest, unwrap)
}

// postJSON 发送 POST 请求并解析 JSON 响应
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, dest interface{}, unwrap bool) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &UpstreamError{Status: 0, Message: err.Error()}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &UpstreamError{Status: 0, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, dest, unwrap)
}

func (c *Client) do(req *http.Request, dest interface{}, unwrap bool) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Status: 0, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{Status: resp.StatusCode, Message: extractErrorMessage(raw, resp.StatusCode)}
	}

	if dest == nil {
		return nil
	}

	payload := raw
	if unwrap {
		// 远端列表/详情接口返回 {data: ...} 包装
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
			payload = envelope.Data
		}
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return &UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("invalid response body: %v", err)}
	}
	return nil
}

// extractErrorMessage 从错误响应体中提取 message/error 字段
func extractErrorMessage(raw []byte, status int) string {
	fallback := fmt.Sprintf("HTTP error! status: %d", status)
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if trimmed := strings.TrimSpace(string(raw)); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
		return trimmed
	}
	return fallback
}
