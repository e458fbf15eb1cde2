package catalog

import "context"

// LoginRequest 登录请求体（原样转发远端）
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RegisterRequest 注册请求体（原样转发远端）
type RegisterRequest struct {
	Login           string `json:"login"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	City            string `json:"city"`
	Street          string `json:"street"`
	HouseNumber     int    `json:"houseNumber"`
	PaymentMethod   string `json:"paymentMethod"`
}

// AuthUser 远端返回的用户信息
type AuthUser struct {
	ID            int    `json:"id"`
	Login         string `json:"login"`
	City          string `json:"city"`
	Street        string `json:"street"`
	HouseNumber   int    `json:"houseNumber"`
	PaymentMethod string `json:"paymentMethod"`
	CreatedAt     string `json:"createdAt"`
}

// AuthData 远端认证响应的 data 部分
type AuthData struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

// AuthResponse 远端认证响应
// 认证接口保留完整信封，不做 {data} 剥离。
type AuthResponse struct {
	Message string    `json:"message"`
	Data    *AuthData `json:"data,omitempty"`
}

// Login 转发登录请求
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/login", req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register 转发注册请求
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/register", req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}
