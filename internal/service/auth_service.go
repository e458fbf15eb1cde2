package service

import (
	"context"
	"strconv"

	"github.com/coffeehouse-next/internal/catalog"
	"github.com/coffeehouse-next/internal/constants"
	"github.com/coffeehouse-next/internal/logger"
	"github.com/coffeehouse-next/internal/repository"
)

// SessionInfo 会话状态（仅凭标记存在性判断，不校验令牌有效性）
type SessionInfo struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
}

// AuthService 认证服务
// 凭据校验与签发由远端负责，本服务只保存不透明令牌和用户标记。
type AuthService struct {
	client      *catalog.Client
	storageRepo repository.StorageRepository
	cart        *CartService
}

// NewAuthService 创建认证服务
func NewAuthService(client *catalog.Client, storageRepo repository.StorageRepository, cart *CartService) *AuthService {
	return &AuthService{client: client, storageRepo: storageRepo, cart: cart}
}

// Login 登录
// 本地校验通过后转发远端，完整保留远端响应信封。
func (s *AuthService) Login(ctx context.Context, scope string, req catalog.LoginRequest) (*catalog.AuthResponse, error) {
	if err := ValidateLogin(req); err != nil {
		return nil, err
	}
	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	s.storeMarkers(scope, resp)
	return resp, nil
}

// Register 注册
func (s *AuthService) Register(ctx context.Context, scope string, req catalog.RegisterRequest) (*catalog.AuthResponse, error) {
	if err := ValidateRegister(req); err != nil {
		return nil, err
	}
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.storeMarkers(scope, resp)
	return resp, nil
}

// storeMarkers 保存认证标记并给购物车打上用户标记
func (s *AuthService) storeMarkers(scope string, resp *catalog.AuthResponse) {
	if resp == nil || resp.Data == nil || resp.Data.AccessToken == "" {
		return
	}
	userID := strconv.Itoa(resp.Data.User.ID)
	if _, err := s.storageRepo.Put(scope, constants.StorageKeyAuthToken, resp.Data.AccessToken); err != nil {
		logger.Errorw("auth_token_store_failed", "scope", scope, "error", err)
	}
	if _, err := s.storageRepo.Put(scope, constants.StorageKeyUserID, userID); err != nil {
		logger.Errorw("auth_user_store_failed", "scope", scope, "error", err)
	}
	s.cart.SetUserID(scope, userID)
}

// Logout 登出（删除两个标记，购物车内容保留）
func (s *AuthService) Logout(scope string) {
	if err := s.storageRepo.Delete(scope, constants.StorageKeyAuthToken); err != nil {
		logger.Errorw("auth_token_delete_failed", "scope", scope, "error", err)
	}
	if err := s.storageRepo.Delete(scope, constants.StorageKeyUserID); err != nil {
		logger.Errorw("auth_user_delete_failed", "scope", scope, "error", err)
	}
}

// Session 当前会话状态
func (s *AuthService) Session(scope string) SessionInfo {
	token, err := s.storageRepo.Get(scope, constants.StorageKeyAuthToken)
	if err != nil {
		logger.Warnw("auth_token_read_failed", "scope", scope, "error", err)
		return SessionInfo{}
	}
	if token == nil {
		return SessionInfo{}
	}
	info := SessionInfo{Authenticated: true}
	if userID, err := s.storageRepo.Get(scope, constants.StorageKeyUserID); err == nil && userID != nil {
		info.UserID = userID.Value
	}
	return info
}

// IsAuthenticated 是否已认证（标记存在即视为已认证）
func (s *AuthService) IsAuthenticated(scope string) bool {
	return s.Session(scope).Authenticated
}
