package service

import (
	"context"
	"sync"

	"github.com/coffeehouse-next/internal/catalog"
	"github.com/coffeehouse-next/internal/constants"
	"github.com/coffeehouse-next/internal/logger"
	"github.com/coffeehouse-next/internal/models"

	"github.com/google/uuid"
)

// Quote 定制报价
// 有促销价时 DiscountTotal 非空，原价合计供展示划线。
type Quote struct {
	Total         models.Money  `json:"total"`
	DiscountTotal *models.Money `json:"discount_total,omitempty"`
}

// CustomizeSession 定制会话（商品 + 已选杯型/配料）
type CustomizeSession struct {
	ID                string          `json:"id"`
	State             string          `json:"state"`
	Product           *models.Product `json:"product,omitempty"`
	Options           CategoryOptions `json:"options"`
	SelectedSize      string          `json:"selected_size"`
	SelectedAdditives []string        `json:"selected_additives"`
	Quote             Quote           `json:"quote"`
}

// CustomizeService 定制会话服务
// 会话仅驻留内存，进程重启即丢失，未确认的定制不持久化。
type CustomizeService struct {
	products *catalog.ProductsService
	cart     *CartService
	options  *OptionCatalog

	mu       sync.Mutex
	sessions map[string]*CustomizeSession
}

// NewCustomizeService 创建定制会话服务
func NewCustomizeService(products *catalog.ProductsService, cart *CartService, options *OptionCatalog) *CustomizeService {
	return &CustomizeService{
		products: products,
		cart:     cart,
		options:  options,
		sessions: make(map[string]*CustomizeSession),
	}
}

// Open 打开定制会话
// 拉取商品详情失败时会话直接关闭，调用方得到可重试的瞬态错误。
func (s *CustomizeService) Open(ctx context.Context, productID uint) (*CustomizeSession, error) {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		logger.Warnw("customize_open_failed", "product_id", productID, "error", err)
		return nil, err
	}

	opts := s.options.ForCategory(product.Category)
	session := &CustomizeSession{
		ID:                uuid.NewString(),
		State:             constants.SessionStateReady,
		Product:           product,
		Options:           opts,
		SelectedSize:      opts.DefaultSize(),
		SelectedAdditives: []string{},
	}
	s.reprice(session)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session, nil
}

// Get 获取定制会话
func (s *CustomizeService) Get(id string) (*CustomizeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SelectSize 选择杯型（单选，重复选择同一杯型为空操作）
func (s *CustomizeService) SelectSize(id, size string) (*CustomizeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if _, valid := session.Options.SizeOption(size); !valid {
		return nil, ErrInvalidSize
	}
	session.SelectedSize = size
	s.reprice(session)
	return session, nil
}

// ToggleAdditive 切换配料（多选，已选则移除）
func (s *CustomizeService) ToggleAdditive(id, name string) (*CustomizeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if _, valid := session.Options.AdditiveOption(name); !valid {
		return nil, ErrInvalidAdditive
	}
	for i, selected := range session.SelectedAdditives {
		if selected == name {
			session.SelectedAdditives = append(session.SelectedAdditives[:i], session.SelectedAdditives[i+1:]...)
			s.reprice(session)
			return session, nil
		}
	}
	session.SelectedAdditives = append(session.SelectedAdditives, name)
	s.reprice(session)
	return session, nil
}

// Confirm 确认定制并加入购物车，随后关闭会话
func (s *CustomizeService) Confirm(id, scope string) (models.Cart, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return models.Cart{}, ErrSessionNotFound
	}

	sizeOpt, _ := session.Options.SizeOption(session.SelectedSize)
	item := models.CartItem{
		ProductID:     session.Product.ID,
		ProductName:   session.Product.Name,
		ProductImage:  session.Product.Image,
		Category:      session.Product.Category,
		Price:         session.Quote.Total,
		DiscountPrice: session.Quote.DiscountTotal,
		Size:          session.SelectedSize,
		Volume:        sizeOpt.Volume,
		Additives:     append([]string{}, session.SelectedAdditives...),
		Quantity:      1,
	}
	return s.cart.AddItem(scope, item), nil
}

// Close 关闭会话（选择状态随会话一并丢弃）
func (s *CustomizeService) Close(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// reprice 重新计算报价：基准价 + 杯型加价 + 配料合计
// 有促销价时同一套加价同时作用于促销基准价，两个合计一起返回。
func (s *CustomizeService) reprice(session *CustomizeSession) {
	extras := models.Money{}
	if opt, ok := session.Options.SizeOption(session.SelectedSize); ok {
		extras = extras.Add(opt.Surcharge)
	}
	for _, name := range session.SelectedAdditives {
		if opt, ok := session.Options.AdditiveOption(name); ok {
			extras = extras.Add(opt.Price)
		}
	}

	session.Quote = Quote{Total: session.Product.Price.Add(extras)}
	if session.Product.DiscountPrice != nil {
		discounted := session.Product.DiscountPrice.Add(extras)
		session.Quote.DiscountTotal = &discounted
	}
}
