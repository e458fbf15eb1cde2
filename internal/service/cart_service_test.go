package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/coffeehouse-next/internal/constants"
	"github.com/coffeehouse-next/internal/models"
	"github.com/coffeehouse-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, repository.StorageRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	repo := repository.NewStorageRepository(db)
	return NewCartService(repo), repo
}

func latteItem() models.CartItem {
	return models.CartItem{
		ProductID:   1,
		ProductName: "Latte",
		Category:    constants.CategoryCoffee,
		Price:       models.NewMoneyFromFloat(4.5),
		Size:        constants.SizeMedium,
		Volume:      "300ml",
		Additives:   []string{"sugar", "cinnamon"},
		Quantity:    1,
	}
}

func TestCartServiceAddItemMergesSameLine(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	svc.AddItem("scope", latteItem())
	// 配料顺序不同仍是同一行项
	same := latteItem()
	same.Additives = []string{"cinnamon", "sugar"}
	same.Quantity = 5
	cart := svc.AddItem("scope", same)

	if len(cart.Items) != 1 {
		t.Fatalf("same line should merge, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("merge should increment by 1 ignoring incoming quantity, got %d", cart.Items[0].Quantity)
	}
}

func TestCartServiceAddItemDistinctAdditiveSets(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	svc.AddItem("scope", latteItem())
	other := latteItem()
	other.Additives = []string{"sugar"}
	cart := svc.AddItem("scope", other)

	if len(cart.Items) != 2 {
		t.Fatalf("different additive sets should be distinct lines, got %d", len(cart.Items))
	}
}

func TestCartServiceUpdateQuantityZeroRemoves(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	item := latteItem()
	svc.AddItem("scope", item)
	cart := svc.UpdateQuantity("scope", item.ProductID, item.Size, item.Additives, 0)
	if len(cart.Items) != 0 {
		t.Fatalf("quantity 0 should remove the line, got %d lines", len(cart.Items))
	}

	svc.AddItem("scope", item)
	cart = svc.UpdateQuantity("scope", item.ProductID, item.Size, item.Additives, -3)
	if len(cart.Items) != 0 {
		t.Fatalf("negative quantity should remove the line, got %d lines", len(cart.Items))
	}
}

func TestCartServiceUpdateQuantityMissingLineNoop(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	svc.AddItem("scope", latteItem())
	cart := svc.UpdateQuantity("scope", 99, constants.SizeSmall, nil, 3)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("missing line update should be a no-op, got %+v", cart.Items)
	}
}

func TestCartServiceTotals(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	item := latteItem()
	item.Price = models.NewMoneyFromFloat(3.0)
	svc.AddItem("scope", item)
	svc.UpdateQuantity("scope", item.ProductID, item.Size, item.Additives, 2)

	discounted := latteItem()
	discounted.ProductID = 2
	discounted.Price = models.NewMoneyFromFloat(5.0)
	dp := models.NewMoneyFromFloat(3.0)
	discounted.DiscountPrice = &dp
	svc.AddItem("scope", discounted)

	summary := svc.Summary("scope")
	if summary.TotalItems != 3 {
		t.Fatalf("total items want 3 got %d", summary.TotalItems)
	}
	// 3.00×2 + 3.00（促销价生效）
	if summary.TotalPrice.String() != "9.00" {
		t.Fatalf("total price want 9.00 got %s", summary.TotalPrice.String())
	}

	cart := svc.GetCart("scope")
	discountTotal := svc.DiscountedTotal(cart)
	if discountTotal == nil {
		t.Fatalf("cart with discounted line should produce a discounted total")
	}
	if discountTotal.String() != "8.55" {
		t.Fatalf("discounted total want 8.55 got %s", discountTotal.String())
	}
}

func TestCartServiceDiscountedTotalNilWithoutDiscounts(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	svc.AddItem("scope", latteItem())
	cart := svc.GetCart("scope")
	if svc.DiscountedTotal(cart) != nil {
		t.Fatalf("cart without discounted lines should not produce a discounted total")
	}
}

func TestCartServiceCorruptStorageLoadsEmpty(t *testing.T) {
	svc, repo := setupCartServiceTest(t)

	if _, err := repo.Put("scope", constants.StorageKeyCart, "{not json"); err != nil {
		t.Fatalf("seed corrupt payload failed: %v", err)
	}
	cart := svc.GetCart("scope")
	if len(cart.Items) != 0 {
		t.Fatalf("corrupt payload should load as empty cart, got %+v", cart)
	}

	// 后续写入恢复正常
	cart = svc.AddItem("scope", latteItem())
	if len(cart.Items) != 1 {
		t.Fatalf("add after corrupt load should work, got %d lines", len(cart.Items))
	}
}

func TestCartServiceClearPreservesUserID(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	svc.AddItem("scope", latteItem())
	svc.SetUserID("scope", "42")
	cart := svc.ClearCart("scope")

	if len(cart.Items) != 0 {
		t.Fatalf("clear should remove all lines, got %d", len(cart.Items))
	}
	if cart.UserID != "42" {
		t.Fatalf("clear should preserve user id, got %q", cart.UserID)
	}
	if svc.GetUserID("scope") != "42" {
		t.Fatalf("persisted user id should survive clear")
	}
}

func TestCartServicePersistsAcrossInstances(t *testing.T) {
	svc, repo := setupCartServiceTest(t)

	svc.AddItem("scope", latteItem())

	reloaded := NewCartService(repo)
	cart := reloaded.GetCart("scope")
	if len(cart.Items) != 1 || cart.Items[0].ProductName != "Latte" {
		t.Fatalf("cart should survive service restart, got %+v", cart.Items)
	}
}

func TestCartServiceScopeIsolation(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	svc.AddItem("scope-a", latteItem())
	cartB := svc.GetCart("scope-b")
	if len(cartB.Items) != 0 {
		t.Fatalf("scopes should be isolated, scope-b got %d lines", len(cartB.Items))
	}
}
