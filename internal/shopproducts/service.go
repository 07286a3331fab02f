package shopproducts

import (
	"context"
	"fmt"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
)

// Service manages which products a shop offers.
type Service interface {
	ListForShop(ctx context.Context, shopID int64) ([]ShopProductDTO, error)
	ListAvailable(ctx context.Context, shopID int64) ([]AvailableProductDTO, error)
	Add(ctx context.Context, shopID, productID int64) (*LinkDTO, error)
	Remove(ctx context.Context, shopID, productID int64) error
}

type repository interface {
	ListForShop(ctx context.Context, shopID int64) ([]Row, error)
	ListAvailable(ctx context.Context, shopID int64) ([]models.Product, error)
	Add(ctx context.Context, shopID, productID int64) (*models.ShopProduct, error)
	Remove(ctx context.Context, shopID, productID int64) (bool, error)
	ShopExists(ctx context.Context, shopID int64) (bool, error)
}

type service struct {
	repo              repository
	lowStockThreshold int
}

func NewService(repo repository, lowStockThreshold int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shop product repository required")
	}
	return &service{repo: repo, lowStockThreshold: lowStockThreshold}, nil
}

// ListForShop returns an empty list for a shop that no longer exists.
func (s *service) ListForShop(ctx context.Context, shopID int64) ([]ShopProductDTO, error) {
	rows, err := s.repo.ListForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]ShopProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newShopProductDTO(&rows[i], s.lowStockThreshold))
	}
	return out, nil
}

// ListAvailable is advisory; a concurrent add can still make an entry stale.
func (s *service) ListAvailable(ctx context.Context, shopID int64) ([]AvailableProductDTO, error) {
	exists, err := s.repo.ShopExists(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, pkgerrors.NotFound("shop")
	}

	rows, err := s.repo.ListAvailable(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]AvailableProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newAvailableProductDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Add(ctx context.Context, shopID, productID int64) (*LinkDTO, error) {
	link, err := s.repo.Add(ctx, shopID, productID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeConflict) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "product already added to this shop")
		}
		if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "shop or product does not exist").
				WithDetails(map[string]string{"product_id": "must reference an existing product", "shop_id": "must reference an existing shop"})
		}
		return nil, err
	}
	return &LinkDTO{ID: link.ID, ShopID: link.ShopID, ProductID: link.ProductID, CreatedAt: link.CreatedAt}, nil
}

// Remove is idempotent: removing a missing association succeeds.
func (s *service) Remove(ctx context.Context, shopID, productID int64) error {
	_, err := s.repo.Remove(ctx, shopID, productID)
	return err
}
