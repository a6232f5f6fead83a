package services

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/fortran01/loyalty-program-go/logging"
	"github.com/fortran01/loyalty-program-go/models"
)

// ErrAccountNotFound aborts a checkout before any write happens. Per-product
// problems are never errors; they are collected into the CheckoutResult.
var ErrAccountNotFound = errors.New("loyalty account not found")

// CheckoutResult is the wire-level outcome of a checkout call. The slices
// are always non-nil so they serialize as [] rather than null.
type CheckoutResult struct {
	TotalPointsEarned        int    `json:"total_points_earned"`
	InvalidProducts          []uint `json:"invalid_products"`
	ProductsMissingCategory  []uint `json:"products_missing_category"`
	PointEarningRulesMissing []uint `json:"point_earning_rules_missing"`
}

// LoyaltyService computes and records loyalty points for checkouts.
// fallbackCategoryID anchors the rule set used when a product's own category
// has no rules.
type LoyaltyService struct {
	store              Store
	fallbackCategoryID uint
}

func NewLoyaltyService(store Store, fallbackCategoryID uint) *LoyaltyService {
	return &LoyaltyService{store: store, fallbackCategoryID: fallbackCategoryID}
}

// Checkout processes productIDs in order for the given customer: each id is
// either converted into one ledger row plus points, or classified into one
// of the result's failure lists. The whole call runs in one storage
// transaction so the balance update cannot race a concurrent checkout for
// the same account.
func (s *LoyaltyService) Checkout(customerID uint, productIDs []uint) (*CheckoutResult, error) {
	result := &CheckoutResult{
		InvalidProducts:          []uint{},
		ProductsMissingCategory:  []uint{},
		PointEarningRulesMissing: []uint{},
	}

	err := s.store.Transaction(func(store Store) error {
		account, err := store.Accounts().FindByCustomerID(customerID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		now := time.Now()
		for _, productID := range productIDs {
			product, err := store.Products().FindByID(productID)
			if err != nil {
				return err
			}
			if product == nil {
				result.InvalidProducts = append(result.InvalidProducts, productID)
				continue
			}
			if product.CategoryID == nil {
				result.ProductsMissingCategory = append(result.ProductsMissingCategory, productID)
				continue
			}

			rule, err := s.resolveRule(store, *product.CategoryID)
			if err != nil {
				return err
			}
			if rule == nil {
				result.PointEarningRulesMissing = append(result.PointEarningRulesMissing, productID)
				continue
			}

			pointsEarned := computePoints(product.Price, rule.PointsPerDollar)
			if err := store.Ledger().Record(account.ID, product.ID, pointsEarned, now); err != nil {
				return err
			}
			result.TotalPointsEarned += pointsEarned
		}

		// The account is written even when the total is zero, matching the
		// one-update-per-call contract.
		return store.Accounts().AddPoints(account.ID, result.TotalPointsEarned)
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("checkout completed",
		zap.Uint("customer_id", customerID),
		zap.Int("products", len(productIDs)),
		zap.Int("points_earned", result.TotalPointsEarned),
		zap.Int("invalid_products", len(result.InvalidProducts)))

	return result, nil
}

// resolveRule picks the most recently started rule for the category, falling
// back to the configured fallback category. A nil rule with nil error means
// neither has any rules. Ties on start date are left to storage row order.
func (s *LoyaltyService) resolveRule(store Store, categoryID uint) (*models.PointEarningRule, error) {
	rule, err := store.Rules().FindLatestForCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if rule != nil {
		return rule, nil
	}
	return store.Rules().FindLatestForCategory(s.fallbackCategoryID)
}
