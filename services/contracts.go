package services

import (
	"time"

	"github.com/fortran01/loyalty-program-go/models"
)

// Storage contracts consumed by the checkout service. Lookups return
// (nil, nil) when no row matches; a non-nil error always means the storage
// layer itself failed.

type AccountDirectory interface {
	FindByCustomerID(customerID uint) (*models.LoyaltyAccount, error)
	// AddPoints increments the account balance atomically in the store
	// (points = points + delta), never read-modify-write.
	AddPoints(accountID uint, delta int) error
}

type ProductCatalog interface {
	// FindByID returns the product with its category relation loaded.
	FindByID(id uint) (*models.Product, error)
}

type RuleCatalog interface {
	// FindLatestForCategory returns the rule with the latest start date for
	// the category. Validity windows are not filtered on.
	FindLatestForCategory(categoryID uint) (*models.PointEarningRule, error)
}

type Ledger interface {
	Record(accountID, productID uint, pointsEarned int, at time.Time) error
}

// Store bundles the storage contracts and scopes work in a transaction.
// Transaction runs fn against a Store bound to a single database
// transaction, committing on nil and rolling back on error.
type Store interface {
	Accounts() AccountDirectory
	Products() ProductCatalog
	Rules() RuleCatalog
	Ledger() Ledger
	Transaction(fn func(Store) error) error
}
