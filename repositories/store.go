package repositories

import (
	"github.com/jinzhu/gorm"

	"github.com/fortran01/loyalty-program-go/models"
	"github.com/fortran01/loyalty-program-go/services"
)

// GormStore implements services.Store over a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Accounts() services.AccountDirectory { return &accountRepository{db: s.db} }
func (s *GormStore) Products() services.ProductCatalog   { return &productRepository{db: s.db} }
func (s *GormStore) Rules() services.RuleCatalog         { return &ruleRepository{db: s.db} }
func (s *GormStore) Ledger() services.Ledger             { return &transactionRepository{db: s.db} }

// Transaction runs fn against a store bound to one database transaction,
// committing on nil and rolling back on error or panic.
func (s *GormStore) Transaction(fn func(services.Store) error) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()
	if err := fn(&GormStore{db: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// EnsureFallbackCategory looks up the fallback rule category, creating it on
// first start. Its id replaces the magic sentinel the rule fallback would
// otherwise need.
func EnsureFallbackCategory(db *gorm.DB) (*models.Category, error) {
	var category models.Category
	err := db.Where(models.Category{Name: models.FallbackCategoryName}).
		FirstOrCreate(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
