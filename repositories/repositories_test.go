package repositories_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/fortran01/loyalty-program-go/database"
	"github.com/fortran01/loyalty-program-go/models"
	"github.com/fortran01/loyalty-program-go/repositories"
	"github.com/fortran01/loyalty-program-go/services"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	database.Migrate(db)
	return db
}

func date(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func TestEnsureFallbackCategoryIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	first, err := repositories.EnsureFallbackCategory(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repositories.EnsureFallbackCategory(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected one fallback category, got ids %d and %d", first.ID, second.ID)
	}
	if first.Name != models.FallbackCategoryName {
		t.Errorf("expected name %q, got %q", models.FallbackCategoryName, first.Name)
	}
}

func TestFindLatestRuleForCategory(t *testing.T) {
	db := openTestDB(t)
	store := repositories.NewGormStore(db)

	category := models.Category{Name: "Electronics"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	older := models.PointEarningRule{
		CategoryID: category.ID, PointsPerDollar: 3,
		StartDate: date(2020), EndDate: date(2099),
	}
	newer := models.PointEarningRule{
		CategoryID: category.ID, PointsPerDollar: 5,
		StartDate: date(2024), EndDate: date(2024),
	}
	for _, rule := range []*models.PointEarningRule{&older, &newer} {
		if err := db.Create(rule).Error; err != nil {
			t.Fatalf("failed to create rule: %v", err)
		}
	}

	rule, err := store.Rules().FindLatestForCategory(category.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule == nil {
		t.Fatal("expected a rule")
	}
	// The 2024 rule already ended, but it started last and still wins.
	if rule.PointsPerDollar != 5 {
		t.Errorf("expected the most recently started rule, got pointsPerDollar=%d", rule.PointsPerDollar)
	}

	missing, err := store.Rules().FindLatestForCategory(category.ID + 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for category without rules, got %+v", missing)
	}
}

func TestAccountDirectory(t *testing.T) {
	db := openTestDB(t)
	store := repositories.NewGormStore(db)

	customer := models.Customer{Name: "John Doe", Email: "john.doe@example.com"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	account := models.LoyaltyAccount{CustomerID: customer.ID, Points: 100}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	found, err := store.Accounts().FindByCustomerID(customer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.ID != account.ID {
		t.Fatalf("expected account %d, got %+v", account.ID, found)
	}

	missing, err := store.Accounts().FindByCustomerID(customer.ID + 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown customer, got %+v", missing)
	}

	if err := store.Accounts().AddPoints(account.ID, 2415); err != nil {
		t.Fatalf("AddPoints failed: %v", err)
	}
	if err := store.Accounts().AddPoints(account.ID, 0); err != nil {
		t.Fatalf("zero AddPoints failed: %v", err)
	}

	var reloaded models.LoyaltyAccount
	if err := db.First(&reloaded, account.ID).Error; err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if reloaded.Points != 2515 {
		t.Errorf("expected balance 2515, got %d", reloaded.Points)
	}
}

func TestLedgerRecord(t *testing.T) {
	db := openTestDB(t)
	store := repositories.NewGormStore(db)

	at := time.Now()
	if err := store.Ledger().Record(1, 2, 15, at); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	var rows []models.PointTransaction
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("failed to load transactions: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(rows))
	}
	row := rows[0]
	if row.LoyaltyAccountID != 1 || row.ProductID != 2 || row.PointsEarned != 15 {
		t.Errorf("unexpected transaction row: %+v", row)
	}
	if row.Reference == "" {
		t.Error("expected a non-empty ledger reference")
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	store := repositories.NewGormStore(db)

	err := store.Transaction(func(tx services.Store) error {
		if err := tx.Ledger().Record(1, 2, 15, time.Now()); err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected the transaction to fail")
	}

	var count int
	if err := db.Model(&models.PointTransaction{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to discard the ledger row, found %d", count)
	}
}

func TestTransactionCommits(t *testing.T) {
	db := openTestDB(t)
	store := repositories.NewGormStore(db)

	err := store.Transaction(func(tx services.Store) error {
		return tx.Ledger().Record(1, 2, 15, time.Now())
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	if err := db.Model(&models.PointTransaction{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 committed ledger row, found %d", count)
	}
}

func TestProductCatalogPreloadsCategory(t *testing.T) {
	db := openTestDB(t)
	store := repositories.NewGormStore(db)

	category := models.Category{Name: "Books"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	product := models.Product{Name: "Science Fiction Book", Price: 15.99, CategoryID: &category.ID}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	orphan := models.Product{Name: "Orphan", Price: 10.00}
	if err := db.Create(&orphan).Error; err != nil {
		t.Fatalf("failed to create orphan product: %v", err)
	}

	found, err := store.Products().FindByID(product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.Category == nil || found.Category.Name != "Books" {
		t.Fatalf("expected product with category preloaded, got %+v", found)
	}

	noCategory, err := store.Products().FindByID(orphan.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if noCategory == nil || noCategory.CategoryID != nil {
		t.Fatalf("expected product without category, got %+v", noCategory)
	}

	missing, err := store.Products().FindByID(9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown product, got %+v", missing)
	}
}
