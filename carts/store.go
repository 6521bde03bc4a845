package carts

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
)

// Store is the persistence surface the cart logic runs against. The GORM
// implementation below is the real one; tests substitute fakes.
type Store interface {
	// Transact runs fn against a transaction-scoped Store. fn's writes
	// commit as one unit; any error rolls them all back.
	Transact(fn func(Store) error) error

	ProductExists(productID uint) (bool, error)
	ProductsByID(ids []uint) (map[uint]models.Product, error)

	Line(userID, productID uint) (*models.CartItem, error)
	Lines(userID uint) ([]models.CartItem, error)
	UpsertLine(userID, productID uint, quantityDelta int) error
	DeleteLine(userID, productID uint) error
	ClearLines(userID uint) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Transact(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) ProductExists(productID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&n).Error
	return n > 0, err
}

func (s *gormStore) ProductsByID(ids []uint) (map[uint]models.Product, error) {
	products := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	var rows []models.Product
	if err := s.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		products[p.ID] = p
	}
	return products, nil
}

func (s *gormStore) Line(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *gormStore) Lines(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at").
		Find(&items).Error
	return items, err
}

// UpsertLine adds quantityDelta to the (user, product) line, creating it when
// absent. The composite unique index plus ON CONFLICT turns concurrent
// first-adds into increments instead of duplicate rows.
func (s *gormStore) UpsertLine(userID, productID uint, quantityDelta int) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantityDelta,
		AddedAt:   time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", quantityDelta),
			"added_at": time.Now(),
		}),
	}).Create(&item).Error
}

func (s *gormStore) DeleteLine(userID, productID uint) error {
	result := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) ClearLines(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
