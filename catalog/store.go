package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/slugs"
)

// ErrSlugConflict is returned when even the retried insert hits the slug
// unique index. The caller reports failure; nothing was written.
var ErrSlugConflict = errors.New("catalog: could not assign a unique slug")

// Store owns product persistence, including slug assignment on create.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create persists a new product. A missing slug is derived from the title;
// if the insert loses a slug race and hits the unique index, the slug is
// recomputed once against current state and the insert retried.
func (s *Store) Create(p *models.Product) error {
	return createProduct(p, s.SlugExists, func(p *models.Product) error {
		return s.db.Create(p).Error
	})
}

// createProduct keeps the retry choreography separate from GORM so it can be
// exercised with plain fakes.
func createProduct(p *models.Product, taken func(string) bool, insert func(*models.Product) error) error {
	if p.Slug == "" {
		p.Slug = slugs.Unique(p.Title, taken)
	}
	err := insert(p)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	p.Slug = slugs.Unique(p.Title, taken)
	if err := insert(p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugConflict
		}
		return err
	}
	return nil
}

// Update saves edits to an existing product. The slug is left untouched
// unless regenerateSlug is set, in which case it is recomputed from the
// current title through the same collision probe used at create time.
func (s *Store) Update(p *models.Product, regenerateSlug bool) error {
	if regenerateSlug {
		p.Slug = slugs.Unique(p.Title, s.SlugExists)
	}
	err := s.db.Save(p).Error
	if regenerateSlug && errors.Is(err, gorm.ErrDuplicatedKey) {
		p.Slug = slugs.Unique(p.Title, s.SlugExists)
		if err = s.db.Save(p).Error; errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugConflict
		}
	}
	return err
}

func (s *Store) Delete(p *models.Product) error {
	return s.db.Delete(p).Error
}

func (s *Store) SlugExists(candidate string) bool {
	var n int64
	s.db.Model(&models.Product{}).Where("slug = ?", candidate).Count(&n)
	return n > 0
}

func (s *Store) BySlug(slug string) (*models.Product, error) {
	var p models.Product
	if err := s.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// All returns the catalog newest-first.
func (s *Store) All() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("created_at DESC").Find(&products).Error
	return products, err
}
