package catalog

import (
	"github.com/verbquiz/api/internal/model"
	"gorm.io/gorm"
)

// Catalog exposes the immutable irregular-verb reference data. The id set is
// loaded once at construction since verbs never change after seeding.
type Catalog struct {
	db  *gorm.DB
	ids map[int64]struct{}
}

func New(db *gorm.DB) (*Catalog, error) {
	var ids []int64
	if err := db.Model(&model.Verb{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return &Catalog{db: db, ids: set}, nil
}

// ListVerbs returns every verb ordered alphabetically by infinitive.
func (c *Catalog) ListVerbs() ([]model.Verb, error) {
	var verbs []model.Verb
	if err := c.db.Order("infinitive ASC").Find(&verbs).Error; err != nil {
		return nil, err
	}
	return verbs, nil
}

// Has reports whether a verb id belongs to the seeded catalog.
func (c *Catalog) Has(verbID int64) bool {
	_, ok := c.ids[verbID]
	return ok
}

// Size returns the number of seeded verbs.
func (c *Catalog) Size() int {
	return len(c.ids)
}
