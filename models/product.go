package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"` // owner
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	PriceCents  int64     `gorm:"not null" json:"price_cents"`
	Size        string    `json:"size,omitempty"`
	Image       string    `json:"image,omitempty"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Product) PublicURL() string {
	return "/product/" + p.Slug
}
