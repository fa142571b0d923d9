// Package model holds the mutable GORM representations of the domain
// entities, one table per model, snake_case columns. Nothing outside the
// persistence layer imports this package.
package model

import "time"

// Base is embedded by every model. The soft-delete column is NOT part of
// Base and is NOT gorm.DeletedAt: the active/history distinction is an
// explicit Scope argument on every query, never an implicit standing
// filter (see repository.Scope).
type Base struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement"          json:"id"`
	CreatedOn        time.Time  `gorm:"column:created_on;not null"                  json:"created_on"`
	UpdatedOn        *time.Time `gorm:"column:updated_on"                           json:"updated_on"`
	ConcurrencyToken string     `gorm:"column:concurrency_token;type:varchar(36);not null" json:"concurrency_token"`
}

// Meta exposes the bookkeeping fields to the generic executors, which
// only know the concrete model type through a binding.
func (b *Base) Meta() *Base { return b }
