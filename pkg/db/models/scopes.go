package models

import "gorm.io/gorm"

// Active and Trashed are the two derived views over the soft-delete flag.
// Every listing and report goes through Active; only the trash screens use
// Trashed. The filter is deliberately explicit rather than gorm.DeletedAt
// magic so trash queries and restores stay plain updates.

func Active(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

func Trashed(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NOT NULL")
}
