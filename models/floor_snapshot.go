package models

import "time"

// FloorSnapshot is the persisted floor state: one row holding the full JSON
// snapshot, rewritten after every mutation. Concurrent hosts get
// last-writer-wins; the engine does not arbitrate beyond that.
type FloorSnapshot struct {
	ID        uint   `gorm:"primaryKey"`
	Data      string `gorm:"type:longtext;not null"`
	UpdatedAt time.Time
}
