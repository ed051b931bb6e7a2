package store

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/models"
	"github.com/hostline/host-stand/utils"
)

// snapshotRowID: the floor lives in a single row.
const snapshotRowID = 1

// Store persists the floor snapshot through gorm.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Load reads the persisted snapshot. A missing or unreadable row falls back
// to an empty floor so a fresh install (or a corrupted blob) still starts.
func (s *Store) Load() floor.Snapshot {
	var row models.FloorSnapshot
	if err := s.DB.First(&row, snapshotRowID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("Failed to load floor snapshot: %v", err)
		}
		return floor.Snapshot{}
	}

	var snap floor.Snapshot
	if err := json.Unmarshal([]byte(row.Data), &snap); err != nil {
		utils.ErrorLogger.Printf("Malformed floor snapshot, starting empty: %v", err)
		return floor.Snapshot{}
	}
	return snap
}

// Save rewrites the snapshot row. Called from the floor's OnChange hook, so
// every successful mutation is durable before the next request is handled.
// Write errors are logged, not surfaced: the in-memory floor stays correct
// and the next mutation retries the write.
func (s *Store) Save(snap floor.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to encode floor snapshot: %v", err)
		return
	}

	row := models.FloorSnapshot{ID: snapshotRowID, Data: string(data)}
	if err := s.DB.Save(&row).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to persist floor snapshot: %v", err)
	}
}
