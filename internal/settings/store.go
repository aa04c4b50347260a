package settings

import (
	"time"

	"internal-task-api/internal/cache"
	"internal-task-api/internal/database"
	"internal-task-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting keys consumed by policy hooks.
const (
	// KeyReportDeadline holds the weekly report deadline, e.g. "Fri 17:00".
	// Absent by default, in which case no report is ever late.
	KeyReportDeadline = "report.deadline"
)

const cacheTTL = time.Minute

// Store is a read-through accessor for system_settings rows. Lookups are
// cached briefly since settings change rarely but are read per request.
type Store struct {
	db    func() *gorm.DB
	cache *cache.TTLCache[string, string]
}

// Default reads through the shared database connection.
var Default = NewStore(database.GetDB)

// NewStore builds a Store over a connection provider. The provider is invoked
// per operation so tests can swap the underlying database.
func NewStore(db func() *gorm.DB) *Store {
	return &Store{db: db, cache: cache.New[string, string]()}
}

// Get returns the value for key, or false when the key is not set.
func (s *Store) Get(key string) (string, bool) {
	if v, ok := s.cache.Get(key); ok {
		return v, true
	}

	var setting models.SystemSetting
	if err := s.db().Where("key = ?", key).First(&setting).Error; err != nil {
		// Missing row and lookup failure both degrade to "not set";
		// policy defaults apply either way.
		return "", false
	}
	s.cache.Set(key, setting.Value, cacheTTL)
	return setting.Value, true
}

// Set upserts a setting and refreshes the cache.
func (s *Store) Set(key, value string) error {
	setting := models.SystemSetting{Key: key, Value: value}
	if err := s.db().Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error; err != nil {
		return err
	}
	s.cache.Set(key, value, cacheTTL)
	return nil
}

// Reset drops all cached values. Used by tests that swap the database.
func (s *Store) Reset() {
	s.cache.Clear()
}
