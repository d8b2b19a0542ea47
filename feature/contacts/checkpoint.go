package contacts

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckpointRecent names the checkpoint of the recent-contacts check.
const CheckpointRecent = "recent"

// CheckpointStore persists the start time of the last successful check.
type CheckpointStore interface {
	// Load returns the stored time and whether one exists.
	Load(ctx context.Context, name string) (time.Time, bool, error)
	// Save stores t under name, replacing any previous value.
	Save(ctx context.Context, name string, t time.Time) error
}

// MemoryCheckpointStore keeps checkpoints for the lifetime of the process.
type MemoryCheckpointStore struct {
	mu     sync.Mutex
	points map[string]time.Time
}

// NewMemoryCheckpointStore creates an empty in-memory store.
func NewMemoryCheckpointStore() *MemoryCheckpointStore {
	return &MemoryCheckpointStore{points: make(map[string]time.Time)}
}

func (m *MemoryCheckpointStore) Load(ctx context.Context, name string) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.points[name]
	return t, ok, nil
}

func (m *MemoryCheckpointStore) Save(ctx context.Context, name string, t time.Time) error {
	m.mu.Lock()
	m.points[name] = t
	m.mu.Unlock()
	return nil
}

// Checkpoint is the database row of a checkpoint.
type Checkpoint struct {
	Name      string    `gorm:"column:name;primaryKey;size:64"`
	CheckedAt time.Time `gorm:"column:checked_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name used by Checkpoint.
func (Checkpoint) TableName() string {
	return "sync_checkpoints"
}

// GormCheckpointStore keeps checkpoints in MySQL so restarts resume where they left off.
type GormCheckpointStore struct {
	db *gorm.DB
}

// NewGormCheckpointStore creates a store over db.
func NewGormCheckpointStore(db *gorm.DB) *GormCheckpointStore {
	return &GormCheckpointStore{db: db}
}

// Migrate creates or updates the checkpoint table.
func (g *GormCheckpointStore) Migrate(ctx context.Context) error {
	return g.db.WithContext(ctx).AutoMigrate(&Checkpoint{})
}

func (g *GormCheckpointStore) Load(ctx context.Context, name string) (time.Time, bool, error) {
	var cp Checkpoint
	err := g.db.WithContext(ctx).Where("name = ?", name).Take(&cp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return cp.CheckedAt, true, nil
}

func (g *GormCheckpointStore) Save(ctx context.Context, name string, t time.Time) error {
	cp := Checkpoint{Name: name, CheckedAt: t.UTC()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&cp).Error
}
