package contacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestMemoryCheckpointStore(t *testing.T) {
	store := NewMemoryCheckpointStore()
	ctx := context.Background()

	_, ok, err := store.Load(ctx, CheckpointRecent)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, CheckpointRecent, fixedNow))
	got, ok, _ := store.Load(ctx, CheckpointRecent)
	assert.True(t, ok)
	assert.Equal(t, fixedNow, got)
}

func TestGormCheckpointStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"name", "checked_at", "updated_at"}).
			AddRow(CheckpointRecent, fixedNow, fixedNow)
		mock.ExpectQuery("SELECT \\* FROM `sync_checkpoints` WHERE name = \\?").
			WillReturnRows(rows)

		got, ok, err := NewGormCheckpointStore(db).Load(ctx, CheckpointRecent)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, fixedNow, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `sync_checkpoints`").
			WillReturnRows(sqlmock.NewRows([]string{"name", "checked_at", "updated_at"}))

		_, ok, err := NewGormCheckpointStore(db).Load(ctx, CheckpointRecent)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `sync_checkpoints`").
			WillReturnError(errors.New("connection lost"))

		_, _, err := NewGormCheckpointStore(db).Load(ctx, CheckpointRecent)
		assert.ErrorContains(t, err, "connection lost")
	})
}

func TestGormCheckpointStore_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_checkpoints` .* ON DUPLICATE KEY UPDATE").
		WithArgs(CheckpointRecent, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := NewGormCheckpointStore(db).Save(context.Background(), CheckpointRecent, fixedNow.In(time.FixedZone("MSK", 3*3600)))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UsesGormCheckpointStore(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `sync_checkpoints`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "checked_at", "updated_at"}).
			AddRow(CheckpointRecent, fixedNow.Add(-time.Hour), fixedNow))

	lister := &fakeLister{}
	svc := newTestService(lister, &fakeUpdater{}, NewGormCheckpointStore(db))
	require.NoError(t, svc.Init(context.Background()))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_checkpoints`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	_, err := svc.CheckRecent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []time.Time{fixedNow.Add(-time.Hour)}, lister.sinces)
	assert.NoError(t, mock.ExpectationsWereMet())
}
