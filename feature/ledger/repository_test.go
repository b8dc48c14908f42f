package ledger

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"artifact-store/feature/artifacts"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

var transferColumns = []string{"id", "direction", "bucket", "object_key", "local_path", "size", "etag", "created_at"}

func TestRepository_Record(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `artifact_transfers`").
		WithArgs(sqlmock.AnyArg(), "upload", "ml", "models/model.pt", "/tmp/model.pt", int64(7), "abc", at).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Record(context.Background(), artifacts.TransferEvent{
		Direction: artifacts.DirectionUpload,
		Bucket:    "ml",
		Key:       "models/model.pt",
		LocalPath: "/tmp/model.pt",
		Size:      7,
		ETag:      "abc",
		At:        at,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `artifact_transfers`").WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err := repo.Record(context.Background(), artifacts.TransferEvent{Direction: artifacts.DirectionDownload, Bucket: "ml", Key: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(transferColumns).
		AddRow("id-2", "download", "ml", "dataset.zip", "/tmp/dataset.zip", 10, "", at).
		AddRow("id-1", "upload", "ml", "model.pt", "/tmp/model.pt", 7, "abc", at.Add(-time.Minute))
	mock.ExpectQuery("SELECT \\* FROM `artifact_transfers` WHERE bucket = \\? ORDER BY created_at DESC LIMIT").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "ml", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "id-2", got[0].ID)
	assert.Equal(t, "dataset.zip", got[0].Key)
	assert.Equal(t, int64(7), got[1].Size)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAllBuckets(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `artifact_transfers` ORDER BY created_at DESC LIMIT").
		WillReturnRows(sqlmock.NewRows(transferColumns))

	got, err := repo.List(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeature(t *testing.T) {
	assert.False(t, NewFeature(nil, zap.NewNop()).IsEnabled())

	db, _ := setupMockDB(t)
	f := NewFeature(NewRepository(db), zap.NewNop())
	assert.True(t, f.IsEnabled())
	assert.Equal(t, "ledger", f.Name())
}

func TestHandleList(t *testing.T) {
	db, mock := setupMockDB(t)
	app := fiber.New()
	require.NoError(t, NewFeature(NewRepository(db), zap.NewNop()).Load(app))

	t.Run("Rows", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `artifact_transfers` WHERE bucket = \\?").
			WillReturnRows(sqlmock.NewRows(transferColumns).AddRow("id-1", "upload", "ml", "a", "/a", 1, "", time.Now()))

		resp, err := app.Test(httptest.NewRequest("GET", "/ledger/transfers?bucket=ml&limit=1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `artifact_transfers`").WillReturnError(errors.New("db down"))

		resp, err := app.Test(httptest.NewRequest("GET", "/ledger/transfers", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
