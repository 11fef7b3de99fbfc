package repository

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"nexusforge/internal/model"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"
)

// newMockDB создает bun.DB поверх sqlmock
func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	return bun.NewDB(sqldb, pgdialect.New()), mock
}

func TestCollectionRepository_Load_MissingKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT (.+) FROM "nexusforge"\."collections"`).
		WillReturnError(sql.ErrNoRows)

	out := []model.SupportTicket{{ID: "preexisting"}}
	found := repo.Load(model.CollectionTickets, &out)

	assert.False(t, found)
	// Значение получателя не трогается, вызывающий остается на дефолте
	require.Len(t, out, 1)
	assert.Equal(t, "preexisting", out[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_Load_UndecodableValue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow(model.CollectionUsers, "{not json", time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "nexusforge"\."collections"`).
		WillReturnRows(rows)

	var out []model.User
	found := repo.Load(model.CollectionUsers, &out)

	assert.False(t, found)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_Load_RevivesProjectDates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, zap.NewNop())

	created := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	stored := []model.Project{
		{
			ID:        "proj_1",
			Name:      "Shop",
			Type:      model.ProjectWebsite,
			CreatedAt: created,
			Config: map[string]any{
				"orders": []any{
					map[string]any{
						"id":        "ord_1",
						"createdAt": created.Format(time.RFC3339),
						"total":     32.99,
					},
				},
			},
			HostingStatus: model.HostingUndeployed,
		},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow(model.CollectionProjects, string(data), time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "nexusforge"\."collections"`).
		WillReturnRows(rows)

	var out []model.Project
	found := repo.Load(model.CollectionProjects, &out)

	require.True(t, found)
	require.Len(t, out, 1)
	assert.True(t, created.Equal(out[0].CreatedAt))

	orders, ok := out[0].Config["orders"].([]any)
	require.True(t, ok)
	order, ok := orders[0].(map[string]any)
	require.True(t, ok)

	// createdAt внутри универсального дерева восстановлен в time.Time
	revived, ok := order["createdAt"].(time.Time)
	require.True(t, ok, "order createdAt should be revived, got %T", order["createdAt"])
	assert.True(t, created.Equal(revived))
	assert.Equal(t, 32.99, order["total"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_Save_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, zap.NewNop())

	mock.ExpectExec(`INSERT INTO "nexusforge"\."collections" (.+) ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED\.value`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo.Save(model.CollectionBannedIPs, []string{"10.0.0.1"})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_Save_ErrorIsSwallowed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, zap.NewNop())

	mock.ExpectExec(`INSERT INTO "nexusforge"\."collections"`).
		WillReturnError(sql.ErrConnDone)

	// Ошибка записи логируется и не прерывает вызывающего
	repo.Save(model.CollectionLogs, []model.SystemLog{})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecodeStored_RoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	value := map[string]any{
		"id":        "tick_1",
		"createdAt": created,
		"status":    "Open",
		"replies": []any{
			map[string]any{"timestamp": created.Add(time.Hour), "text": "hello"},
		},
	}

	data, err := json.Marshal(value)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, DecodeStored(data, &out))

	revived, ok := out["createdAt"].(time.Time)
	require.True(t, ok)
	assert.True(t, created.Equal(revived))

	reply := out["replies"].([]any)[0].(map[string]any)
	replyTS, ok := reply["timestamp"].(time.Time)
	require.True(t, ok)
	assert.True(t, created.Add(time.Hour).Equal(replyTS))
	assert.Equal(t, "hello", reply["text"])
}

func TestReviveTimestamps_LeavesNonTimestampsAlone(t *testing.T) {
	tree := map[string]any{
		"createdAt": "not a timestamp",
		"timestamp": 1234.0,
		"title":     "2025-03-15T09:00:00Z",
	}

	ReviveTimestamps(&tree)

	// Недекодируемые значения и поля с другими именами не трогаются
	assert.Equal(t, "not a timestamp", tree["createdAt"])
	assert.Equal(t, 1234.0, tree["timestamp"])
	assert.Equal(t, "2025-03-15T09:00:00Z", tree["title"])
}
