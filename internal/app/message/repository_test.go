package message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var messageColumns = []string{"id", "name", "message", "user_id", "timestamp"}

func int64Ptr(v int64) *int64 { return &v }

func TestRepositoryCreate(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("insert returns stored message", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(messageColumns).
			AddRow(int64(5), "alice", "hello board", int64Ptr(1), createdAt)
		mock.ExpectQuery(`INSERT INTO messages`).
			WithArgs("alice", "hello board", int64(1)).
			WillReturnRows(rows)

		repo := NewRepository(mock)
		got, err := repo.Create(context.Background(), "alice", "hello board", 1)

		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, "alice", got.AuthorName)
		assert.Equal(t, "hello board", got.Body)
		require.NotNil(t, got.OwnerUserID)
		assert.Equal(t, int64(1), *got.OwnerUserID)
		assert.Equal(t, createdAt, got.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO messages`).
			WithArgs("alice", "hello board", int64(1)).
			WillReturnError(errors.New("connection refused"))

		repo := NewRepository(mock)
		_, err = repo.Create(context.Background(), "alice", "hello board", 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryListAll(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      []Message
		wantErr   bool
	}{
		{
			name: "messages come back newest first with legacy rows intact",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(messageColumns).
					AddRow(int64(2), "bob", "second", int64Ptr(7), createdAt.Add(time.Minute)).
					AddRow(int64(1), "alice", "first", nil, createdAt)
				mock.ExpectQuery(`SELECT id, name, message, user_id, timestamp\s+FROM messages\s+ORDER BY id DESC`).
					WillReturnRows(rows)
			},
			want: []Message{
				{ID: 2, AuthorName: "bob", Body: "second", OwnerUserID: int64Ptr(7), CreatedAt: createdAt.Add(time.Minute)},
				{ID: 1, AuthorName: "alice", Body: "first", OwnerUserID: nil, CreatedAt: createdAt},
			},
		},
		{
			name: "empty board returns empty slice, not nil",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, message, user_id, timestamp\s+FROM messages\s+ORDER BY id DESC`).
					WillReturnRows(pgxmock.NewRows(messageColumns))
			},
			want: []Message{},
		},
		{
			name: "query failure is wrapped",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, message, user_id, timestamp\s+FROM messages\s+ORDER BY id DESC`).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewRepository(mock)
			got, err := repo.ListAll(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestRepositoryGetByID(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("existing message is returned", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(messageColumns).
			AddRow(int64(3), "alice", "hello", int64Ptr(1), createdAt)
		mock.ExpectQuery(`SELECT id, name, message, user_id, timestamp\s+FROM messages\s+WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		repo := NewRepository(mock)
		got, err := repo.GetByID(context.Background(), 3)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(3), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name, message, user_id, timestamp\s+FROM messages\s+WHERE id = \$1`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		got, err := repo.GetByID(context.Background(), 404)

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryUpdateBody(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "updates existing row",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE messages SET message = \$1 WHERE id = \$2`).
					WithArgs("revised", int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "row deleted concurrently reports not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE messages SET message = \$1 WHERE id = \$2`).
					WithArgs("revised", int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewRepository(mock)
			err = repo.UpdateBody(context.Background(), 3, "revised")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestRepositoryDeleteByID(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "deletes existing row",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM messages WHERE id = \$1`).
					WithArgs(int64(3)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "row deleted concurrently reports not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM messages WHERE id = \$1`).
					WithArgs(int64(3)).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage failure is wrapped",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM messages WHERE id = \$1`).
					WithArgs(int64(3)).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewRepository(mock)
			err = repo.DeleteByID(context.Background(), 3)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}
