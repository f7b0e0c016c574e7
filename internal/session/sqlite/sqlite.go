package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/goserg/bizness/internal/migrate"
	"github.com/goserg/bizness/internal/session"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Backend struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ session.Backend = (*Backend)(nil)

func New(l *logrus.Logger, fileName string) (*Backend, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "session-sqlite",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrate.UpSessionDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("session storage connected")
	return &Backend{
		db:  db,
		log: log,
	}, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT value FROM session_slots WHERE slot_key = ?`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO session_slots (slot_key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	return err
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	_, err := b.db.ExecContext(ctx, `DELETE FROM session_slots WHERE slot_key = ?`, key)
	return err
}

func (b *Backend) Close() error {
	return b.db.Close()
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}
