package catalogdb

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"

	"channelrank/internal/channel"
)

// DB wraps a SQLite database used as a channel catalog source. It is
// one swappable catalog supplier; the ranking engine never sees it.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS channels (
	  seq INTEGER PRIMARY KEY AUTOINCREMENT,
	  id TEXT NOT NULL UNIQUE,
	  name TEXT NOT NULL,
	  topics TEXT NOT NULL
	);
	`)
	return err
}

// PutChannel upserts one channel. Topics are stored as JSON.
func (d *DB) PutChannel(ctx context.Context, c channel.Channel) error {
	tb, err := json.Marshal(c.Topics)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO channels(id, name, topics) VALUES(?,?,?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, topics=excluded.topics`,
		c.ID, c.Name, string(tb))
	return err
}

// PutChannels stores channels in order so a later load preserves the
// catalog sequence the ranking tie-break depends on.
func (d *DB) PutChannels(ctx context.Context, channels []channel.Channel) error {
	for _, c := range channels {
		if err := d.PutChannel(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// LoadChannels returns all channels in insertion order.
func (d *DB) LoadChannels(ctx context.Context) ([]channel.Channel, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT id, name, topics FROM channels ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []channel.Channel
	for rows.Next() {
		var c channel.Channel
		var topics string
		if err := rows.Scan(&c.ID, &c.Name, &topics); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(topics), &c.Topics); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
