// Package sqlstore provides a SQLite-backed metadata store using the pure
// Go modernc.org/sqlite driver. One database file holds artifact records
// and type definitions; batched writes run inside a single transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
	_ "modernc.org/sqlite"

	"github.com/randalmurphal/lineage/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS artifact_types (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	version     TEXT NOT NULL DEFAULT '',
	properties  TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS artifacts (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	type_id           INTEGER NOT NULL REFERENCES artifact_types(id),
	uri               TEXT NOT NULL DEFAULT '',
	name              TEXT NOT NULL DEFAULT '',
	external_id       TEXT UNIQUE,
	state             TEXT NOT NULL DEFAULT '',
	properties        TEXT NOT NULL DEFAULT '{}',
	custom_properties TEXT NOT NULL DEFAULT '{}',
	create_time       INTEGER NOT NULL,
	last_update_time  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_artifacts_type_id ON artifacts(type_id);
`

// artifactColumns is the column list for artifact queries, matching scanRecord.
const artifactColumns = `id, type_id, uri, name, external_id, state,
	properties, custom_properties, create_time, last_update_time`

// Store is a SQLite-backed store.Store implementation.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and bootstraps the
// schema. The parent directory is created when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutArtifactType registers a type definition and returns its ID.
// Registering an already-known name returns the existing ID unchanged.
func (s *Store) PutArtifactType(ctx context.Context, t store.ArtifactType) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM artifact_types WHERE name = ?`, t.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("look up artifact type: %w", err)
	}

	props, err := json.Marshal(t.Properties)
	if err != nil {
		return 0, fmt.Errorf("encode type properties: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO artifact_types (name, version, properties) VALUES (?, ?, ?)`,
		t.Name, t.Version, string(props))
	if err != nil {
		return 0, fmt.Errorf("insert artifact type: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get artifact type id: %w", err)
	}
	return id, nil
}

// GetArtifactsAndTypesByIDs implements store.Store: one IN query for the
// records, one for the distinct referenced types.
func (s *Store) GetArtifactsAndTypesByIDs(ctx context.Context, ids []int64) ([]*store.Record, []store.ArtifactType, error) {
	distinct := distinctIDs(ids)
	if len(distinct) == 0 {
		return nil, nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+artifactColumns+` FROM artifacts WHERE id IN (`+placeholders(len(distinct))+`) ORDER BY id`,
		distinct...)
	if err != nil {
		return nil, nil, fmt.Errorf("query artifacts: %w", err)
	}
	defer rows.Close()

	var recs []*store.Record
	typeIDs := make(map[int64]bool)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scan artifact: %w", err)
		}
		recs = append(recs, rec)
		typeIDs[rec.TypeID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate artifacts: %w", err)
	}

	types, err := s.typesByIDs(ctx, typeIDs)
	if err != nil {
		return nil, nil, err
	}
	return recs, types, nil
}

// PutArtifacts implements store.Store. The batch runs in one transaction:
// either every record is applied or none is.
func (s *Store) PutArtifacts(ctx context.Context, recs []*store.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, rec := range recs {
		props, err := json.Marshal(rec.Properties)
		if err != nil {
			return fmt.Errorf("encode properties: %w", err)
		}
		custom, err := json.Marshal(rec.CustomProperties)
		if err != nil {
			return fmt.Errorf("encode custom properties: %w", err)
		}

		if rec.ID == 0 {
			rec.CreateTime = now
			rec.LastUpdateTime = now
			if rec.ExternalID == "" {
				eid, err := nanoid.New()
				if err != nil {
					return fmt.Errorf("generate external id: %w", err)
				}
				rec.ExternalID = eid
			}
			res, err := tx.ExecContext(ctx,
				`INSERT INTO artifacts (type_id, uri, name, external_id, state,
					properties, custom_properties, create_time, last_update_time)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				rec.TypeID, rec.URI, rec.Name, rec.ExternalID, rec.State,
				string(props), string(custom), rec.CreateTime.UnixNano(), rec.LastUpdateTime.UnixNano())
			if err != nil {
				return fmt.Errorf("insert artifact: %w", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("get artifact id: %w", err)
			}
			rec.ID = id
			continue
		}

		rec.LastUpdateTime = now
		res, err := tx.ExecContext(ctx,
			`UPDATE artifacts SET type_id = ?, uri = ?, name = ?, external_id = ?, state = ?,
				properties = ?, custom_properties = ?, last_update_time = ?
			WHERE id = ?`,
			rec.TypeID, rec.URI, rec.Name, rec.ExternalID, rec.State,
			string(props), string(custom), rec.LastUpdateTime.UnixNano(), rec.ID)
		if err != nil {
			return fmt.Errorf("update artifact %d: %w", rec.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update artifact %d: %w", rec.ID, err)
		}
		if n == 0 {
			return fmt.Errorf("update artifact %d: no such artifact", rec.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put: %w", err)
	}
	return nil
}

func (s *Store) typesByIDs(ctx context.Context, typeIDs map[int64]bool) ([]store.ArtifactType, error) {
	if len(typeIDs) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(typeIDs))
	for id := range typeIDs {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, version, properties FROM artifact_types WHERE id IN (`+placeholders(len(args))+`) ORDER BY id`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("query artifact types: %w", err)
	}
	defer rows.Close()

	var types []store.ArtifactType
	for rows.Next() {
		var t store.ArtifactType
		var props string
		if err := rows.Scan(&t.ID, &t.Name, &t.Version, &props); err != nil {
			return nil, fmt.Errorf("scan artifact type: %w", err)
		}
		if err := json.Unmarshal([]byte(props), &t.Properties); err != nil {
			return nil, fmt.Errorf("decode type properties: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifact types: %w", err)
	}
	return types, nil
}

// scanRecord scans a row into a Record.
func scanRecord(scanner interface{ Scan(...any) error }) (*store.Record, error) {
	var rec store.Record
	var externalID sql.NullString
	var props, custom string
	var createNS, updateNS int64
	err := scanner.Scan(
		&rec.ID, &rec.TypeID, &rec.URI, &rec.Name, &externalID, &rec.State,
		&props, &custom, &createNS, &updateNS,
	)
	if err != nil {
		return nil, err
	}
	rec.ExternalID = externalID.String
	if err := json.Unmarshal([]byte(props), &rec.Properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	if err := json.Unmarshal([]byte(custom), &rec.CustomProperties); err != nil {
		return nil, fmt.Errorf("decode custom properties: %w", err)
	}
	rec.CreateTime = time.Unix(0, createNS)
	rec.LastUpdateTime = time.Unix(0, updateNS)
	return &rec, nil
}

func distinctIDs(ids []int64) []any {
	seen := make(map[int64]bool, len(ids))
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
