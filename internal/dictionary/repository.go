package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

const insertBatchSize = 500

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dictionary_sources (
		name VARCHAR(64) NOT NULL PRIMARY KEY,
		description VARCHAR(255) NOT NULL,
		triggers VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dictionary_words (
		source VARCHAR(64) NOT NULL,
		category VARCHAR(64) NOT NULL,
		position INTEGER NOT NULL,
		word VARCHAR(255) NOT NULL,
		PRIMARY KEY (source, category, position)
	)`,
}

// Repository stores dictionary sources.
type Repository interface {
	Sources(ctx context.Context) ([]SourceInfo, error)
	Load(ctx context.Context, name string) (*Dictionary, error)
	Save(ctx context.Context, dictionary *Dictionary) error
}

type sourceRow struct {
	Name        string `db:"name"`
	Description string `db:"description"`
	Triggers    string `db:"triggers"`
}

func (row sourceRow) info() SourceInfo {
	return SourceInfo{
		Name:        row.Name,
		Description: row.Description,
		Triggers:    strings.Fields(row.Triggers),
	}
}

type wordRow struct {
	Source   string `db:"source"`
	Category string `db:"category"`
	Position int    `db:"position"`
	Word     string `db:"word"`
}

// DBRepository implements Repository with MySQL or SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// EnsureSchema creates the dictionary tables if they do not exist.
func (r *DBRepository) EnsureSchema(ctx context.Context) error {
	for _, statement := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("db.ExecContext(create table) > %w", err)
		}
	}
	return nil
}

// Sources returns every stored source ordered by name.
func (r *DBRepository) Sources(ctx context.Context) ([]SourceInfo, error) {
	var rows []sourceRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT name, description, triggers FROM dictionary_sources ORDER BY name"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_sources) > %w", err)
	}
	sources := make([]SourceInfo, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, row.info())
	}
	return sources, nil
}

// Load reads a stored source by name or trigger.
func (r *DBRepository) Load(ctx context.Context, name string) (*Dictionary, error) {
	sources, err := r.Sources(ctx)
	if err != nil {
		return nil, err
	}
	var info *SourceInfo
	for i := range sources {
		if sources[i].Matches(name) {
			info = &sources[i]
			break
		}
	}
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}

	var rows []wordRow
	err = r.db.SelectContext(ctx, &rows,
		"SELECT source, category, position, word FROM dictionary_words WHERE source = ? ORDER BY category, position",
		info.Name)
	if errors.Is(err, sql.ErrNoRows) {
		rows = nil
	} else if err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_words) > %w", err)
	}

	raw := Raw{}
	for _, row := range rows {
		raw[row.Category] = append(raw[row.Category], row.Word)
	}
	return FromRaw(*info, raw)
}

// Save replaces the stored copy of a source.
func (r *DBRepository) Save(ctx context.Context, dictionary *Dictionary) error {
	info := dictionary.Info()
	rows := wordRows(info.Name, dictionary.Raw())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM dictionary_words WHERE source = ?", info.Name); err != nil {
		return fmt.Errorf("tx.ExecContext(delete dictionary_words) > %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM dictionary_sources WHERE name = ?", info.Name); err != nil {
		return fmt.Errorf("tx.ExecContext(delete dictionary_sources) > %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO dictionary_sources (name, description, triggers) VALUES (?, ?, ?)",
		info.Name, info.Description, strings.Join(info.Triggers, " ")); err != nil {
		return fmt.Errorf("tx.ExecContext(insert dictionary_sources) > %w", err)
	}

	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		if _, err := tx.NamedExecContext(ctx,
			"INSERT INTO dictionary_words (source, category, position, word) VALUES (:source, :category, :position, :word)",
			rows[start:end]); err != nil {
			return fmt.Errorf("tx.NamedExecContext(insert dictionary_words) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func wordRows(source string, raw Raw) []wordRow {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows []wordRow
	for _, key := range keys {
		for position, word := range raw[key] {
			rows = append(rows, wordRow{Source: source, Category: key, Position: position, Word: word})
		}
	}
	return rows
}
