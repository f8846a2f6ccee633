// Package storage keeps a SQLite full-text index over publications.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	_ "modernc.org/sqlite"

	"github.com/vilab/labsite/internal/publication"
)

// Index is a full-text index of a publication list. Positions in the list
// are kept so search results come back in list order.
type Index struct {
	db *sql.DB
}

// OpenIndex opens or creates an index at path. An empty path keeps the
// index in memory.
func OpenIndex(path string) (*Index, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// one connection: SQLite doesn't support concurrent writes, and an
	// in-memory database lives only as long as its connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Index{db: db}, nil
}

// Close closes the index.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS pubs (
			pos INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			venue TEXT,
			year INTEGER,
			type TEXT,
			record_json TEXT NOT NULL
		);

		CREATE VIRTUAL TABLE IF NOT EXISTS pubs_fts USING fts5(
			pos UNINDEXED,
			title,
			authors,
			keywords,
			tokenize = 'trigram'
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild replaces the indexed publications with pubs. Returns the number
// of indexed records.
func (ix *Index) Rebuild(ctx context.Context, pubs []publication.Publication) (int, error) {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pubs"); err != nil {
		return 0, fmt.Errorf("clearing pubs table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM pubs_fts"); err != nil {
		return 0, fmt.Errorf("clearing pubs_fts table: %w", err)
	}

	pubsStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pubs (pos, title, venue, year, type, record_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing pubs insert: %w", err)
	}
	defer pubsStmt.Close()

	ftsStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pubs_fts (pos, title, authors, keywords)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, p := range pubs {
		record, err := json.Marshal(p)
		if err != nil {
			return 0, fmt.Errorf("marshaling publication %d: %w", i, err)
		}
		if _, err := pubsStmt.ExecContext(ctx, i, p.Title, p.Venue, publication.YearOf(p), string(p.Type), string(record)); err != nil {
			return 0, fmt.Errorf("inserting publication %d: %w", i, err)
		}
		if _, err := ftsStmt.ExecContext(ctx, i, titleText(p), authorsText(p), strings.Join(p.Keywords, ", ")); err != nil {
			return 0, fmt.Errorf("inserting fts for publication %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(pubs), nil
}

func titleText(p publication.Publication) string {
	if p.TitleKor == "" {
		return p.Title
	}
	return p.Title + " " + p.TitleKor
}

func authorsText(p publication.Publication) string {
	names := make([]string, 0, len(p.Authors)+len(p.AuthorsKor))
	names = append(names, p.Authors...)
	names = append(names, p.AuthorsKor...)
	return strings.Join(names, ", ")
}

// Search returns the publications containing every term of query, in
// list order. Terms match anywhere inside a word, so Korean names match by
// given name alone. A term may be restricted to one column with an
// "author:", "title:" or "keyword:" prefix. A blank query matches
// everything.
func (ix *Index) Search(ctx context.Context, query string) ([]publication.Publication, error) {
	terms := parseTerms(query)
	if len(terms) == 0 {
		return ix.all(ctx)
	}

	clauses := make([]string, 0, len(terms))
	var args []any
	for _, t := range terms {
		clause, targs := t.clause()
		clauses = append(clauses, "pos IN (SELECT pos FROM pubs_fts WHERE "+clause+")")
		args = append(args, targs...)
	}

	rows, err := ix.db.QueryContext(ctx, `
		SELECT pos, record_json
		FROM pubs
		WHERE `+strings.Join(clauses, " AND ")+`
		ORDER BY pos`, args...)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanPublications(rows)
}

func (ix *Index) all(ctx context.Context) ([]publication.Publication, error) {
	rows, err := ix.db.QueryContext(ctx, `SELECT pos, record_json FROM pubs ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("listing publications: %w", err)
	}
	defer rows.Close()

	return scanPublications(rows)
}

func scanPublications(rows *sql.Rows) ([]publication.Publication, error) {
	var pubs []publication.Publication
	for rows.Next() {
		var pos int
		var record string
		if err := rows.Scan(&pos, &record); err != nil {
			return nil, err
		}
		var p publication.Publication
		if err := json.Unmarshal([]byte(record), &p); err != nil {
			return nil, fmt.Errorf("parsing publication %d: %w", pos, err)
		}
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}

// fieldColumns maps search prefixes to FTS columns.
var fieldColumns = map[string]string{
	"author":  "authors",
	"title":   "title",
	"keyword": "keywords",
}

// searchColumns are matched by a term without a field prefix.
var searchColumns = []string{"title", "authors", "keywords"}

// minTrigram is the shortest term the trigram index can match.
const minTrigram = 3

type term struct {
	column string // "" for all columns
	text   string
}

// parseTerms splits free text on whitespace into search terms. Leading
// and trailing punctuation is dropped; terms left empty are skipped.
func parseTerms(text string) []term {
	var terms []term
	for _, word := range strings.Fields(text) {
		column := ""
		if field, value, ok := strings.Cut(word, ":"); ok {
			if c, known := fieldColumns[strings.ToLower(field)]; known {
				column, word = c, value
			}
		}
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}
		terms = append(terms, term{column: column, text: word})
	}
	return terms
}

// clause returns the WHERE condition on pubs_fts for t with its
// arguments. Terms long enough for the trigram index use MATCH; shorter
// ones fall back to LIKE.
func (t term) clause() (string, []any) {
	if utf8.RuneCountInString(t.text) >= minTrigram {
		expr := `"` + strings.ReplaceAll(t.text, `"`, `""`) + `"`
		if t.column != "" {
			expr = t.column + ":" + expr
		}
		return "pubs_fts MATCH ?", []any{expr}
	}

	columns := searchColumns
	if t.column != "" {
		columns = []string{t.column}
	}
	pattern := "%" + likeEscaper.Replace(t.text) + "%"
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		conds[i] = c + ` LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
