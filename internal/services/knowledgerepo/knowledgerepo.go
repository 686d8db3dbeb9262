package knowledgerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const (
	schemaName = "cruise_bot"
	tableName  = schemaName + ".knowledge_base"
)

// Entry is a single question/answer pair.
type Entry struct {
	ID       int64  `boil:"id" json:"-"`
	Question string `boil:"question" json:"question"`
	Answer   string `boil:"answer" json:"answer"`
}

// Repository reads and writes the knowledge base table.
type Repository struct {
	db boil.ContextExecutor
}

// NewRepository creates a new Repository.
func NewRepository(db boil.ContextExecutor) *Repository {
	return &Repository{db: db}
}

// Ping checks that the database answers a trivial query.
func (r *Repository) Ping(ctx context.Context) error {
	if _, err := queries.Raw("SELECT 1").ExecContext(ctx, r.db); err != nil {
		return richerrors.Error{
			ExternalMsg: "Database is not reachable",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return nil
}

// Insert appends a new entry. Duplicate questions are allowed.
func (r *Repository) Insert(ctx context.Context, question, answer string) error {
	_, err := queries.Raw(
		"INSERT INTO "+tableName+" (question, answer) VALUES ($1, $2)",
		question, answer,
	).ExecContext(ctx, r.db)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Error saving knowledge entry",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return nil
}

// ListAll returns every entry in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]*Entry, error) {
	var entries []*Entry
	err := queries.Raw(
		"SELECT id, question, answer FROM " + tableName + " ORDER BY id",
	).Bind(ctx, r.db, &entries)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, richerrors.Error{
			ExternalMsg: "Error listing knowledge entries",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	if entries == nil {
		entries = make([]*Entry, 0)
	}
	return entries, nil
}

// FindMatch returns the first entry whose question contains fragment, ignoring case.
// The stored question must contain the fragment, not the other way around.
// When several entries match the one inserted first wins.
func (r *Repository) FindMatch(ctx context.Context, fragment string) (*Entry, error) {
	var entry Entry
	err := queries.Raw(
		"SELECT id, question, answer FROM "+tableName+
			` WHERE question ILIKE $1 ESCAPE '\' ORDER BY id LIMIT 1`,
		"%"+escapeLike(fragment)+"%",
	).Bind(ctx, r.db, &entry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NoMatchError
		}
		return nil, richerrors.Error{
			ExternalMsg: "Error searching knowledge base",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return &entry, nil
}

// Update replaces the answer of every entry whose question equals question exactly.
// It returns the number of rows changed; zero is not an error.
func (r *Repository) Update(ctx context.Context, question, answer string) (int64, error) {
	res, err := queries.Raw(
		"UPDATE "+tableName+" SET answer = $1 WHERE question = $2",
		answer, question,
	).ExecContext(ctx, r.db)
	if err != nil {
		return 0, richerrors.Error{
			ExternalMsg: "Error updating knowledge entry",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return rowsAffected(res)
}

// Delete removes every entry whose question equals question exactly.
// It returns the number of rows removed; zero is not an error.
func (r *Repository) Delete(ctx context.Context, question string) (int64, error) {
	res, err := queries.Raw(
		"DELETE FROM "+tableName+" WHERE question = $1",
		question,
	).ExecContext(ctx, r.db)
	if err != nil {
		return 0, richerrors.Error{
			ExternalMsg: "Error deleting knowledge entry",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return rowsAffected(res)
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user text match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
