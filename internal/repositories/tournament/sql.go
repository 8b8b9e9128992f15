package tournament

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Dialect selects the SQL flavour spoken by the database handle
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Foreign key violation in lib/pq error codes
const pqForeignKeyViolation = "23503"

// SQLConfig holds configuration for the SQL tournament repository
type SQLConfig struct {
	// DB is an open handle for the configured dialect
	DB *sql.DB

	// Dialect defaults to sqlite
	Dialect Dialect
}

// sqlRepository implements the Repository interface on database/sql
type sqlRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQL creates a SQL-backed tournament repository and applies the schema
func NewSQL(ctx context.Context, cfg *SQLConfig) (*sqlRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DB == nil {
		return nil, ErrNilDB
	}

	dialect := cfg.Dialect
	if dialect == "" {
		dialect = DialectSQLite
	}
	if dialect != DialectSQLite && dialect != DialectPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	r := &sqlRepository{
		db:      cfg.DB,
		dialect: dialect,
	}

	if err := r.applySchema(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *sqlRepository) applySchema(ctx context.Context) error {
	schema, err := schemaFS.ReadFile("schema/" + string(r.dialect) + ".sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, string(schema)); err != nil {
		return storeError("apply schema", err)
	}
	return nil
}

// rebind rewrites ? placeholders into the dialect's positional form
func rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (r *sqlRepository) q(query string) string {
	return rebind(r.dialect, query)
}

// ResetAll deletes all matches, then all players, in one transaction
func (r *sqlRepository) ResetAll(ctx context.Context) error {
	statements := resetStatements(r.dialect)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeError("begin reset", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return storeError("reset", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storeError("commit reset", err)
	}
	return nil
}

// resetStatements empties both tables; Postgres also restarts its id sequences
func resetStatements(dialect Dialect) []string {
	statements := []string{
		"DELETE FROM matches",
		"DELETE FROM players",
	}
	if dialect == DialectPostgres {
		statements = append(statements,
			"ALTER SEQUENCE matches_id_seq RESTART WITH 1",
			"ALTER SEQUENCE players_id_seq RESTART WITH 1",
		)
	}
	return statements
}

// RegisterPlayer inserts a player and returns it with the generated ID
func (r *sqlRepository) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	name, err := validatePlayerName(input)
	if err != nil {
		return nil, err
	}

	player := &models.Player{Name: name}
	err = r.db.QueryRowContext(ctx,
		r.q(`INSERT INTO players (name) VALUES (?) RETURNING id`),
		name,
	).Scan(&player.ID)
	if err != nil {
		return nil, storeError("insert player", err)
	}

	return &RegisterPlayerOutput{
		Player: player,
	}, nil
}

// CountPlayers counts the rows in players
func (r *sqlRepository) CountPlayers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, storeError("count players", err)
	}
	return count, nil
}

// RecordMatch checks both players exist and inserts the match in one transaction
func (r *sqlRepository) RecordMatch(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error) {
	if err := validateMatch(input); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeError("begin record match", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range []int64{input.WinnerID, input.LoserID} {
		var n int
		err := tx.QueryRowContext(ctx, r.q(`SELECT COUNT(*) FROM players WHERE id = ?`), id).Scan(&n)
		if err != nil {
			return nil, storeError("look up player", err)
		}
		if n == 0 {
			return nil, unknownPlayerError(id)
		}
	}

	match := &models.Match{
		WinnerID: input.WinnerID,
		LoserID:  input.LoserID,
	}
	err = tx.QueryRowContext(ctx,
		r.q(`INSERT INTO matches (winner_id, loser_id) VALUES (?, ?) RETURNING id`),
		input.WinnerID,
		input.LoserID,
	).Scan(&match.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMatch, err)
		}
		return nil, storeError("insert match", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storeError("commit match", err)
	}

	return &RecordMatchOutput{
		Match: match,
	}, nil
}

// GetStandings runs the standings aggregate
func (r *sqlRepository) GetStandings(ctx context.Context) (*GetStandingsOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id,
		       p.name,
		       (SELECT COUNT(*) FROM matches m WHERE m.winner_id = p.id) AS wins,
		       (SELECT COUNT(*) FROM matches m WHERE m.winner_id = p.id OR m.loser_id = p.id) AS plays
		FROM players p
		ORDER BY wins DESC, p.id ASC`)
	if err != nil {
		return nil, storeError("query standings", err)
	}
	defer rows.Close()

	out := make([]*models.Standing, 0)
	for rows.Next() {
		var row models.Standing
		if err := rows.Scan(&row.PlayerID, &row.Name, &row.Wins, &row.Plays); err != nil {
			return nil, storeError("scan standings", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate standings", err)
	}

	return &GetStandingsOutput{
		Standings: out,
	}, nil
}

// ListMatches returns matches in ID order, optionally restricted to one winner
func (r *sqlRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	query := `SELECT id, winner_id, loser_id FROM matches`
	var args []interface{}
	if input.WinnerID != 0 {
		query += ` WHERE winner_id = ?`
		args = append(args, input.WinnerID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, storeError("query matches", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID); err != nil {
			return nil, storeError("scan match", err)
		}
		matches = append(matches, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate matches", err)
	}

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}
