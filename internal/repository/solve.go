package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// A Solve is a puzzle the service has solved, keyed by its canonical 81-char
// text so repeat submissions hit the cache instead of the solver.
type Solve struct {
	SolveID    int64
	UserID     *int64
	Puzzle     string
	Solution   string
	Givens     int32
	DurationUs int64
	CreatedAt  pgtype.Timestamptz
}

type CreateSolveParams struct {
	UserID     *int64
	Puzzle     string
	Solution   string
	Givens     int32
	DurationUs int64
}

func (q *Queries) CreateSolve(ctx context.Context, params CreateSolveParams) (*Solve, error) {
	args := pgx.NamedArgs{
		"puzzle":      params.Puzzle,
		"solution":    params.Solution,
		"givens":      params.Givens,
		"duration_us": params.DurationUs,
		"user_id":     params.UserID,
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve (user_id, puzzle, solution, givens, duration_us)
		VALUES (@user_id, @puzzle, @solution, @givens, @duration_us)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Solve])
}

func (q *Queries) FetchSolve(ctx context.Context, solveID int64) (*Solve, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM solve WHERE solve_id = $1", solveID,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Solve])
}

func (q *Queries) FetchSolveByPuzzle(ctx context.Context, puzzle string) (*Solve, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM solve WHERE puzzle = $1", puzzle,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Solve])
}

// A SolveRecord joins a solve with the username that submitted it, for the
// public listing.
type SolveRecord struct {
	SolveID    int64   `json:"solve_id"`
	Username   *string `json:"username"`
	Puzzle     string  `json:"puzzle"`
	Solution   string  `json:"solution"`
	Givens     int32   `json:"givens"`
	DurationUs int64   `json:"duration_us"`
}

type SolveFilter struct {
	Username  *string
	MaxGivens *int32
}

func (f SolveFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.MaxGivens != nil {
		clauses = append(clauses, "givens <= @max_givens")
		args["max_givens"] = *f.MaxGivens
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListSolves(
	ctx context.Context, filter SolveFilter, limit int,
) ([]SolveRecord, error) {
	query := `
	SELECT
		solve_id,
		username,
		puzzle,
		solution,
		givens,
		duration_us
	FROM solve
		LEFT OUTER JOIN "user" using (user_id)
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY created_at DESC LIMIT @limit;"
	args["limit"] = limit

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolveRecord])
}
