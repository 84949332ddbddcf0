package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akarpov/sudoku-server/internal/config"
	"github.com/akarpov/sudoku-server/internal/middleware"
	"github.com/akarpov/sudoku-server/internal/repository"
	"github.com/akarpov/sudoku-server/internal/sudoku"
)

// maxPuzzleBody caps raw puzzle uploads; 81 cells plus generous whitespace.
const maxPuzzleBody = 4 << 10

type SolveHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewSolveHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
) *SolveHandler {
	return &SolveHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
	}
}

// readPuzzle accepts the puzzle text either as the url-encoded "puzzle" form
// field or as the raw request body.
func readPuzzle(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return "", err
		}
		return r.FormValue("puzzle"), nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPuzzleBody))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (h SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	text, err := readPuzzle(r)
	if err != nil || text == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("request must carry puzzle text")))
		return
	}

	g, err := sudoku.Parse(text)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	puzzle := compact(g)

	if cached, err := h.repo.FetchSolveByPuzzle(r.Context(), puzzle); err == nil {
		sendJSONOrLog(w, h.logger, NewSolveDTO(cached, true))
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to look up solve", "error", err)
		return
	}

	start := time.Now()
	solved, err := sudoku.Solve(g)
	if errors.Is(err, sudoku.ErrUnsolvable) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("solver failed", "puzzle", puzzle, "error", err)
		return
	}
	duration := time.Since(start)

	params := repository.CreateSolveParams{
		Puzzle:     puzzle,
		Solution:   compact(solved),
		Givens:     countGivens(g),
		DurationUs: duration.Microseconds(),
	}
	if claims, ok := r.Context().Value(middleware.CtxUserClaims).(*config.UserClaims); ok {
		params.UserID = &claims.UserID
	}

	solve, err := h.repo.CreateSolve(r.Context(), params)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		// Someone raced us to the same puzzle; their row wins.
		if solve, err = h.repo.FetchSolveByPuzzle(r.Context(), puzzle); err == nil {
			sendJSONOrLog(w, h.logger, NewSolveDTO(solve, true))
			return
		}
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to record solve", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewSolveDTO(solve, false))
}

func (h SolveHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	solveID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("invalid solve id")))
		return
	}

	solve, err := h.repo.FetchSolve(r.Context(), solveID)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch solve", "solveID", solveID, "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewSolveDTO(solve, true))
}

func (h SolveHandler) List(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseListSolvesDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	records, err := h.repo.ListSolves(r.Context(), repository.SolveFilter{
		Username:  dto.Username,
		MaxGivens: dto.MaxGivens,
	}, dto.Limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list solves", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, records)
}
