package handlers

import (
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/akarpov/sudoku-server/internal/repository"
	"github.com/akarpov/sudoku-server/internal/sudoku"
)

type SolveDTO struct {
	SolveID    string `json:"solve_id"`
	Puzzle     string `json:"puzzle"`
	Solution   string `json:"solution"`
	Givens     int32  `json:"givens"`
	DurationUs int64  `json:"duration_us"`
	Cached     bool   `json:"cached"`
	CreatedAt  int64  `json:"created_at"`
}

func NewSolveDTO(s *repository.Solve, cached bool) *SolveDTO {
	return &SolveDTO{
		SolveID:    strconv.FormatInt(s.SolveID, 10),
		Puzzle:     s.Puzzle,
		Solution:   s.Solution,
		Givens:     s.Givens,
		DurationUs: s.DurationUs,
		Cached:     cached,
		CreatedAt:  s.CreatedAt.Time.UnixMilli(),
	}
}

type ListSolvesDTO struct {
	Username  *string `schema:"username"`
	MaxGivens *int32  `schema:"max_givens"`
	Limit     int     `schema:"limit"`
}

func ParseListSolvesDTO(src map[string][]string) (ListSolvesDTO, error) {
	dto := ListSolvesDTO{Limit: 20}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	if dto.Limit < 1 || dto.Limit > 100 {
		dto.Limit = 20
	}
	return dto, err
}

// compact flattens a grid to its 81-character single-line form, the shape
// solves are stored and deduplicated under.
func compact(g sudoku.Grid) string {
	return strings.ReplaceAll(g.Render(), "\n", "")
}

func countGivens(g sudoku.Grid) (n int32) {
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}
