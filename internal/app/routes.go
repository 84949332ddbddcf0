package app

import (
	"github.com/akarpov/sudoku-server/internal/handlers"
)

func (a *App) loadRoutes() {
	solve := handlers.NewSolveHandler(a.logger, a.db, a.ws)
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)

	a.router.HandleFunc("POST /solve", solve.Solve)
	a.router.HandleFunc("GET /solve/{id}", solve.Fetch)
	a.router.HandleFunc("GET /solves", solve.List)
	a.router.HandleFunc("/solve/connect", solve.ConnectWS)

	a.router.HandleFunc("POST /auth/register", auth.Register)
	a.router.HandleFunc("POST /auth/login", auth.Login)
	a.router.HandleFunc("POST /auth/logout", auth.Logout)
	a.router.HandleFunc("GET /auth/status", auth.Status)
}
