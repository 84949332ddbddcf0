package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/akarpov/sudoku-server/internal/sudoku"
)

type wsSolution struct {
	Puzzle   string `json:"puzzle"`
	Solution string `json:"solution,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ConnectWS upgrades the connection and solves one puzzle per text frame,
// answering each with a JSON frame. A malformed or unsolvable puzzle fails
// only its own frame, not the connection.
func (h SolveHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("unable to read message", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		reply := wsSolution{Puzzle: string(message)}
		if g, err := sudoku.Parse(string(message)); err != nil {
			reply.Error = err.Error()
		} else {
			reply.Puzzle = compact(g)
			solved, err := sudoku.Solve(g)
			switch {
			case errors.Is(err, sudoku.ErrUnsolvable):
				reply.Error = err.Error()
			case err != nil:
				h.logger.Error("solver failed", "error", err)
				return
			default:
				reply.Solution = compact(solved)
			}
		}

		if err := c.WriteJSON(reply); err != nil {
			h.logger.Error("unable to write message", "error", err)
			break
		}
	}
}
