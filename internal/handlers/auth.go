package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarpov/sudoku-server/internal/config"
	"github.com/akarpov/sudoku-server/internal/middleware"
	"github.com/akarpov/sudoku-server/internal/repository"
)

type Auth struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuth(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
) *Auth {
	return &Auth{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
	}
}

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
	ErrBadCredentials     = fmt.Errorf("invalid username or password")
)

func parseCredentials(r *http.Request) (username, password string, err error) {
	if err = r.ParseForm(); err != nil {
		return "", "", err
	}
	username = r.FormValue("username")
	password = r.FormValue("password")
	if username == "" || password == "" {
		return "", "", ErrBadAuthBody
	}
	return username, password, nil
}

func (h Auth) Register(w http.ResponseWriter, r *http.Request) {
	username, password, err := parseCredentials(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(ErrBadPasswordTooLong))
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to hash password", "error", err)
		return
	}

	user, err := h.repo.CreateUser(r.Context(), repository.CreateUserParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(ErrUsernameTaken))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to insert user", "error", err)
		return
	}

	h.refreshCookies(w, user)
}

func (h Auth) Login(w http.ResponseWriter, r *http.Request) {
	username, password, err := parseCredentials(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	user, err := h.repo.FetchUser(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, h.logger, wrapError(ErrBadCredentials))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch user", "error", err)
		return
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, h.logger, wrapError(ErrBadCredentials))
		return
	}

	h.refreshCookies(w, user)
}

func (h Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
}

type UserInfo struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type Status struct {
	LoggedIn bool      `json:"logged_in"`
	User     *UserInfo `json:"user,omitempty"`
}

func (h Auth) Status(w http.ResponseWriter, r *http.Request) {
	var status *Status
	claims, ok := r.Context().Value(middleware.CtxUserClaims).(*config.UserClaims)
	if ok {
		status = &Status{
			LoggedIn: true,
			User:     &UserInfo{claims.UserID, claims.Username},
		}
		token, err := h.jwt.Sign(claims)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			h.logger.Error("unable to tokenize checked claims", "error", err)
			return
		}
		h.cookies.Refresh(w, token)
	} else {
		status = &Status{LoggedIn: false, User: nil}
		h.cookies.Clear(w)
	}

	sendJSONOrLog(w, h.logger, status)
}

func (h Auth) refreshCookies(w http.ResponseWriter, user *repository.User) {
	token, err := h.jwt.Sign(config.NewUserClaims(user.UserID, user.Username))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create a jwt token", "error", err)
		return
	}
	if err := h.cookies.Refresh(w, token); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to set cookies", "error", err)
	}
}
