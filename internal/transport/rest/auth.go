package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/guard"
	"github.com/heartmarshall/receptionist-backend/internal/service/auth"
)

// RefreshTokenCookie carries the raw refresh token. It is only sent to the
// auth routes.
const RefreshTokenCookie = "refresh_token"

const refreshCookiePath = "/auth"

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*auth.Session, error)
	Guest(ctx context.Context, req dto.GuestSessionRequest) (*auth.GuestSession, error)
	Refresh(ctx context.Context, rawToken string) (*auth.Session, error)
	Logout(ctx context.Context, rawRefresh string) error
	Me(ctx context.Context) (*auth.Me, error)
}

// CookieConfig controls the attributes of the session cookies.
type CookieConfig struct {
	Domain string
	Secure bool
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc     authService
	cookies CookieConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cookies CookieConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		cookies: cookies,
		log:     logger.With("handler", "auth"),
		now:     time.Now,
	}
}

type sessionResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        userResponse `json:"user"`
}

type guestResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	BusinessID  string    `json:"business_id"`
	Session     string    `json:"session"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.svc.Login(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.setSession(w, session)
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Guest handles POST /auth/guest.
func (h *AuthHandler) Guest(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.GuestSessionRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	gs, err := h.svc.Guest(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	http.SetCookie(w, h.cookie(guard.AccessTokenCookie, gs.AccessToken, "/", gs.ExpiresAt))
	writeJSON(w, http.StatusCreated, guestResponse{
		AccessToken: gs.AccessToken,
		ExpiresAt:   gs.ExpiresAt,
		BusinessID:  gs.BusinessID.String(),
		Session:     gs.Subject,
	})
}

// Refresh handles POST /auth/refresh. The refresh token comes from its cookie.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var raw string
	if c, err := r.Cookie(RefreshTokenCookie); err == nil {
		raw = c.Value
	}

	session, err := h.svc.Refresh(r.Context(), raw)
	if err != nil {
		h.clearSession(w)
		handleError(h.log, w, r, err)
		return
	}

	h.setSession(w, session)
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Logout handles POST /auth/logout. It always clears the cookies.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var raw string
	if c, err := r.Cookie(RefreshTokenCookie); err == nil {
		raw = c.Value
	}

	if err := h.svc.Logout(r.Context(), raw); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.clearSession(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	me, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, me)
}

func (h *AuthHandler) setSession(w http.ResponseWriter, s *auth.Session) {
	http.SetCookie(w, h.cookie(guard.AccessTokenCookie, s.AccessToken, "/", s.AccessExpiresAt))
	http.SetCookie(w, h.cookie(RefreshTokenCookie, s.RefreshToken, refreshCookiePath, s.RefreshExpiresAt))
}

func (h *AuthHandler) clearSession(w http.ResponseWriter) {
	for _, c := range []*http.Cookie{
		h.cookie(guard.AccessTokenCookie, "", "/", time.Time{}),
		h.cookie(RefreshTokenCookie, "", refreshCookiePath, time.Time{}),
	} {
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

// cookie builds a session cookie. A zero expiry leaves MaxAge for the caller.
func (h *AuthHandler) cookie(name, value, path string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   h.cookies.Domain,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if !expires.IsZero() {
		c.MaxAge = max(int(expires.Sub(h.now()).Seconds()), 1)
	}
	return c
}

func toSessionResponse(s *auth.Session) sessionResponse {
	return sessionResponse{
		AccessToken: s.AccessToken,
		ExpiresAt:   s.AccessExpiresAt,
		User:        toUserResponse(s.User),
	}
}
