package edge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/auth"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/guard"
	"github.com/heartmarshall/receptionist-backend/internal/observer"
	"github.com/heartmarshall/receptionist-backend/pkg/ctxutil"
)

// RefreshTokenCookie is the backend's refresh cookie, cleared on logout.
const RefreshTokenCookie = "refresh_token"

// Upstream outcomes reported to metrics.
const (
	outcomeOK          = "ok"
	outcomeOriginError = "origin_error"
	outcomeTimeout     = "timeout"
	outcomeUnavailable = "unavailable"
)

// relayedHeaders are copied from the backend response to the browser.
var relayedHeaders = []string{
	"Cache-Control",
	"Content-Disposition",
	"Content-Type",
	"Location",
	"Retry-After",
}

type forwarder interface {
	Forward(ctx context.Context, in *http.Request, up Upstream) (*http.Response, error)
}

// CookieConfig controls the cookies the edge re-emits.
type CookieConfig struct {
	// Domain replaces the backend's cookie domain. Empty means host-only.
	Domain string
	// ForceSecure marks every relayed cookie Secure.
	ForceSecure bool
}

// Handler dispatches edge routes to the backend.
type Handler struct {
	proxy        forwarder
	cookies      CookieConfig
	maxBodyBytes int64
	log          *slog.Logger
	now          func() time.Time
}

// NewHandler creates a Handler. A non-positive maxBodyBytes disables the
// inbound body limit.
func NewHandler(proxy forwarder, cookies CookieConfig, maxBodyBytes int64, logger *slog.Logger) *Handler {
	return &Handler{
		proxy:        proxy,
		cookies:      cookies,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "edge"),
		now:          time.Now,
	}
}

// Mount registers routes on mux. Token checks run through reg before any
// backend call is made.
func (h *Handler) Mount(mux *http.ServeMux, reg guard.Registry, routes []Route) {
	descriptors := make([]guard.Route, 0, len(routes))
	for _, rt := range routes {
		strategy := guard.StrategyJWT
		if rt.Public {
			strategy = guard.StrategyPublic
		}
		descriptors = append(descriptors, guard.Route{
			Method:   rt.Method,
			Pattern:  rt.Pattern,
			Strategy: strategy,
			Handler:  h.serve(rt),
		})
	}
	reg.Mount(mux, descriptors, h.guardError)
}

func (h *Handler) serve(rt Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, q := range rt.RequiredQuery {
			if strings.TrimSpace(r.URL.Query().Get(q)) == "" {
				writeError(w, http.StatusBadRequest, q+" es requerido")
				return
			}
		}

		switch rt.Kind {
		case KindMe:
			if id := ctxutil.IdentityFromCtx(r.Context()); id.IsGuest() {
				writeJSON(w, http.StatusOK, guestMe(id))
				return
			}
			h.forward(w, r, rt, false)
		case KindSession:
			h.forward(w, r, rt, true)
		case KindLogout:
			h.logout(w, r, rt)
		default:
			h.forward(w, r, rt, false)
		}
	}
}

func (h *Handler) upstream(r *http.Request, rt Route) Upstream {
	up := Upstream{
		Method: rt.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Token:  guard.TokenFromRequest(r),
	}
	if rt.UpstreamMethod != "" {
		up.Method = rt.UpstreamMethod
	}
	if rt.UpstreamPath != "" {
		up.Path = rt.UpstreamPath
	}
	return up
}

func (h *Handler) call(r *http.Request, rt Route) (*http.Response, error) {
	if h.maxBodyBytes > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, h.maxBodyBytes)
	}
	start := h.now()
	resp, err := h.proxy.Forward(r.Context(), r, h.upstream(r, rt))
	took := h.now().Sub(start)

	route := rt.pattern()
	switch {
	case errors.Is(err, ErrUpstreamTimeout):
		observer.ObserveUpstream(route, outcomeTimeout, took)
	case err != nil:
		observer.ObserveUpstream(route, outcomeUnavailable, took)
	case resp.StatusCode >= 400:
		observer.ObserveUpstream(route, outcomeOriginError, took)
	default:
		observer.ObserveUpstream(route, outcomeOK, took)
	}
	return resp, err
}

// forward relays the backend answer verbatim. Session routes also re-emit
// the backend's cookies.
func (h *Handler) forward(w http.ResponseWriter, r *http.Request, rt Route, relayCookies bool) {
	resp, err := h.call(r, rt)
	if err != nil {
		h.upstreamError(w, r, err)
		return
	}
	defer resp.Body.Close()

	if relayCookies {
		h.relayCookies(w, resp)
	}
	for _, name := range relayedHeaders {
		if v := resp.Header.Values(name); len(v) > 0 {
			w.Header()[name] = v
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.log.WarnContext(r.Context(), "relay body", "route", rt.pattern(), "error", err)
	}
}

// logout tells the backend to revoke the refresh token and clears the
// browser cookies whatever the backend answered.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request, rt Route) {
	resp, err := h.call(r, rt)
	if err != nil {
		h.log.WarnContext(r.Context(), "logout upstream", "error", err)
	} else {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		resp.Body.Close()
	}
	for _, c := range []*http.Cookie{
		{Name: guard.AccessTokenCookie, Path: "/"},
		{Name: RefreshTokenCookie, Path: "/auth"},
	} {
		c.Domain = h.cookies.Domain
		c.MaxAge = -1
		c.HttpOnly = true
		c.Secure = h.cookies.ForceSecure
		c.SameSite = http.SameSiteLaxMode
		http.SetCookie(w, c)
	}
	w.WriteHeader(http.StatusNoContent)
}

// relayCookies re-emits every backend Set-Cookie on the browser response.
func (h *Handler) relayCookies(w http.ResponseWriter, resp *http.Response) {
	for _, c := range resp.Cookies() {
		out := &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   h.cookies.Domain,
			Expires:  c.Expires,
			MaxAge:   c.MaxAge,
			HttpOnly: c.HttpOnly,
			Secure:   c.Secure || h.cookies.ForceSecure,
			SameSite: c.SameSite,
		}
		if out.Path == "" {
			out.Path = "/"
		}
		http.SetCookie(w, out)
	}
}

func (h *Handler) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "cuerpo demasiado grande")
	case errors.Is(err, ErrUpstreamTimeout):
		h.log.WarnContext(r.Context(), "upstream timeout", "path", r.URL.Path)
		writeError(w, http.StatusGatewayTimeout, "el servidor no respondió a tiempo")
	default:
		h.log.ErrorContext(r.Context(), "upstream call failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

func (h *Handler) guardError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrTokenMissing):
		writeError(w, http.StatusUnauthorized, "Token requerido")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Token inválido")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "permiso denegado")
	default:
		h.log.ErrorContext(r.Context(), "guard failure", "error", err)
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

type meResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	BusinessID string `json:"business_id,omitempty"`
}

func guestMe(id *domain.Identity) meResponse {
	me := meResponse{ID: id.Subject, Name: "Invitado", Role: id.Role.String()}
	if id.BusinessID != nil {
		me.BusinessID = id.BusinessID.String()
	}
	return me
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
