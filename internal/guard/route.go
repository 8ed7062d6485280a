package guard

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/pkg/ctxutil"
)

// Route describes one endpoint: how the caller is verified and what it needs.
type Route struct {
	Method      string
	Pattern     string
	Strategy    string
	Permissions []domain.Permission
	Handler     http.HandlerFunc
}

// ServeMuxPattern returns the pattern in net/http ServeMux syntax.
func (rt Route) ServeMuxPattern() string {
	return rt.Method + " " + rt.Pattern
}

// ErrorWriter renders a guard failure.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// Protect wraps the route handler: it resolves the identity, authorizes it
// and stores it in the request context.
func (reg Registry) Protect(rt Route, onErr ErrorWriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t := ctxutil.TraceFromCtx(r.Context()); t != nil {
			t.Route = rt.ServeMuxPattern()
		}

		id, err := reg.Resolve(rt.Strategy, r)
		if err != nil {
			onErr(w, r, err)
			return
		}
		if err := Authorize(id, rt.Permissions); err != nil {
			onErr(w, r, err)
			return
		}
		if t := ctxutil.TraceFromCtx(r.Context()); t != nil && id != nil {
			t.UserID = id.Subject
			if id.UserID != uuid.Nil {
				t.UserID = id.UserID.String()
			}
		}
		rt.Handler(w, r.WithContext(ctxutil.WithIdentity(r.Context(), id)))
	})
}

// Mount registers every route on mux.
func (reg Registry) Mount(mux *http.ServeMux, routes []Route, onErr ErrorWriter) {
	for _, rt := range routes {
		mux.Handle(rt.ServeMuxPattern(), reg.Protect(rt, onErr))
	}
}
