package edge

import "net/http"

// Kind selects how the dispatcher serves a route.
type Kind int

const (
	// KindForward verifies the token and forwards the request.
	KindForward Kind = iota
	// KindSession forwards and relays the backend's Set-Cookie headers.
	KindSession
	// KindLogout forwards best-effort and always clears the session cookies.
	KindLogout
	// KindMe answers guest sessions locally and forwards the rest.
	KindMe
)

// Route is one edge endpoint.
type Route struct {
	Method  string
	Pattern string
	Kind    Kind
	// Public routes are forwarded without a token check.
	Public bool
	// Query parameters rejected with 400 when absent.
	RequiredQuery []string
	// UpstreamMethod and UpstreamPath override the backend call. Empty
	// values reuse the incoming method and path.
	UpstreamMethod string
	UpstreamPath   string
}

func (rt Route) pattern() string { return rt.Method + " " + rt.Pattern }

// Routes returns the edge route table. It mirrors the backend resources.
func Routes() []Route {
	business := []string{"business_id"}
	return []Route{
		{Method: http.MethodPost, Pattern: "/auth/login", Kind: KindSession, Public: true},
		{Method: http.MethodPost, Pattern: "/auth/guest", Kind: KindSession, Public: true},
		{Method: http.MethodGet, Pattern: "/auth/token", Kind: KindSession, Public: true, UpstreamMethod: http.MethodPost, UpstreamPath: "/auth/refresh"},
		{Method: http.MethodPost, Pattern: "/auth/logout", Kind: KindLogout, Public: true},
		{Method: http.MethodGet, Pattern: "/auth/me", Kind: KindMe},

		{Method: http.MethodGet, Pattern: "/businesses"},
		{Method: http.MethodPost, Pattern: "/businesses"},
		{Method: http.MethodGet, Pattern: "/businesses/{id}"},

		{Method: http.MethodGet, Pattern: "/contacts", RequiredQuery: business},
		{Method: http.MethodPost, Pattern: "/contacts"},
		{Method: http.MethodPost, Pattern: "/contacts/import"},
		{Method: http.MethodGet, Pattern: "/contacts/export", RequiredQuery: business},
		{Method: http.MethodGet, Pattern: "/contacts/{id}"},
		{Method: http.MethodPatch, Pattern: "/contacts/{id}"},
		{Method: http.MethodDelete, Pattern: "/contacts/{id}"},
		{Method: http.MethodGet, Pattern: "/contacts/{id}/appointments"},
		{Method: http.MethodPost, Pattern: "/contacts/{id}/tags/{tagId}"},
		{Method: http.MethodDelete, Pattern: "/contacts/{id}/tags/{tagId}"},

		{Method: http.MethodGet, Pattern: "/tags", RequiredQuery: business},
		{Method: http.MethodPost, Pattern: "/tags"},
		{Method: http.MethodPatch, Pattern: "/tags/{id}"},
		{Method: http.MethodDelete, Pattern: "/tags/{id}"},

		{Method: http.MethodGet, Pattern: "/appointments", RequiredQuery: business},
		{Method: http.MethodPost, Pattern: "/appointments"},
		{Method: http.MethodPatch, Pattern: "/appointments/{id}/status"},

		{Method: http.MethodGet, Pattern: "/assistant-configs", RequiredQuery: business},
		{Method: http.MethodPut, Pattern: "/assistant-configs"},
		{Method: http.MethodPost, Pattern: "/assistant-configs/generate"},
		{Method: http.MethodPost, Pattern: "/assistant-configs/sync"},

		{Method: http.MethodPost, Pattern: "/webhooks/vapi/{businessId}", Public: true},

		{Method: http.MethodPost, Pattern: "/voice/process"},
		{Method: http.MethodPost, Pattern: "/voice/process-text"},
		{Method: http.MethodPost, Pattern: "/voice/speak"},
		{Method: http.MethodGet, Pattern: "/voice/status"},
	}
}
