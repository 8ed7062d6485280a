package rest

import (
	"net/http"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/guard"
	"github.com/heartmarshall/receptionist-backend/internal/transport/middleware"
)

// Handlers groups every handler mounted by Routes.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Business    *BusinessHandler
	Contact     *ContactHandler
	Tag         *TagHandler
	Appointment *AppointmentHandler
	Assistant   *AssistantHandler
	Webhook     *WebhookHandler
	Voice       *VoiceHandler
}

// Limits are the per-client request budgets of the sensitive routes.
type Limits struct {
	Limiter          *middleware.RateLimiter
	LoginPerMinute   int
	GuestPerMinute   int
	WebhookPerMinute int
}

func (l Limits) wrap(name string, perMinute int, h http.HandlerFunc) http.HandlerFunc {
	if l.Limiter == nil {
		return h
	}
	return l.Limiter.Limit(name, perMinute)(h).ServeHTTP
}

// Routes returns the route table of the backend.
func Routes(h Handlers, l Limits) []guard.Route {
	const (
		jwt     = guard.StrategyJWT
		public  = guard.StrategyPublic
		webhook = guard.StrategyVapiWebhook
	)
	need := func(p ...domain.Permission) []domain.Permission { return p }

	return []guard.Route{
		{Method: http.MethodGet, Pattern: "/live", Strategy: public, Handler: h.Health.Live},
		{Method: http.MethodGet, Pattern: "/ready", Strategy: public, Handler: h.Health.Ready},
		{Method: http.MethodGet, Pattern: "/health", Strategy: public, Handler: h.Health.Health},

		{Method: http.MethodPost, Pattern: "/auth/login", Strategy: public, Handler: l.wrap("login", l.LoginPerMinute, h.Auth.Login)},
		{Method: http.MethodPost, Pattern: "/auth/guest", Strategy: public, Handler: l.wrap("guest", l.GuestPerMinute, h.Auth.Guest)},
		{Method: http.MethodPost, Pattern: "/auth/refresh", Strategy: public, Handler: l.wrap("refresh", l.LoginPerMinute, h.Auth.Refresh)},
		{Method: http.MethodPost, Pattern: "/auth/logout", Strategy: public, Handler: h.Auth.Logout},
		{Method: http.MethodGet, Pattern: "/auth/me", Strategy: jwt, Handler: h.Auth.Me},

		{Method: http.MethodGet, Pattern: "/businesses", Strategy: jwt, Permissions: need(domain.PermBusinessRead), Handler: h.Business.List},
		{Method: http.MethodPost, Pattern: "/businesses", Strategy: jwt, Permissions: need(domain.PermBusinessWrite), Handler: h.Business.Create},
		{Method: http.MethodGet, Pattern: "/businesses/{id}", Strategy: jwt, Permissions: need(domain.PermBusinessRead), Handler: h.Business.Get},

		{Method: http.MethodGet, Pattern: "/contacts", Strategy: jwt, Permissions: need(domain.PermContactRead), Handler: h.Contact.List},
		{Method: http.MethodPost, Pattern: "/contacts", Strategy: jwt, Permissions: need(domain.PermContactWrite), Handler: h.Contact.Create},
		{Method: http.MethodPost, Pattern: "/contacts/import", Strategy: jwt, Permissions: need(domain.PermContactWrite), Handler: h.Contact.Import},
		{Method: http.MethodGet, Pattern: "/contacts/export", Strategy: jwt, Permissions: need(domain.PermContactRead), Handler: h.Contact.Export},
		{Method: http.MethodGet, Pattern: "/contacts/{id}", Strategy: jwt, Permissions: need(domain.PermContactRead), Handler: h.Contact.Get},
		{Method: http.MethodPatch, Pattern: "/contacts/{id}", Strategy: jwt, Permissions: need(domain.PermContactWrite), Handler: h.Contact.Update},
		{Method: http.MethodDelete, Pattern: "/contacts/{id}", Strategy: jwt, Permissions: need(domain.PermContactWrite), Handler: h.Contact.Delete},
		{Method: http.MethodGet, Pattern: "/contacts/{id}/appointments", Strategy: jwt, Permissions: need(domain.PermContactRead, domain.PermAppointmentRead), Handler: h.Contact.Appointments},
		{Method: http.MethodPost, Pattern: "/contacts/{id}/tags/{tagId}", Strategy: jwt, Permissions: need(domain.PermContactWrite), Handler: h.Contact.AddTag},
		{Method: http.MethodDelete, Pattern: "/contacts/{id}/tags/{tagId}", Strategy: jwt, Permissions: need(domain.PermContactWrite), Handler: h.Contact.RemoveTag},

		{Method: http.MethodGet, Pattern: "/tags", Strategy: jwt, Permissions: need(domain.PermTagRead), Handler: h.Tag.List},
		{Method: http.MethodPost, Pattern: "/tags", Strategy: jwt, Permissions: need(domain.PermTagWrite), Handler: h.Tag.Create},
		{Method: http.MethodPatch, Pattern: "/tags/{id}", Strategy: jwt, Permissions: need(domain.PermTagWrite), Handler: h.Tag.Update},
		{Method: http.MethodDelete, Pattern: "/tags/{id}", Strategy: jwt, Permissions: need(domain.PermTagWrite), Handler: h.Tag.Delete},

		{Method: http.MethodGet, Pattern: "/appointments", Strategy: jwt, Permissions: need(domain.PermAppointmentRead), Handler: h.Appointment.List},
		{Method: http.MethodPost, Pattern: "/appointments", Strategy: jwt, Permissions: need(domain.PermAppointmentWrite), Handler: h.Appointment.Create},
		{Method: http.MethodPatch, Pattern: "/appointments/{id}/status", Strategy: jwt, Permissions: need(domain.PermAppointmentWrite), Handler: h.Appointment.UpdateStatus},

		{Method: http.MethodGet, Pattern: "/assistant-configs", Strategy: jwt, Permissions: need(domain.PermAssistantRead), Handler: h.Assistant.Get},
		{Method: http.MethodPut, Pattern: "/assistant-configs", Strategy: jwt, Permissions: need(domain.PermAssistantWrite), Handler: h.Assistant.Update},
		{Method: http.MethodPost, Pattern: "/assistant-configs/generate", Strategy: jwt, Permissions: need(domain.PermAssistantWrite), Handler: h.Assistant.Generate},
		{Method: http.MethodPost, Pattern: "/assistant-configs/sync", Strategy: jwt, Permissions: need(domain.PermAssistantWrite), Handler: h.Assistant.Sync},

		{Method: http.MethodPost, Pattern: "/webhooks/vapi/{businessId}", Strategy: webhook, Permissions: need(domain.PermWebhookIngest), Handler: l.wrap("webhook", l.WebhookPerMinute, h.Webhook.Vapi)},

		{Method: http.MethodPost, Pattern: "/voice/process", Strategy: jwt, Permissions: need(domain.PermVoiceUse), Handler: h.Voice.Process},
		{Method: http.MethodPost, Pattern: "/voice/process-text", Strategy: jwt, Permissions: need(domain.PermVoiceUse), Handler: h.Voice.ProcessText},
		{Method: http.MethodPost, Pattern: "/voice/speak", Strategy: jwt, Permissions: need(domain.PermVoiceUse), Handler: h.Voice.Speak},
		{Method: http.MethodGet, Pattern: "/voice/status", Strategy: jwt, Permissions: need(domain.PermVoiceUse), Handler: h.Voice.Status},
	}
}
