// Package guard resolves who is calling a route and whether they may.
//
// Each route names a strategy; the registry maps the name to the function
// that verifies the request. Verification failures are domain.ErrUnauthorized
// (401), missing permissions are domain.ErrForbidden (403).
package guard

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/receptionist-backend/internal/auth"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// Strategy names used in route descriptors.
const (
	StrategyJWT         = "jwt"
	StrategyPublic      = "public"
	StrategyVapiWebhook = "vapi-webhook"
)

const (
	// AccessTokenCookie carries the access token for browser clients.
	AccessTokenCookie = "access_token"
	// VapiSecretHeader carries the shared webhook secret.
	VapiSecretHeader = "X-Vapi-Secret"
	// VapiSubject is the subject of the machine identity given to webhooks.
	VapiSubject = "vapi"
)

// ErrUnknownStrategy means a route names a strategy nobody registered.
var ErrUnknownStrategy = errors.New("unknown auth strategy")

// Strategy verifies a request. A nil identity with a nil error means the
// request is verified and anonymous.
type Strategy func(r *http.Request) (*domain.Identity, error)

// Registry maps strategy names to strategies.
type Registry map[string]Strategy

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// NewRegistry registers the jwt, public and vapi-webhook strategies.
func NewRegistry(verifier tokenVerifier, webhookSecret string) Registry {
	return Registry{
		StrategyJWT:         JWT(verifier),
		StrategyPublic:      Public(),
		StrategyVapiWebhook: VapiWebhook(webhookSecret),
	}
}

// Resolve runs the named strategy.
func (reg Registry) Resolve(name string, r *http.Request) (*domain.Identity, error) {
	s, ok := reg[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s(r)
}

// JWT accepts a bearer token, falling back to the access_token cookie.
func JWT(verifier tokenVerifier) Strategy {
	return func(r *http.Request) (*domain.Identity, error) {
		token := TokenFromRequest(r)
		if token == "" {
			return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, auth.ErrTokenMissing)
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
		}
		id, err := claims.Identity()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
		}
		return id, nil
	}
}

// Public verifies every request with no identity.
func Public() Strategy {
	return func(*http.Request) (*domain.Identity, error) {
		return nil, nil
	}
}

// VapiWebhook compares the shared secret header in constant time. An empty
// configured secret rejects everything.
func VapiWebhook(secret string) Strategy {
	want := []byte(secret)
	return func(r *http.Request) (*domain.Identity, error) {
		got := []byte(r.Header.Get(VapiSecretHeader))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			return nil, fmt.Errorf("%w: bad webhook secret", domain.ErrUnauthorized)
		}
		return &domain.Identity{
			Subject:     VapiSubject,
			Permissions: domain.NewPermissionSet(domain.PermWebhookIngest),
		}, nil
	}
}

// TokenFromRequest returns the bearer token or the access_token cookie value.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

// Authorize checks that id holds every required permission. Routes without
// requirements accept any verified caller, including anonymous ones.
func Authorize(id *domain.Identity, required []domain.Permission) error {
	if len(required) == 0 {
		return nil
	}
	if id == nil {
		return domain.ErrUnauthorized
	}
	if missing := id.Permissions.Missing(required); len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", domain.ErrForbidden, missing)
	}
	return nil
}
