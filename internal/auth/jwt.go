package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

var (
	// ErrTokenMissing means no token was presented.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid covers bad signatures, wrong algorithms, expiry and malformed claims.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the access token payload shared by the backend and the edge.
type Claims struct {
	jwt.RegisteredClaims
	Role       string `json:"role"`
	Email      string `json:"email,omitempty"`
	BusinessID string `json:"business_id,omitempty"`
}

// Identity converts verified claims into a request identity.
// Guest tokens carry a session subject and must name a business; every other
// role must carry a user UUID as subject.
func (c *Claims) Identity() (*domain.Identity, error) {
	role := domain.UserRole(c.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrTokenInvalid, c.Role)
	}

	id := &domain.Identity{
		Email:       c.Email,
		Role:        role,
		Subject:     c.Subject,
		Permissions: domain.PermissionsFor(role),
	}

	if c.BusinessID != "" {
		bid, err := uuid.Parse(c.BusinessID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid business_id", ErrTokenInvalid)
		}
		id.BusinessID = &bid
	}

	if role.IsGuest() {
		if id.BusinessID == nil {
			return nil, fmt.Errorf("%w: guest token without business_id", ErrTokenInvalid)
		}
		return id, nil
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject UUID", ErrTokenInvalid)
	}
	id.UserID = userID
	return id, nil
}

// Verifier checks RS256 access tokens against a public key decoded once at
// construction.
type Verifier struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewVerifier creates a Verifier. An empty issuer disables the issuer check.
func NewVerifier(key *rsa.PublicKey, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{key: key, parser: jwt.NewParser(opts...)}
}

// NewVerifierFromBase64 decodes a base64 PEM public key and builds a Verifier.
func NewVerifierFromBase64(b64, issuer string) (*Verifier, error) {
	key, err := ParsePublicKeyBase64(b64)
	if err != nil {
		return nil, err
	}
	return NewVerifier(key, issuer), nil
}

// Verify parses and validates a token string.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: missing sub or role", ErrTokenInvalid)
	}

	return claims, nil
}

// Issuer signs RS256 access and guest tokens.
type Issuer struct {
	key       *rsa.PrivateKey
	issuer    string
	accessTTL time.Duration
	guestTTL  time.Duration
	now       func() time.Time
}

// NewIssuer creates a token issuer.
func NewIssuer(key *rsa.PrivateKey, issuer string, accessTTL, guestTTL time.Duration) *Issuer {
	return &Issuer{
		key:       key,
		issuer:    issuer,
		accessTTL: accessTTL,
		guestTTL:  guestTTL,
		now:       time.Now,
	}
}

// AccessTTL returns the lifetime of user access tokens.
func (i *Issuer) AccessTTL() time.Duration { return i.accessTTL }

// GuestTTL returns the lifetime of guest tokens.
func (i *Issuer) GuestTTL() time.Duration { return i.guestTTL }

// AccessToken signs a token for a persisted user.
func (i *Issuer) AccessToken(u *domain.User) (string, error) {
	return i.sign(Claims{
		RegisteredClaims: i.registered(u.ID.String(), i.accessTTL),
		Role:             string(u.Role),
		Email:            u.EmailOrEmpty(),
	})
}

// GuestToken signs a token for an anonymous session bound to one business.
// The subject is a fresh session id; no user row backs it.
func (i *Issuer) GuestToken(businessID uuid.UUID) (token, subject string, err error) {
	subject = uuid.NewString()
	token, err = i.sign(Claims{
		RegisteredClaims: i.registered(subject, i.guestTTL),
		Role:             string(domain.UserRoleGuest),
		BusinessID:       businessID.String(),
	})
	return token, subject, err
}

func (i *Issuer) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := i.now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    i.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}
}

func (i *Issuer) sign(c Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, c).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// GenerateRefreshToken creates a cryptographically random refresh token.
// Returns both the raw token (to send to client) and its SHA-256 hash (to store in DB).
func GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}
	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
