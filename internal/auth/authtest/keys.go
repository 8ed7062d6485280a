// Package authtest provides RSA key material and token helpers for tests.
package authtest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Keys holds a generated RSA key pair and its base64 PEM encodings.
type Keys struct {
	Private       *rsa.PrivateKey
	Public        *rsa.PublicKey
	PrivateBase64 string
	PublicBase64  string
}

var (
	once   sync.Once
	shared Keys
	genErr error
)

// SharedKeys returns one key pair per test binary; generating RSA keys is slow.
func SharedKeys(t testing.TB) Keys {
	t.Helper()
	once.Do(func() { shared, genErr = generate() })
	if genErr != nil {
		t.Fatalf("authtest: generate keys: %v", genErr)
	}
	return shared
}

// OtherKeys returns a fresh, unrelated key pair.
func OtherKeys(t testing.TB) Keys {
	t.Helper()
	k, err := generate()
	if err != nil {
		t.Fatalf("authtest: generate keys: %v", err)
	}
	return k
}

func generate() (Keys, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return Keys{}, err
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return Keys{}, err
	}
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	return Keys{
		Private:       priv,
		Public:        &priv.PublicKey,
		PrivateBase64: base64.StdEncoding.EncodeToString(privPEM),
		PublicBase64:  base64.StdEncoding.EncodeToString(pubPEM),
	}, nil
}

// Token signs claims with RS256 using key. Standard claims are filled in when
// missing: exp one hour ahead.
func Token(t testing.TB, key *rsa.PrivateKey, sub, role string, extra map[string]any) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("authtest: sign: %v", err)
	}
	return signed
}
