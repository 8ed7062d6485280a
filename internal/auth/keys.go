package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParsePublicKeyBase64 decodes a base64-encoded PEM RSA public key
// (PKIX or PKCS#1, or a certificate).
func ParsePublicKeyBase64(b64 string) (*rsa.PublicKey, error) {
	pemBytes, err := decodeBase64(b64)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return key, nil
}

// ParsePrivateKeyBase64 decodes a base64-encoded PEM RSA private key
// (PKCS#1 or PKCS#8).
func ParsePrivateKeyBase64(b64 string) (*rsa.PrivateKey, error) {
	pemBytes, err := decodeBase64(b64)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return nil, fmt.Errorf("empty key")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// Some secret stores strip the padding.
		if b, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
			return b, nil
		}
		return nil, err
	}
	return b, nil
}
