// Package auth is the identity collaborator: it hands the core an opaque,
// already-authenticated user id per request. Registration and token issuance
// live elsewhere.
package auth

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid token")

type Verifier interface {
	// Verify resolves a bearer token to a stable user id.
	Verify(ctx context.Context, token string) (string, error)
}

// StaticVerifier resolves tokens against a fixed table, typically loaded
// from configuration.
type StaticVerifier struct {
	tokens map[string]string
}

func NewStaticVerifier(tokens map[string]string) *StaticVerifier {
	if tokens == nil {
		tokens = map[string]string{}
	}
	return &StaticVerifier{tokens: tokens}
}

func (v *StaticVerifier) Verify(ctx context.Context, token string) (string, error) {
	userID, ok := v.tokens[token]
	if !ok || token == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// ParseTokenTable parses comma separated "token:user" pairs. Malformed pairs
// are skipped.
func ParseTokenTable(s string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		token, user, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || token == "" || user == "" {
			continue
		}
		out[token] = user
	}
	return out
}
