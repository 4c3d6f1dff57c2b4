package firebase

import (
	"context"
	"errors"
)

// DevVerifier treats the bearer token itself as the credential UID. It backs
// the in-memory mode so local development works without a Firebase project.
// Never wire it in production.
type DevVerifier struct{}

func NewDevVerifier() *DevVerifier {
	return &DevVerifier{}
}

func (d *DevVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.New("empty token")
	}
	return token, nil
}
