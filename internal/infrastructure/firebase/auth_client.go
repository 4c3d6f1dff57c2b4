package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient adapts Firebase Auth as the identity assertion provider. The
// rest of the core treats the verified UID as an opaque, equality-comparable
// credential and never inspects the token itself.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}
