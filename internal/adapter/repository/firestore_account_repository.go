package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

type firestoreAccountRepository struct {
	client *firestore.Client
}

func NewFirestoreAccountRepository(client *firestore.Client) repository.AccountRepository {
	return &firestoreAccountRepository{
		client: client,
	}
}

func (r *firestoreAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	// Create (not Set) so a second registration for the same credential
	// fails instead of overwriting the role.
	_, err := r.client.Collection("accounts").Doc(account.ID).Create(ctx, account)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.AlreadyRegistered("An account already exists for this identity")
		}
		return errors.Internal("Failed to create account", err)
	}
	return nil
}

func (r *firestoreAccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	doc, err := r.client.Collection("accounts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Account", err)
		}
		return nil, errors.Internal("Failed to get account", err)
	}

	var account entity.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, errors.Internal("Failed to decode account", err)
	}

	return &account, nil
}

func (r *firestoreAccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := r.client.Collection("accounts").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}

	var account entity.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, errors.Internal("Failed to decode account", err)
	}

	return &account, nil
}

func (r *firestoreAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	_, err := r.client.Collection("accounts").Doc(account.ID).Set(ctx, account)
	if err != nil {
		return errors.Internal("Failed to update account", err)
	}
	return nil
}
