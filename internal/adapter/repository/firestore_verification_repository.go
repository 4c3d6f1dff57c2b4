package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

// firestoreVerificationRepository keeps the active request per shop at a
// deterministic document (doc id = shop id) so submissions and decisions
// can read and write it inside one transaction together with the shop doc.
// Firestore transactions give the per-shop serialization the state machine
// needs: a decision racing a resubmission retries instead of interleaving.
type firestoreVerificationRepository struct {
	client *firestore.Client
}

func NewFirestoreVerificationRepository(client *firestore.Client) repository.VerificationRepository {
	return &firestoreVerificationRepository{
		client: client,
	}
}

func (r *firestoreVerificationRepository) Submit(ctx context.Context, request *entity.VerificationRequest) (*entity.VerificationRequest, error) {
	shopRef := r.client.Collection("shops").Doc(request.ShopID)
	reqRef := r.client.Collection("verification_requests").Doc(request.ShopID)

	var result entity.VerificationRequest

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		shopDoc, err := tx.Get(shopRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Shop", err)
			}
			return err
		}

		var shop entity.Shop
		if err := shopDoc.DataTo(&shop); err != nil {
			return err
		}
		if shop.DeletedAt != nil {
			return errors.NotFound("Shop", nil)
		}

		if shop.VerificationStatus == entity.VerificationPending {
			reqDoc, err := tx.Get(reqRef)
			if err == nil {
				// Already pending with a request on file: idempotent no-op.
				if err := reqDoc.DataTo(&result); err != nil {
					return err
				}
				return nil
			}
			if status.Code(err) != codes.NotFound {
				return err
			}
			// Pending from shop creation, first request being filed.
		}

		result = *request
		result.Status = entity.VerificationPending
		if err := tx.Set(reqRef, &result); err != nil {
			return err
		}
		return tx.Set(shopRef, map[string]interface{}{
			"verificationStatus": entity.VerificationPending,
			"updatedAt":          time.Now(),
		}, firestore.MergeAll)
	})
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, err
		}
		return nil, errors.Internal("Failed to submit verification request", err)
	}

	return &result, nil
}

func (r *firestoreVerificationRepository) Decide(ctx context.Context, shopID string, decision entity.Decision, reviewerID, note string) (*entity.VerificationRequest, error) {
	shopRef := r.client.Collection("shops").Doc(shopID)
	reqRef := r.client.Collection("verification_requests").Doc(shopID)

	var result entity.VerificationRequest

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		shopDoc, err := tx.Get(shopRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Shop", err)
			}
			return err
		}

		var shop entity.Shop
		if err := shopDoc.DataTo(&shop); err != nil {
			return err
		}
		if shop.DeletedAt != nil {
			return errors.NotFound("Shop", nil)
		}

		reqDoc, err := tx.Get(reqRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Verification request", err)
			}
			return err
		}
		if err := reqDoc.DataTo(&result); err != nil {
			return err
		}

		applied, err := entity.EvaluateDecision(shop.VerificationStatus, decision)
		if err != nil {
			return err
		}
		if !applied {
			// Idempotent retry of the same decision.
			return nil
		}

		now := time.Now()
		result.Status = decision.Status()
		result.ReviewerID = reviewerID
		result.ReviewNote = note
		result.DecidedAt = &now

		if err := tx.Set(reqRef, &result); err != nil {
			return err
		}
		return tx.Set(shopRef, map[string]interface{}{
			"verificationStatus": result.Status,
			"updatedAt":          now,
		}, firestore.MergeAll)
	})
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) || errors.Is(err, errors.CodeInvalidTransition) {
			return nil, err
		}
		return nil, errors.Internal("Failed to apply verification decision", err)
	}

	return &result, nil
}

func (r *firestoreVerificationRepository) GetActiveByShop(ctx context.Context, shopID string) (*entity.VerificationRequest, error) {
	doc, err := r.client.Collection("verification_requests").Doc(shopID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Verification request", err)
		}
		return nil, errors.Internal("Failed to get verification request", err)
	}

	var request entity.VerificationRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to decode verification request", err)
	}

	return &request, nil
}

func (r *firestoreVerificationRepository) ListByStatus(ctx context.Context, reqStatus entity.VerificationStatus, limit, offset int) ([]*entity.VerificationRequest, int64, error) {
	query := r.client.Collection("verification_requests").
		Where("status", "==", reqStatus).
		OrderBy("submittedAt", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list verification requests", err)
	}

	total := int64(len(docs))

	if offset > 0 {
		if offset >= len(docs) {
			return []*entity.VerificationRequest{}, total, nil
		}
		docs = docs[offset:]
	}
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}

	var requests []*entity.VerificationRequest
	for _, doc := range docs {
		var request entity.VerificationRequest
		if err := doc.DataTo(&request); err != nil {
			continue
		}
		requests = append(requests, &request)
	}

	return requests, total, nil
}
