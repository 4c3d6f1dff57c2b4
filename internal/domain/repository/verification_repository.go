package repository

import (
	"context"

	"localmart/internal/domain/entity"
)

type VerificationRepository interface {
	// Submit stores the request and moves the shop to Pending in one atomic
	// step. If the shop is already Pending the existing active request is
	// returned unchanged.
	Submit(ctx context.Context, request *entity.VerificationRequest) (*entity.VerificationRequest, error)
	// Decide applies an admin decision to the shop's active request and the
	// shop's denormalized status atomically, serialized per shop. An
	// idempotent retry of the already-applied decision succeeds without a
	// write; a conflicting decision on a terminal status fails with
	// INVALID_TRANSITION (entity.EvaluateDecision holds the rules).
	Decide(ctx context.Context, shopID string, decision entity.Decision, reviewerID, note string) (*entity.VerificationRequest, error)
	GetActiveByShop(ctx context.Context, shopID string) (*entity.VerificationRequest, error)
	ListByStatus(ctx context.Context, status entity.VerificationStatus, limit, offset int) ([]*entity.VerificationRequest, int64, error)
}
