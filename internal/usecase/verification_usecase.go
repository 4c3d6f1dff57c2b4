package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
	"localmart/pkg/logger"
)

type VerificationUseCase struct {
	verificationRepo repository.VerificationRepository
	shopRepo         repository.ShopRepository
	authorizer       *Authorizer
}

func NewVerificationUseCase(verificationRepo repository.VerificationRepository, shopRepo repository.ShopRepository, authorizer *Authorizer) *VerificationUseCase {
	return &VerificationUseCase{
		verificationRepo: verificationRepo,
		shopRepo:         shopRepo,
		authorizer:       authorizer,
	}
}

type SubmitVerificationInput struct {
	BusinessName string
	Address      string
	DocumentURLs []string
}

// SubmitForReview files (or re-files, after a rejection) a verification
// request for the caller's shop. Submitting while already Pending is an
// idempotent success that returns the active request.
func (uc *VerificationUseCase) SubmitForReview(ctx context.Context, actorUID, shopID string, input SubmitVerificationInput) (*entity.VerificationRequest, error) {
	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapManageOwnShop, shopID); err != nil {
		return nil, err
	}

	request := &entity.VerificationRequest{
		ID:           uuid.New().String(),
		ShopID:       shopID,
		BusinessName: input.BusinessName,
		Address:      input.Address,
		DocumentURLs: input.DocumentURLs,
		Status:       entity.VerificationPending,
		SubmittedAt:  time.Now(),
	}

	return uc.verificationRepo.Submit(ctx, request)
}

// Decide records an admin's approve/reject decision. The authorization check
// runs before any mutation; the status write is atomic with the request
// record and immediately visible to discovery.
func (uc *VerificationUseCase) Decide(ctx context.Context, actorUID, shopID string, decision entity.Decision) (*entity.VerificationRequest, error) {
	admin, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapDecideVerification, "")
	if err != nil {
		return nil, err
	}

	if decision != entity.DecisionApprove && decision != entity.DecisionReject {
		return nil, errors.BadRequest("Unknown decision", nil)
	}

	request, err := uc.verificationRepo.Decide(ctx, shopID, decision, admin.ID, "")
	if err != nil {
		return nil, err
	}

	logger.Info("Shop %s verification decided: %s by %s", shopID, request.Status, admin.ID)
	return request, nil
}

// ListPending is the admin review queue.
func (uc *VerificationUseCase) ListPending(ctx context.Context, actorUID string, limit, offset int) ([]*entity.VerificationRequest, int64, error) {
	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapReviewVerification, ""); err != nil {
		return nil, 0, err
	}
	return uc.verificationRepo.ListByStatus(ctx, entity.VerificationPending, limit, offset)
}

// GetShopStatus lets a shop owner check where their submission stands.
func (uc *VerificationUseCase) GetShopStatus(ctx context.Context, actorUID, shopID string) (*entity.VerificationRequest, error) {
	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapManageOwnShop, shopID); err != nil {
		return nil, err
	}
	return uc.verificationRepo.GetActiveByShop(ctx, shopID)
}
