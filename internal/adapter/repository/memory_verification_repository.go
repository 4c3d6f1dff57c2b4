package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

// memoryVerificationRepository keeps one active request per shop and owns
// the shop's verification status writes. Transitions for the same shop are
// serialized by a per-shop lock so operations on different shops never block
// one another; the shop store's own lock keeps readers from observing a
// half-applied transition.
type memoryVerificationRepository struct {
	mu        sync.RWMutex
	requests  map[string]entity.VerificationRequest // keyed by shop id
	shopLocks sync.Map                              // shopID -> *sync.Mutex
	shops     *MemoryShopRepository
}

func NewMemoryVerificationRepository(shops *MemoryShopRepository) repository.VerificationRepository {
	return &memoryVerificationRepository{
		requests: make(map[string]entity.VerificationRequest),
		shops:    shops,
	}
}

func (r *memoryVerificationRepository) lockShop(shopID string) *sync.Mutex {
	lock, _ := r.shopLocks.LoadOrStore(shopID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (r *memoryVerificationRepository) Submit(ctx context.Context, request *entity.VerificationRequest) (*entity.VerificationRequest, error) {
	lock := r.lockShop(request.ShopID)
	lock.Lock()
	defer lock.Unlock()

	shop, err := r.shops.GetByID(ctx, request.ShopID)
	if err != nil {
		return nil, err
	}

	if shop.VerificationStatus == entity.VerificationPending {
		r.mu.RLock()
		existing, ok := r.requests[request.ShopID]
		r.mu.RUnlock()
		if ok {
			return &existing, nil
		}
		// Shop is Pending from creation but was never submitted: fall
		// through and file the first request.
	}

	if err := r.shops.setStatus(request.ShopID, entity.VerificationPending); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.requests[request.ShopID] = *request
	r.mu.Unlock()

	stored := *request
	return &stored, nil
}

func (r *memoryVerificationRepository) Decide(ctx context.Context, shopID string, decision entity.Decision, reviewerID, note string) (*entity.VerificationRequest, error) {
	lock := r.lockShop(shopID)
	lock.Lock()
	defer lock.Unlock()

	shop, err := r.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	applied, err := entity.EvaluateDecision(shop.VerificationStatus, decision)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	request, ok := r.requests[shopID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("Verification request", nil)
	}

	if !applied {
		return &request, nil
	}

	now := time.Now()
	request.Status = decision.Status()
	request.ReviewerID = reviewerID
	request.ReviewNote = note
	request.DecidedAt = &now

	if err := r.shops.setStatus(shopID, request.Status); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.requests[shopID] = request
	r.mu.Unlock()

	return &request, nil
}

func (r *memoryVerificationRepository) GetActiveByShop(_ context.Context, shopID string) (*entity.VerificationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if request, ok := r.requests[shopID]; ok {
		return &request, nil
	}
	return nil, errors.NotFound("Verification request", nil)
}

func (r *memoryVerificationRepository) ListByStatus(_ context.Context, status entity.VerificationStatus, limit, offset int) ([]*entity.VerificationRequest, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.VerificationRequest
	for _, request := range r.requests {
		if request.Status != status {
			continue
		}
		match := request
		matched = append(matched, &match)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SubmittedAt.Before(matched[j].SubmittedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.VerificationRequest{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}
