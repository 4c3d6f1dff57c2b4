package entity

import (
	"time"

	"localmart/pkg/errors"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Status() VerificationStatus {
	if d == DecisionApprove {
		return VerificationApproved
	}
	return VerificationRejected
}

// VerificationRequest is the explicit review record for a shop. The shop
// keeps a denormalized status; both are written in the same transaction.
type VerificationRequest struct {
	ID           string             `json:"id" firestore:"id"`
	ShopID       string             `json:"shop_id" firestore:"shopId"`
	BusinessName string             `json:"business_name" firestore:"businessName"`
	Address      string             `json:"address" firestore:"address"`
	DocumentURLs []string           `json:"document_urls" firestore:"documentUrls"`
	Status       VerificationStatus `json:"status" firestore:"status"`
	SubmittedAt  time.Time          `json:"submitted_at" firestore:"submittedAt"`
	ReviewerID   string             `json:"reviewer_id,omitempty" firestore:"reviewerId,omitempty"`
	ReviewNote   string             `json:"review_note,omitempty" firestore:"reviewNote,omitempty"`
	DecidedAt    *time.Time         `json:"decided_at,omitempty" firestore:"decidedAt,omitempty"`
}

// EvaluateDecision applies the state machine rules to a decision against the
// current shop status. It returns applied=false when the decision is an
// idempotent retry that must succeed without a write. Shared by every store
// backend so the rules exist in one place.
func EvaluateDecision(current VerificationStatus, decision Decision) (applied bool, err error) {
	target := decision.Status()
	if current == target {
		return false, nil
	}
	if current != VerificationPending {
		return false, errors.InvalidTransition(
			"Shop verification is already decided; resubmit before a new decision")
	}
	return true, nil
}
