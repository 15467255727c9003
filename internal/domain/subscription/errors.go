package subscription

import "github.com/culturehub/backend/internal/domain/shared"

// Validation codes. All of them surface as 400 Bad Request.
const (
	CodeWithoutGroup = "SUBSCRIPTION_WITHOUT_GROUP"
	CodeWrongClient  = "SUBSCRIPTION_WRONG_CLIENT"
	CodeWrongGroup   = "SUBSCRIPTION_WRONG_GROUP"
	CodeNotActive    = "SUBSCRIPTION_NOT_ACTIVE"
	CodeOutOfRange   = "SUBSCRIPTION_OUT_OF_RANGE"
	CodeNoVisitsLeft = "NO_VISITS_LEFT"
)

var (
	ErrNotFound     = shared.NotFound("Subscription")
	ErrWithoutGroup = shared.NewDomainError(CodeWithoutGroup, "A subscription cannot be used for a class without a group")
	ErrWrongClient  = shared.NewDomainError(CodeWrongClient, "Subscription belongs to another client")
	ErrWrongGroup   = shared.NewDomainError(CodeWrongGroup, "Subscription is for another group")
	ErrNoVisitsLeft = shared.NewDomainError(CodeNoVisitsLeft, "No visits left on the subscription")
)
