package domain

import (
	"fmt"
	"time"
)

const (
	OrderModeDraft    OrderMode = "draft"
	OrderModeApproved OrderMode = "approved"
)

type (
	OrderMode string

	Order struct {
		ID                 int64     `json:"id" db:"id"`
		ExternalIdentifier *string   `json:"externalIdentifier,omitempty" db:"external_identifier"`
		Mode               OrderMode `json:"mode" db:"mode"`
		UserID             int64     `json:"userId" db:"user_id"`
		ProductID          int64     `json:"productId" db:"product_id"`
		CreatedAt          time.Time `json:"createdAt" db:"created_at"`
		UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
	}

	// OrderDeletedEvent is published on order.events when an order must go.
	OrderDeletedEvent struct {
		ID *int64 `json:"id"`
	}

	// UserDeletedEvent is published on user.events when a user is removed;
	// all of the user's orders are deleted with it.
	UserDeletedEvent struct {
		ID *int64 `json:"id"`
	}
)

func (e OrderDeletedEvent) Validate() error {
	return validateID(e.ID, "order.deleted")
}

func (e UserDeletedEvent) Validate() error {
	return validateID(e.ID, "user.deleted")
}

func validateID(id *int64, event string) error {
	if id == nil {
		return NewInvalidMessageError(event, fmt.Errorf("%w: missing id", ErrInvalidMessage))
	}

	if *id <= 0 {
		return NewInvalidMessageError(event, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidMessage, *id))
	}

	return nil
}
