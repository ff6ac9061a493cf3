//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-order-events/internal/domain"
)

//counterfeiter:generate -o ../mocks/order_repository.go . OrderRepository

type (
	// Finder reads an order by its id.
	Finder interface {
		Find(ctx context.Context, orderID int64) (*domain.Order, error)
	}

	// Deleter deletes an order by its id.
	Deleter interface {
		Delete(ctx context.Context, orderID int64) error
	}

	// UserOrdersDeleter deletes every order of a user and returns the removed ids.
	UserOrdersDeleter interface {
		DeleteByUser(ctx context.Context, userID int64) ([]int64, error)
	}

	OrderRepository interface {
		Finder
		Deleter
		UserOrdersDeleter
	}
)
