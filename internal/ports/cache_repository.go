//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-order-events/internal/domain"
)

//counterfeiter:generate -o ../mocks/cache_repository.go . CacheRepository
type (
	Setter interface {
		Set(context.Context, *domain.Order) error
	}

	CacheRepository interface {
		Finder
		Setter
		Deleter
	}
)
