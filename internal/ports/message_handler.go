//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-order-events/pkg/queue"
)

//counterfeiter:generate -o ../mocks/message_handler.go . MessageHandler

// MessageHandler processes a single queue message. A returned error hands the
// message to the client's retry handling.
type MessageHandler interface {
	ProcessMessage(ctx context.Context, msg queue.Message) error
}
