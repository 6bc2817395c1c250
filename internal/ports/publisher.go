package ports

import (
	"context"

	"github.com/3-14mpa/AITO/internal/domain"
)

// Publisher delivers meeting messages to whatever presentation surface is
// attached. Delivery failures never abort a meeting.
type Publisher interface {
	Publish(ctx context.Context, msg domain.Message) error
}
