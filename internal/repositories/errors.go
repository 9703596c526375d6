package repositories

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"lawmanBack/internal/models"
)

// writeError translates a driver write failure. An unacknowledged write is
// not a failure of the store but is reported as one to callers.
func writeError(op string, err error) error {
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return fmt.Errorf("%s: %w", op, models.ErrNotAcknowledged)
	}
	return fmt.Errorf("%s: %w", op, err)
}
