package api

import (
	"github.com/google/uuid"
)

// uuidType is an alias so handler files don't import uuid directly.
type uuidType = uuid.UUID

// parseUUID wraps uuid.Parse so handler files don't import uuid directly.
func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
