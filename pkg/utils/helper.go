package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUID reports false for anything that is not a well-formed UUID
func ParseUUID(value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
