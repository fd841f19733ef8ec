package service

import "cinelog/internal/http-api/apperr"

// Owned is any record with a single owning user.
type Owned interface {
	OwnerID() string
}

// authorizeOwner rejects mutation of a record the caller does not own.
// Every owner check in the service layer goes through here so the rule
// cannot drift between entities.
func authorizeOwner(record Owned, userID string) error {
	if userID == "" {
		return apperr.Unauthenticated("authentication required")
	}
	if record.OwnerID() != userID {
		return apperr.Forbidden("you can only modify your own records")
	}
	return nil
}
