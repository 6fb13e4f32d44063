/*
This file holds the ownership rules for modifying messages. Existence is
checked before ownership, so probing an ID that was never assigned reports
not-found rather than leaking whether it belongs to someone else.
*/
package message

import (
	"pinboard/internal/pkg/errs"
)

// AuthorizeOwner decides whether the given account may modify the message.
// The message is the result of a lookup and may be nil when nothing matched.
//
// Messages without an owner predate ownership tracking and are immutable for
// everyone, including their original authors.
func AuthorizeOwner(m *Message, userID int64) *errs.CustomError {
	if m == nil {
		return errs.NewError(errs.ErrMessageNotFound)
	}

	if m.OwnerUserID == nil {
		return errs.NewError(errs.ErrNotMessageOwner)
	}

	if *m.OwnerUserID != userID {
		return errs.NewError(errs.ErrNotMessageOwner)
	}

	return nil
}
