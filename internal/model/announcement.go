package model

import (
	"fmt"
	"strings"
	"time"
)

// Announcement is a staff-authored public notice, optionally tied to one
// item. ItemID is a weak reference: the item may have been deleted since,
// and the link is then treated as unresolved.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
	ItemID    string    `json:"itemId,omitempty"`
}

// Validate checks the create precondition: title and body must be non-empty.
// Failures wrap ErrInvalid.
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title required", ErrInvalid)
	}
	if strings.TrimSpace(a.Body) == "" {
		return fmt.Errorf("%w: body required", ErrInvalid)
	}
	return nil
}
