package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item represents one found object and its custody history. Field names and
// JSON tags match the persisted record layout, so optional fields are only
// present once the matching transition has happened.
type Item struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	Description     string `json:"description,omitempty"`
	LocationFound   string `json:"locationFound"`
	DateFound       string `json:"dateFound"` // ISO yyyy-mm-dd
	StorageLocation string `json:"storageLocation"`
	Reporter        string `json:"reporter"`
	ImageURL        string `json:"imageUrl,omitempty"`
	Status          string `json:"status"`

	// Set once the item has been stored.
	ShelfCode  string `json:"shelfCode,omitempty"`
	DateStored string `json:"dateStored,omitempty"` // ISO
	StoredBy   string `json:"storedBy,omitempty"`

	// Set once the item has been claimed.
	Claimer     string `json:"claimer,omitempty"`
	DateClaimed string `json:"dateClaimed,omitempty"` // ISO

	// Set when the item arrived via a finder handing it in.
	FinderName    string `json:"finderName,omitempty"`
	FinderContact string `json:"finderContact,omitempty"`
	FinderNote    string `json:"finderNote,omitempty"`
	DateHandover  string `json:"dateHandover,omitempty"` // ISO
}

// Item statuses.
const (
	StatusFound   = "FOUND"
	StatusStored  = "STORED"
	StatusClaimed = "CLAIMED"
)

// DateFormat is the calendar-date layout used by all item date fields.
const DateFormat = "2006-01-02"

// ErrInvalid marks a rejected validation precondition.
var ErrInvalid = errors.New("invalid record")

// ValidStatus reports whether s is one of the known item statuses.
func ValidStatus(s string) bool {
	return s == StatusFound || s == StatusStored || s == StatusClaimed
}

// Validate checks the create/edit precondition: title, location found and
// storage location must be non-empty. Failures wrap ErrInvalid.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("%w: title required", ErrInvalid)
	}
	if strings.TrimSpace(i.LocationFound) == "" {
		return fmt.Errorf("%w: location found required", ErrInvalid)
	}
	if strings.TrimSpace(i.StorageLocation) == "" {
		return fmt.Errorf("%w: storage location required", ErrInvalid)
	}
	return nil
}

// NewID returns a fresh opaque item/announcement identifier.
func NewID() string {
	return uuid.NewString()
}

// Today formats t as a calendar date.
func Today(t time.Time) string {
	return t.Format(DateFormat)
}
