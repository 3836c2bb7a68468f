package model

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{StatusFound, true},
		{StatusStored, true},
		{StatusClaimed, true},
		{"found", false},
		{"LOST", false},
		{"", false},
	}

	for _, tt := range tests {
		got := ValidStatus(tt.status)
		if got != tt.expected {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.expected)
		}
	}
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"complete", Item{Title: "Wallet", LocationFound: "Hall", StorageLocation: "Front Desk"}, false},
		{"missing title", Item{LocationFound: "Hall", StorageLocation: "Front Desk"}, true},
		{"blank title", Item{Title: "   ", LocationFound: "Hall", StorageLocation: "Front Desk"}, true},
		{"missing location", Item{Title: "Wallet", StorageLocation: "Front Desk"}, true},
		{"missing storage", Item{Title: "Wallet", LocationFound: "Hall"}, true},
	}

	for _, tt := range tests {
		err := tt.item.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestAnnouncementValidate(t *testing.T) {
	tests := []struct {
		name    string
		ann     Announcement
		wantErr bool
	}{
		{"complete", Announcement{Title: "Found: Wallet", Body: "Please contact the front desk."}, false},
		{"missing title", Announcement{Body: "text"}, true},
		{"missing body", Announcement{Title: "Found: Wallet"}, true},
		{"blank body", Announcement{Title: "Found: Wallet", Body: " \n"}, true},
	}

	for _, tt := range tests {
		err := tt.ann.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
