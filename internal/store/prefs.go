package store

import (
	"context"
	"database/sql"
)

// Form tabs.
const (
	TabNew      = "new"
	TabHandover = "handover"
	TabAnnounce = "announce"
)

// Prefs are the two small UI-preference flags: the active form tab and
// whether the form panel is collapsed. Not part of the domain model.
type Prefs struct {
	FormTab       string `json:"formTab"`
	FormCollapsed bool   `json:"formCollapsed"`
}

// GetPrefs reads the UI preferences, falling back to defaults for missing
// or unknown values.
func GetPrefs(ctx context.Context, db *sql.DB) (Prefs, error) {
	p := Prefs{FormTab: TabNew}

	tab, ok, err := getRecord(ctx, db, keyFormTab)
	if err != nil {
		return p, err
	}
	if ok && (tab == TabHandover || tab == TabAnnounce) {
		p.FormTab = tab
	}

	collapsed, ok, err := getRecord(ctx, db, keyFormCollapsed)
	if err != nil {
		return p, err
	}
	p.FormCollapsed = ok && collapsed == "1"
	return p, nil
}

// SetPrefs stores the UI preferences.
func SetPrefs(ctx context.Context, db *sql.DB, p Prefs) error {
	tab := p.FormTab
	if tab != TabHandover && tab != TabAnnounce {
		tab = TabNew
	}
	if err := setRecord(ctx, db, keyFormTab, tab); err != nil {
		return err
	}
	collapsed := "0"
	if p.FormCollapsed {
		collapsed = "1"
	}
	return setRecord(ctx, db, keyFormCollapsed, collapsed)
}
