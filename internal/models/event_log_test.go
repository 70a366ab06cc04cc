package models

import "testing"

func TestIsValidEventType(t *testing.T) {
	valid := []string{
		EventTypeClick, EventTypeScroll, EventTypeHover, EventTypeKeyPress,
		EventTypeGoBack, EventTypeGoForward, EventTypeGoToURL,
		EventTypeSetStorage, EventTypeCustom, EventTypeDBUpdate,
	}
	for _, v := range valid {
		if !IsValidEventType(v) {
			t.Errorf("IsValidEventType(%q) = false, want true", v)
		}
	}

	invalid := []string{"", "click", "PAGE_VIEW", "db_update"}
	for _, v := range invalid {
		if IsValidEventType(v) {
			t.Errorf("IsValidEventType(%q) = true, want false", v)
		}
	}
}
