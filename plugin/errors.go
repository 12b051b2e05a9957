package plugin

import "fmt"

// ConflictError reports two plugins claiming the same format extension.
type ConflictError struct {
	PluginID  string
	OtherID   string
	Extension string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("plugin %s conflicts with %s: both handle extension %q", e.PluginID, e.OtherID, e.Extension)
}

// MissingPluginError reports that no plugin is registered for a format.
type MissingPluginError struct {
	Kind      string // "reader" or "writer"
	Extension string
}

func (e *MissingPluginError) Error() string {
	return fmt.Sprintf("no %s is registered for format %q", e.Kind, e.Extension)
}
