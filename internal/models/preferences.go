package models

import "strings"

// Preferences is the user's stored job matching profile.
// Saved wholesale on every settings change.
type Preferences struct {
	RoleKeywords       string   `json:"roleKeywords"` // comma-separated
	PreferredLocations []string `json:"preferredLocations"`
	PreferredModes     []string `json:"preferredMode"`
	ExperienceLevel    string   `json:"experienceLevel"` // empty = any
	Skills             string   `json:"skills"`          // comma-separated
	MinMatchScore      int      `json:"minMatchScore"`
}

// DefaultPreferences returns the documented defaults used when nothing
// is stored yet or the stored blob is corrupt.
func DefaultPreferences() Preferences {
	return Preferences{
		PreferredLocations: []string{},
		PreferredModes:     []string{},
		MinMatchScore:      40,
	}
}

// SplitCSV parses a comma-separated preference field into trimmed,
// lower-cased, non-empty tokens.
func SplitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
