package models

import "net/url"

// ArtifactLinks are the submission links for the shipped project.
type ArtifactLinks struct {
	Lovable  string `json:"lovable"`
	Github   string `json:"github"`
	Deployed string `json:"deployed"`
}

// ShipStatus is the derived submission state, never persisted.
type ShipStatus string

// ShipStatus constants.
const (
	ShipNotStarted ShipStatus = "Not Started"
	ShipInProgress ShipStatus = "In Progress"
	ShipShipped    ShipStatus = "Shipped"
)

// IsValidSubmissionURL reports whether s parses as an absolute http or
// https URL.
func IsValidSubmissionURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// AllLinksValid reports whether every submission link is a valid URL.
func (l ArtifactLinks) AllLinksValid() bool {
	return IsValidSubmissionURL(l.Lovable) &&
		IsValidSubmissionURL(l.Github) &&
		IsValidSubmissionURL(l.Deployed)
}

// AnyLinkSet reports whether at least one link has been entered.
func (l ArtifactLinks) AnyLinkSet() bool {
	return l.Lovable != "" || l.Github != "" || l.Deployed != ""
}

// ShipStatusFor derives the submission state from step completion and the
// entered links.
func ShipStatusFor(links ArtifactLinks, completedSteps, totalSteps int) ShipStatus {
	if completedSteps == totalSteps && links.AllLinksValid() {
		return ShipShipped
	}
	if completedSteps > 0 || links.AnyLinkSet() {
		return ShipInProgress
	}
	return ShipNotStarted
}
