// Package types provides shared types used across the listinglint codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Issue represents a single observation about listing content.
type Issue struct {
	Severity string `json:"severity"` // error, warning, good
	Area     string `json:"area"`     // title, tags, description, materials
	Message  string `json:"message"`
}

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityGood    = "good"
)

// Content area constants. AreaListing marks file-level observations that
// concern the document itself rather than one of the scored categories.
const (
	AreaTitle       = "title"
	AreaTags        = "tags"
	AreaDescription = "description"
	AreaMaterials   = "materials"
	AreaListing     = "listing"
)
