// Package domain holds the read side view of registered modules
package domain

import whdom "modhook/internal/services/webhook/domain"

// Metadata states reported with a module
const (
	MetadataOK            = "ok"
	MetadataUninitialized = "uninitialized"
)

// ModuleView is a module record with its versions blob
type ModuleView struct {
	whdom.ModuleRecord
	MetadataStatus string                  `json:"metadata_status" example:"ok"`
	Versions       *whdom.VersionsMetadata `json:"versions,omitempty"`
}
