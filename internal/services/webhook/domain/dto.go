// Package domain holds the webhook records, ports and failure taxonomy
package domain

import (
	"encoding/json"
	"time"
)

// SourceGitHub is the only source provider tag today
const SourceGitHub = "github"

// VersionsKey is the metadata key of the versions listing
const VersionsKey = "versions.json"

// ModuleRecord is a registered module
type ModuleRecord struct {
	Name        string `json:"name" bson:"name"`
	Type        string `json:"type" bson:"type"`
	Repository  string `json:"repository" bson:"repository"`
	Description string `json:"description" bson:"description"`
	StarCount   int    `json:"star_count" bson:"star_count"`
}

// VersionsMetadata lists the published versions of a module
type VersionsMetadata struct {
	Latest   *string  `json:"latest"`
	Versions []string `json:"versions"`
}

// EmptyVersions is the blob written at registration time
func EmptyVersions() VersionsMetadata { return VersionsMetadata{Versions: []string{}} }

// Encode renders the blob as stored
func (v VersionsMetadata) Encode() []byte {
	if v.Versions == nil {
		v.Versions = []string{}
	}
	b, _ := json.Marshal(v) // plain strings only, cannot fail
	return b
}

// Has reports whether version is listed
func (v VersionsMetadata) Has(version string) bool {
	for _, s := range v.Versions {
		if s == version {
			return true
		}
	}
	return false
}

// Build statuses
const BuildQueued = "queued"

// Build is a queued build request produced by a tag event
type Build struct {
	ID         string    `json:"id" bson:"_id"`
	Module     string    `json:"module" bson:"module"`
	Repository string    `json:"repository" bson:"repository"`
	Ref        string    `json:"ref" bson:"ref"`
	Version    string    `json:"version" bson:"version"`
	Subdir     string    `json:"subdir,omitempty" bson:"subdir,omitempty"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Delivery is one inbound webhook call as the transport saw it
type Delivery struct {
	Name          string
	Kind          string
	ContentType   string
	Body          []byte
	Subdir        string
	VersionPrefix string
}

// PingResult is reported for an accepted ping
type PingResult struct {
	Module     string `json:"module"`
	Repository string `json:"repository"`
}

// BuildResult is reported for a queued build
type BuildResult struct {
	Module     string `json:"module"`
	Version    string `json:"version"`
	Repository string `json:"repository"`
	StatusURL  string `json:"status_url"`
}

// Outcome is what a handled delivery reports back.
// A non empty Info marks a harmless no-op
type Outcome struct {
	Data any
	Info string
}
