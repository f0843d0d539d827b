// Package github holds the parts of GitHub webhook payloads we read
package github

// Repo is a partial repository document as sent in webhook deliveries
type Repo struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	FullName      string  `json:"full_name" validate:"required"`
	Private       bool    `json:"private"`
	Owner         User    `json:"owner"`
	Description   *string `json:"description"`
	DefaultBranch string  `json:"default_branch"`
	Stargazers    int     `json:"stargazers_count"`
	HTMLURL       string  `json:"html_url"`
}

// User is a partial user or org document
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Type  string `json:"type"`
}

// Payload is the envelope shared by ping, create and push deliveries.
// Ref and RefType are only set on create and push
type Payload struct {
	Zen        string `json:"zen,omitempty"`
	HookID     int64  `json:"hook_id,omitempty"`
	Ref        string `json:"ref,omitempty"`
	RefType    string `json:"ref_type,omitempty"`
	Repository *Repo  `json:"repository" validate:"required"`
	Sender     *User  `json:"sender,omitempty"`
}

// DescriptionOrEmpty returns the description, treating null as empty
func (r *Repo) DescriptionOrEmpty() string {
	if r == nil || r.Description == nil {
		return ""
	}
	return *r.Description
}
