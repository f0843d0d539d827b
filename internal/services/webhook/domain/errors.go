package domain

import (
	"fmt"

	perr "modhook/internal/platform/errors"
)

// MaxModulesPerRepository is the fixed per repository quota
const MaxModulesPerRepository = 3

var quotaMsg = fmt.Sprintf("max number of modules for one repository (%d) has been reached", MaxModulesPerRepository)

// Rejections reported to the sender with status 400
var (
	ErrMissingName        = perr.New(perr.ErrorCodeValidation, "no module name specified")
	ErrInvalidName        = perr.New(perr.ErrorCodeValidation, "module name is not valid")
	ErrRepositoryMismatch = perr.New(perr.ErrorCodeValidation, "module name is registered to a different repository")
	ErrQuotaExceeded      = perr.New(perr.ErrorCodeValidation, quotaMsg)
	ErrUnsupportedEvent   = perr.New(perr.ErrorCodeValidation, "webhook event type not supported")
	ErrModuleNotFound     = perr.New(perr.ErrorCodeValidation, "no module with this name registered")
	ErrVersionExists      = perr.New(perr.ErrorCodeValidation, "version already exists")
	ErrBuildQueued        = perr.New(perr.ErrorCodeValidation, "a build for this version is already queued")
	ErrInvalidSubdir      = perr.New(perr.ErrorCodeValidation, "provided sub directory is not valid as it does not end with a /")
	ErrAbsoluteSubdir     = perr.New(perr.ErrorCodeValidation, "provided sub directory is not valid as it starts with a /")
)

// Infos reported with status 200 and success false
const (
	InfoNotTag         = "created ref is not tag"
	InfoPrefixMismatch = "ignoring event as the version does not match the version prefix"
)
