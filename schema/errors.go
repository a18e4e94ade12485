/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"errors"

	"bennypowers.dev/tokenbench/token"
)

// Sentinel errors for token source operations.
var (
	// ErrMalformedJSON indicates a source document is not a JSON object.
	ErrMalformedJSON = errors.New("malformed token source")

	// ErrUnknownGroup indicates a group name outside the six token groups.
	ErrUnknownGroup = token.ErrUnknownGroup

	// ErrNotRefreshable indicates a group that has no source to re-parse.
	ErrNotRefreshable = errors.New("group cannot be refreshed")

	// ErrUnknownLanguage indicates an unsupported typography language.
	ErrUnknownLanguage = token.ErrUnknownLanguage

	// ErrTokenNotFound indicates no token has the requested name.
	ErrTokenNotFound = errors.New("token not found")
)
