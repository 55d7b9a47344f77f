// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import "errors"

var (
	// ErrIndexOutOfRange is returned when an action targets a row that does
	// not exist.
	ErrIndexOutOfRange = errors.New("sharing request index out of range")

	// ErrRequestInFlight is returned when the user acts on a row whose
	// previous answer has not completed yet.
	ErrRequestInFlight = errors.New("sharing request update already in progress")

	// ErrUnknownLanguage is returned by PhrasesFor for unsupported languages.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownPolicy is returned by ParseMalformedPolicy.
	ErrUnknownPolicy = errors.New("unknown malformed device policy")
)
