// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"

	"github.com/opplafy/tenant-manager/internal/keyrock"
	"github.com/opplafy/tenant-manager/internal/umbrella"
)

// ErrorKind classifies workflow failures. The HTTP layer translates kinds to
// status codes, the workflow itself never deals in HTTP terms.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindConflict
	KindForbidden
	KindNotFound
	KindUpstreamRejected
	KindInternal
)

type WorkflowError struct {
	Kind    ErrorKind
	Message string

	err error
}

func (e *WorkflowError) Error() string {
	return e.Message
}

func (e *WorkflowError) Unwrap() error {
	return e.err
}

// classify maps an upstream client rejection to KindUpstreamRejected with the
// upstream message preserved, anything else to KindInternal with a generic
// message that hides internal detail.
func classify(err error, internalMessage string) *WorkflowError {
	var kErr *keyrock.Error
	if errors.As(err, &kErr) {
		return &WorkflowError{Kind: KindUpstreamRejected, Message: kErr.Message, err: err}
	}

	var uErr *umbrella.Error
	if errors.As(err, &uErr) {
		return &WorkflowError{Kind: KindUpstreamRejected, Message: uErr.Message, err: err}
	}

	return &WorkflowError{Kind: KindInternal, Message: internalMessage, err: err}
}
