// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package keyrock

import (
	"fmt"
)

// Error is a rejection coming from the IDM itself, as opposed to a
// transport failure. Callers classify it as a client error.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("keyrock: %s", e.Message)
}
