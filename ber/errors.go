// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
)

// Error definitions.
var (
	ErrUnexpectedEOF    = errors.New("ber: unexpected end of data")
	ErrInvalidLength    = errors.New("ber: invalid length encoding")
	ErrIndefiniteLength = errors.New("ber: indefinite length not supported")
	ErrInvalidInteger   = errors.New("ber: invalid integer encoding")
	ErrInvalidTag       = errors.New("ber: invalid tag")
	ErrNoTag            = errors.New("ber: no tag has been read")
	ErrInvalidPosition  = errors.New("ber: invalid content position")
)

// DecodeError is returned by Reader when the input cannot be decoded.
type DecodeError struct {
	Offset  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ber: %s at offset %d: %v", e.Message, e.Offset, e.Err)
	}
	return fmt.Sprintf("ber: %s at offset %d", e.Message, e.Offset)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(offset int, msg string, err error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: msg,
		Err:     err,
	}
}
