// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package cap

import (
	"errors"
	"fmt"

	"github.com/wmnsk/go-tcap"

	"github.com/cgngc/go-cap/ber"
	"github.com/cgngc/go-cap/isup"
)

// Error definitions.
var (
	// ErrMistypedParameter matches every *ParsingError.
	ErrMistypedParameter = errors.New("mistyped parameter")

	ErrStreamTruncated               = errors.New("stream truncated")
	ErrMalformedTLV                  = errors.New("malformed TLV")
	ErrUnexpectedConstructedEncoding = errors.New("unexpected constructed encoding")
	ErrMissingMandatoryField         = errors.New("missing mandatory field")
	ErrMissingRequiredValue          = errors.New("missing required value")
	ErrServiceKeyOutOfRange          = errors.New("service key out of range")
)

// Reason classifies a ParsingError.
type Reason uint8

// Reason definitions.
const (
	StreamTruncated Reason = iota + 1
	MalformedTLV
	UnexpectedConstructedEncoding
	MissingMandatoryField
)

// String returns the Reason in string.
func (r Reason) String() string {
	switch r {
	case StreamTruncated:
		return "streamTruncated"
	case MalformedTLV:
		return "malformedTlv"
	case UnexpectedConstructedEncoding:
		return "unexpectedConstructedEncoding"
	case MissingMandatoryField:
		return "missingMandatoryField"
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

func (r Reason) sentinel() error {
	switch r {
	case StreamTruncated:
		return ErrStreamTruncated
	case MalformedTLV:
		return ErrMalformedTLV
	case UnexpectedConstructedEncoding:
		return ErrUnexpectedConstructedEncoding
	case MissingMandatoryField:
		return ErrMissingMandatoryField
	}
	return nil
}

// ParsingError is returned when a parameter cannot be decoded.
//
// Every ParsingError is a mistyped parameter from the point of view of the
// peer; Problem returns the Reject problem to answer it with.
type ParsingError struct {
	Primitive string
	Reason    Reason
	Field     string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ParsingError) Error() string {
	s := "cap: error while decoding " + e.Primitive
	if e.Field != "" {
		s += " (" + e.Field + ")"
	}
	s += ": " + e.Message
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying error.
func (e *ParsingError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMistypedParameter or the sentinel of the
// Reason.
func (e *ParsingError) Is(target error) bool {
	if target == ErrMistypedParameter {
		return true
	}
	s := e.Reason.sentinel()
	return s != nil && target == s
}

// Problem returns the TCAP Reject problem for the error.
func (e *ParsingError) Problem() *Problem {
	return NewInvokeProblem(tcap.InvokeProblemMistypedParameter)
}

// newParsingError classifies err by its cause.
func newParsingError(primitive, field, msg string, err error) *ParsingError {
	reason := MalformedTLV
	switch {
	case errors.Is(err, ber.ErrUnexpectedEOF):
		reason = StreamTruncated
	case errors.Is(err, isup.ErrNotPrimitive):
		reason = UnexpectedConstructedEncoding
	}

	return &ParsingError{
		Primitive: primitive,
		Reason:    reason,
		Field:     field,
		Message:   msg,
		Err:       err,
	}
}

// EncodingError is returned when a parameter cannot be encoded.
type EncodingError struct {
	Primitive string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	s := "cap: error while encoding " + e.Primitive + ": " + e.Message
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}
