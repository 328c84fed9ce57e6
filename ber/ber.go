// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

/*
Package ber provides the ASN.1 BER(Basic Encoding Rules, ITU-T X.690) stream
primitives used by the CAP parameter codecs.

Reader is a bounded cursor over a byte slice. It reads the identifier octets of
an element first and remembers their class and form, so that a codec can dispatch
on the tag before deciding how to consume the contents. Writer appends elements
to a buffer and supports two-pass definite length encoding: a placeholder is
reserved before the contents are written and backpatched afterwards.

Only definite lengths are supported.
*/
package ber

import "fmt"

// Class is the class of a BER identifier.
type Class uint8

// Class definitions.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Universal tag numbers used by the CAP codecs.
const (
	TagBoolean     = 0x01
	TagInteger     = 0x02
	TagOctetString = 0x04
	TagNull        = 0x05
	TagEnumerated  = 0x0a
	TagSequence    = 0x10
	TagSet         = 0x11
)

const (
	constructedBit   = 0x20
	longFormTag      = 0x1f
	longFormLength   = 0x80
	maxShortLength   = 0x7f
	maxShortTagValue = 30
)

// String returns the name of the Class.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "universal"
	case ClassApplication:
		return "application"
	case ClassContextSpecific:
		return "context-specific"
	case ClassPrivate:
		return "private"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// TagLen returns the number of identifier octets needed for the tag number.
func TagLen(number int) int {
	if number <= maxShortTagValue {
		return 1
	}
	n := 1
	for number > 0 {
		n++
		number >>= 7
	}
	return n
}

// LengthLen returns the number of octets needed for a definite length.
func LengthLen(length int) int {
	if length <= maxShortLength {
		return 1
	}
	n := 1
	for length > 0 {
		n++
		length >>= 8
	}
	return n
}

// ElementLen returns the serial length of a whole element with the given tag
// number and content length.
func ElementLen(number, contentLen int) int {
	return TagLen(number) + LengthLen(contentLen) + contentLen
}

// IntegerLen returns the number of content octets of the minimal two's
// complement encoding of v.
func IntegerLen(v int64) int {
	n := 1
	for v > 127 || v < -128 {
		n++
		v >>= 8
	}
	return n
}
