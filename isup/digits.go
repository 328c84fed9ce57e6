// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

/*
Package isup implements the ISUP based digit strings carried in CAP parameters.

Digits is the CAP Digits type, an OCTET STRING that holds either an ISUP Generic
Number or ISUP Generic Digits. Which of the two it holds is not visible on the
wire; the enclosing parameter marks it with SetIsGenericNumber or
SetIsGenericDigits after decoding.
*/
package isup

import (
	"errors"
	"fmt"

	"github.com/cgngc/go-cap/ber"
)

// Size bounds of CAP Digits.
const (
	MinDigitsLength = 2
	MaxDigitsLength = 16
)

// Error definitions.
var (
	ErrNotPrimitive     = errors.New("isup: digits are not primitive")
	ErrInvalidLength    = errors.New("isup: invalid digits length")
	ErrNoData           = errors.New("isup: digits data is not set")
	ErrNotGenericNumber = errors.New("isup: digits do not hold a generic number")
	ErrInvalidDigits    = errors.New("isup: invalid address signals")
	ErrInvalidField     = errors.New("isup: field out of range")
)

// Digits represents a CAP Digits value.
type Digits struct {
	data            []byte
	isGenericDigits bool
	isGenericNumber bool
}

// NewDigits creates a new Digits holding a copy of data.
func NewDigits(data []byte) *Digits {
	d := &Digits{}
	if data != nil {
		d.data = append([]byte{}, data...)
	}
	return d
}

// NewDigitsFromGenericNumber creates a new Digits holding gn, marked as a
// generic number.
func NewDigitsFromGenericNumber(gn *GenericNumber) (*Digits, error) {
	b, err := gn.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode generic number: %w", err)
	}

	d := &Digits{data: b}
	d.SetIsGenericNumber()
	return d, nil
}

// Data returns the raw contents of Digits.
func (d *Digits) Data() []byte {
	return d.data
}

// IsGenericNumber reports whether Digits is marked as a generic number.
func (d *Digits) IsGenericNumber() bool {
	return d.isGenericNumber
}

// IsGenericDigits reports whether Digits is marked as generic digits.
func (d *Digits) IsGenericDigits() bool {
	return d.isGenericDigits
}

// SetIsGenericNumber marks Digits as a generic number.
func (d *Digits) SetIsGenericNumber() {
	d.isGenericNumber = true
	d.isGenericDigits = false
}

// SetIsGenericDigits marks Digits as generic digits.
func (d *Digits) SetIsGenericDigits() {
	d.isGenericDigits = true
	d.isGenericNumber = false
}

// GenericNumber returns the generic number held in Digits.
func (d *Digits) GenericNumber() (*GenericNumber, error) {
	if !d.isGenericNumber {
		return nil, ErrNotGenericNumber
	}
	if d.data == nil {
		return nil, ErrNoData
	}
	return ParseGenericNumber(d.data)
}

// DecodeAll decodes the length and contents of Digits whose tag has already
// been read from r.
func (d *Digits) DecodeAll(r *ber.Reader) error {
	if !r.IsTagPrimitive() {
		return ErrNotPrimitive
	}

	length, err := r.ReadLength()
	if err != nil {
		return err
	}
	return d.DecodeData(r, length)
}

// DecodeData decodes length bytes of contents from r.
func (d *Digits) DecodeData(r *ber.Reader, length int) error {
	data, err := r.ReadOctetStringData(length)
	if err != nil {
		return err
	}
	if err := checkLength(len(data)); err != nil {
		return err
	}

	d.data = data
	return nil
}

// Validate reports whether Digits can be encoded: data must be set and within
// MinDigitsLength and MaxDigitsLength octets.
func (d *Digits) Validate() error {
	if d.data == nil {
		return ErrNoData
	}
	return checkLength(len(d.data))
}

func checkLength(n int) error {
	if n < MinDigitsLength || n > MaxDigitsLength {
		return fmt.Errorf("got %d octets, want %d-%d: %w", n, MinDigitsLength, MaxDigitsLength, ErrInvalidLength)
	}
	return nil
}

// EncodeAll writes Digits as a primitive element with the given tag.
// Nothing is written if Validate fails.
func (d *Digits) EncodeAll(w *ber.Writer, class ber.Class, number int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return w.WriteOctetString(class, number, d.data)
}

// EncodeLen returns the serial length of Digits encoded with the tag number.
func (d *Digits) EncodeLen(number int) int {
	return ber.ElementLen(number, len(d.data))
}

// String returns Digits in human readable string.
func (d *Digits) String() string {
	if d.isGenericNumber {
		if gn, err := d.GenericNumber(); err == nil {
			return fmt.Sprintf("{GenericNumber: %v}", gn)
		}
	}
	return fmt.Sprintf("{Data: %x, IsGenericNumber: %v, IsGenericDigits: %v}",
		d.data,
		d.isGenericNumber,
		d.isGenericDigits,
	)
}
