// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package isup

import (
	"fmt"
	"io"
	"strings"
)

// Number Qualifier Indicator definitions (ITU-T Q.763 3.26).
const (
	QualifierDialledDigits uint8 = iota
	QualifierAdditionalCalledNumber
	_
	_
	_
	QualifierAdditionalConnectedNumber
	QualifierAdditionalCallingPartyNumber
	QualifierAdditionalOriginalCalledNumber
	QualifierAdditionalRedirectingNumber
	QualifierAdditionalRedirectionNumber
)

// Nature of Address Indicator definitions.
const (
	NatureSubscriber uint8 = iota + 1
	NatureUnknown
	NatureNational
	NatureInternational
)

// Numbering Plan Indicator definitions.
const (
	PlanISDN    uint8 = 1
	PlanData    uint8 = 3
	PlanTelex   uint8 = 4
	PlanPrivate uint8 = 5
)

// Address Presentation Restricted Indicator definitions.
const (
	PresentationAllowed uint8 = iota
	PresentationRestricted
	AddressNotAvailable
)

// Screening Indicator definitions.
const (
	ScreeningUserProvidedNotVerified uint8 = iota
	ScreeningUserProvidedVerifiedPassed
	ScreeningUserProvidedVerifiedFailed
	ScreeningNetworkProvided
)

const addressDigits = "0123456789abcdef"

// GenericNumber represents an ISUP Generic Number (ITU-T Q.763 3.26).
type GenericNumber struct {
	NumberQualifier  uint8
	NatureOfAddress  uint8
	NumberIncomplete bool
	NumberingPlan    uint8
	Presentation     uint8
	Screening        uint8
	Address          string
}

// NewGenericNumber creates a new GenericNumber carrying an additional calling
// party number in international ISDN format, presentation allowed and
// provided by the network.
func NewGenericNumber(address string) *GenericNumber {
	return &GenericNumber{
		NumberQualifier: QualifierAdditionalCallingPartyNumber,
		NatureOfAddress: NatureInternational,
		NumberingPlan:   PlanISDN,
		Presentation:    PresentationAllowed,
		Screening:       ScreeningNetworkProvided,
		Address:         address,
	}
}

// ParseGenericNumber parses given byte sequence as a GenericNumber.
func ParseGenericNumber(b []byte) (*GenericNumber, error) {
	g := &GenericNumber{}
	if err := g.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return g, nil
}

// UnmarshalBinary sets the values retrieved from byte sequence in a GenericNumber.
func (g *GenericNumber) UnmarshalBinary(b []byte) error {
	if len(b) < 3 {
		return io.ErrUnexpectedEOF
	}

	g.NumberQualifier = b[0]
	odd := b[1]&0x80 != 0
	g.NatureOfAddress = b[1] & 0x7f
	g.NumberIncomplete = b[2]&0x80 != 0
	g.NumberingPlan = (b[2] >> 4) & 0x07
	g.Presentation = (b[2] >> 2) & 0x03
	g.Screening = b[2] & 0x03

	signals := b[3:]
	if odd && len(signals) == 0 {
		return fmt.Errorf("odd number of digits without address signals: %w", ErrInvalidDigits)
	}

	var sb strings.Builder
	sb.Grow(len(signals) * 2)
	for i, o := range signals {
		sb.WriteByte(addressDigits[o&0x0f])
		if odd && i == len(signals)-1 {
			break
		}
		sb.WriteByte(addressDigits[o>>4])
	}
	g.Address = sb.String()

	return nil
}

// MarshalBinary returns the byte sequence generated from a GenericNumber.
func (g *GenericNumber) MarshalBinary() ([]byte, error) {
	b := make([]byte, g.MarshalLen())
	if err := g.MarshalTo(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarshalTo puts the byte sequence in the byte array given as b.
func (g *GenericNumber) MarshalTo(b []byte) error {
	if len(b) < g.MarshalLen() {
		return io.ErrUnexpectedEOF
	}
	if err := g.validate(); err != nil {
		return err
	}

	b[0] = g.NumberQualifier
	b[1] = g.NatureOfAddress
	if len(g.Address)%2 == 1 {
		b[1] |= 0x80
	}
	b[2] = g.NumberingPlan<<4 | g.Presentation<<2 | g.Screening
	if g.NumberIncomplete {
		b[2] |= 0x80
	}

	offset := 3
	for i := 0; i < len(g.Address); i += 2 {
		lo, err := digitValue(g.Address[i])
		if err != nil {
			return err
		}
		var hi byte
		if i+1 < len(g.Address) {
			if hi, err = digitValue(g.Address[i+1]); err != nil {
				return err
			}
		}
		b[offset] = hi<<4 | lo
		offset++
	}

	return nil
}

// MarshalLen returns the serial length of GenericNumber.
func (g *GenericNumber) MarshalLen() int {
	return 3 + (len(g.Address)+1)/2
}

func (g *GenericNumber) validate() error {
	switch {
	case g.NatureOfAddress > 0x7f:
		return fmt.Errorf("nature of address %d out of range: %w", g.NatureOfAddress, ErrInvalidField)
	case g.NumberingPlan > 0x07:
		return fmt.Errorf("numbering plan %d out of range: %w", g.NumberingPlan, ErrInvalidField)
	case g.Presentation > 0x03:
		return fmt.Errorf("presentation %d out of range: %w", g.Presentation, ErrInvalidField)
	case g.Screening > 0x03:
		return fmt.Errorf("screening %d out of range: %w", g.Screening, ErrInvalidField)
	}
	return nil
}

func digitValue(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("%q: %w", c, ErrInvalidDigits)
}

// String returns GenericNumber in human readable string.
func (g *GenericNumber) String() string {
	return fmt.Sprintf("{NumberQualifier: %d, NatureOfAddress: %d, NumberIncomplete: %v, NumberingPlan: %d, Presentation: %d, Screening: %d, Address: %s}",
		g.NumberQualifier,
		g.NatureOfAddress,
		g.NumberIncomplete,
		g.NumberingPlan,
		g.Presentation,
		g.Screening,
		g.Address,
	)
}
