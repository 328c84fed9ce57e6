// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package isup_test

import (
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgngc/go-cap/ber"
	"github.com/cgngc/go-cap/isup"
)

func TestGenericNumber(t *testing.T) {
	cases := []struct {
		description string
		structured  *isup.GenericNumber
		serialized  []byte
	}{
		{
			"odd international",
			isup.NewGenericNumber("12345"),
			[]byte{0x06, 0x84, 0x13, 0x21, 0x43, 0x05},
		},
		{
			"even national incomplete",
			&isup.GenericNumber{
				NumberQualifier:  isup.QualifierAdditionalCalledNumber,
				NatureOfAddress:  isup.NatureNational,
				NumberIncomplete: true,
				NumberingPlan:    isup.PlanISDN,
				Presentation:     isup.PresentationRestricted,
				Screening:        isup.ScreeningUserProvidedVerifiedPassed,
				Address:          "0312",
			},
			[]byte{0x01, 0x03, 0x95, 0x30, 0x21},
		},
		{
			"no address",
			&isup.GenericNumber{
				NumberQualifier: isup.QualifierAdditionalCallingPartyNumber,
				NatureOfAddress: isup.NatureUnknown,
				Presentation:    isup.AddressNotAvailable,
			},
			[]byte{0x06, 0x02, 0x08},
		},
		{
			"hex signals",
			&isup.GenericNumber{
				NumberQualifier: isup.QualifierAdditionalCallingPartyNumber,
				NatureOfAddress: isup.NatureInternational,
				NumberingPlan:   isup.PlanISDN,
				Address:         "12bc",
			},
			[]byte{0x06, 0x04, 0x10, 0x21, 0xcb},
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			t.Run("Marshal", func(t *testing.T) {
				assert, require := assert.New(t), require.New(t)

				b, err := c.structured.MarshalBinary()
				require.NoError(err)
				assert.Equal(c.serialized, b)
				assert.Equal(len(c.serialized), c.structured.MarshalLen())
			})

			t.Run("Parse", func(t *testing.T) {
				assert, require := assert.New(t), require.New(t)

				g, err := isup.ParseGenericNumber(c.serialized)
				require.NoError(err)
				assert.Equal(c.structured, g)
			})
		})
	}
}

func TestGenericNumberInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := isup.ParseGenericNumber([]byte{0x06, 0x84})
	assert.ErrorIs(err, io.ErrUnexpectedEOF)

	_, err = isup.ParseGenericNumber([]byte{0x06, 0x84, 0x13})
	assert.ErrorIs(err, isup.ErrInvalidDigits)

	_, err = isup.NewGenericNumber("12x4").MarshalBinary()
	assert.ErrorIs(err, isup.ErrInvalidDigits)

	g := isup.NewGenericNumber("1234")
	g.Screening = 4
	_, err = g.MarshalBinary()
	assert.ErrorIs(err, isup.ErrInvalidField)

	assert.ErrorIs(g.MarshalTo(make([]byte, 2)), io.ErrUnexpectedEOF)
}

func TestDigitsFromGenericNumber(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	d, err := isup.NewDigitsFromGenericNumber(isup.NewGenericNumber("12345"))
	require.NoError(err)
	assert.True(d.IsGenericNumber())
	assert.False(d.IsGenericDigits())
	assert.Equal([]byte{0x06, 0x84, 0x13, 0x21, 0x43, 0x05}, d.Data())

	gn, err := d.GenericNumber()
	require.NoError(err)
	assert.Equal("12345", gn.Address)

	d.SetIsGenericDigits()
	assert.False(d.IsGenericNumber())
	_, err = d.GenericNumber()
	assert.ErrorIs(err, isup.ErrNotGenericNumber)
}

func TestDigitsEncodeDecode(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	d := isup.NewDigits([]byte{0x06, 0x84, 0x13, 0x21, 0x43, 0x05})
	w := ber.NewWriter(0)
	require.NoError(d.EncodeAll(w, ber.ClassContextSpecific, 0))
	assert.Equal([]byte{0x80, 0x06, 0x06, 0x84, 0x13, 0x21, 0x43, 0x05}, w.Bytes())
	assert.Equal(w.Len(), d.EncodeLen(0))

	r := ber.NewReader(w.Bytes())
	_, err := r.ReadTag()
	require.NoError(err)

	got := &isup.Digits{}
	require.NoError(got.DecodeAll(r))
	assert.Equal(d.Data(), got.Data())
	assert.False(got.IsGenericNumber(), "the subtype is set by the enclosing parameter")
	assert.Zero(r.Available())
}

func TestDigitsDecodeInvalid(t *testing.T) {
	cases := []struct {
		description string
		input       []byte
		err         error
	}{
		{"constructed", []byte{0xa0, 0x02, 0x01, 0x02}, isup.ErrNotPrimitive},
		{"too short", []byte{0x80, 0x01, 0x01}, isup.ErrInvalidLength},
		{"too long", append([]byte{0x80, 0x11}, make([]byte, 17)...), isup.ErrInvalidLength},
		{"truncated", []byte{0x80, 0x04, 0x01}, ber.ErrUnexpectedEOF},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			r := ber.NewReader(c.input)
			_, err := r.ReadTag()
			require.NoError(t, err)
			assert.ErrorIs(t, (&isup.Digits{}).DecodeAll(r), c.err)
		})
	}
}

func TestDigitsEncodeInvalid(t *testing.T) {
	long, err := isup.NewDigitsFromGenericNumber(isup.NewGenericNumber("123456789012345678901234567"))
	require.NoError(t, err)

	cases := []struct {
		description string
		digits      *isup.Digits
		err         error
	}{
		{"no data", isup.NewDigits(nil), isup.ErrNoData},
		{"too short", isup.NewDigits([]byte{0x06}), isup.ErrInvalidLength},
		{"too long", isup.NewDigits(make([]byte, 17)), isup.ErrInvalidLength},
		{"generic number too long", long, isup.ErrInvalidLength},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			assert.ErrorIs(t, c.digits.Validate(), c.err)

			w := ber.NewWriter(0)
			assert.ErrorIs(t, c.digits.EncodeAll(w, ber.ClassContextSpecific, 0), c.err)
			assert.Zero(t, w.Len())
		})
	}
}

func TestDigitsEncodeBounds(t *testing.T) {
	for _, n := range []int{isup.MinDigitsLength, isup.MaxDigitsLength} {
		d := isup.NewDigits(make([]byte, n))
		require.NoError(t, d.Validate())

		w := ber.NewWriter(0)
		require.NoError(t, d.EncodeAll(w, ber.ClassContextSpecific, 0))

		r := ber.NewReader(w.Bytes())
		_, err := r.ReadTag()
		require.NoError(t, err)
		got := &isup.Digits{}
		require.NoError(t, got.DecodeAll(r))
		assert.Len(t, got.Data(), n)
	}
}

func TestDigitsXML(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	d, err := isup.NewDigitsFromGenericNumber(isup.NewGenericNumber("12345"))
	require.NoError(err)

	b, err := xml.Marshal(d)
	require.NoError(err)
	assert.Equal(`<Digits data="068413214305" isGenericNumber="true"></Digits>`, string(b))

	got := &isup.Digits{}
	require.NoError(xml.Unmarshal(b, got))
	assert.Equal(d, got)

	assert.Error(xml.Unmarshal([]byte(`<Digits data="zz"></Digits>`), &isup.Digits{}))
}
