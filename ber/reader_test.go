// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package ber_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgngc/go-cap/ber"
)

func makeAR(t *testing.T) (*assert.Assertions, *require.Assertions) {
	return assert.New(t), require.New(t)
}

func TestReadTag(t *testing.T) {
	cases := []struct {
		description string
		input       []byte
		number      int
		class       ber.Class
		primitive   bool
	}{
		{"universal sequence", []byte{0x30}, ber.TagSequence, ber.ClassUniversal, false},
		{"context primitive 1", []byte{0x81}, 1, ber.ClassContextSpecific, true},
		{"context constructed 0", []byte{0xa0}, 0, ber.ClassContextSpecific, false},
		{"application 2", []byte{0x62}, 2, ber.ClassApplication, false},
		{"private 5", []byte{0xc5}, 5, ber.ClassPrivate, true},
		{"long form 50", []byte{0x9f, 0x32}, 50, ber.ClassContextSpecific, true},
		{"long form 200", []byte{0xbf, 0x81, 0x48}, 200, ber.ClassContextSpecific, false},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			assert, require := makeAR(t)

			r := ber.NewReader(c.input)
			number, err := r.ReadTag()
			require.NoError(err)
			assert.Equal(c.number, number)
			assert.Equal(c.class, r.TagClass())
			assert.Equal(c.primitive, r.IsTagPrimitive())
			assert.Zero(r.Available())
		})
	}
}

func TestReadTagTruncated(t *testing.T) {
	assert, _ := makeAR(t)

	_, err := ber.NewReader(nil).ReadTag()
	assert.ErrorIs(err, ber.ErrUnexpectedEOF)

	_, err = ber.NewReader([]byte{0x9f, 0x81}).ReadTag()
	assert.ErrorIs(err, ber.ErrUnexpectedEOF)
}

func TestReadLength(t *testing.T) {
	cases := []struct {
		description string
		input       []byte
		length      int
		err         error
	}{
		{"short", []byte{0x05}, 5, nil},
		{"short max", []byte{0x7f}, 127, nil},
		{"long 1", []byte{0x81, 0x80}, 128, nil},
		{"long 2", []byte{0x82, 0x01, 0x00}, 256, nil},
		{"indefinite", []byte{0x80}, 0, ber.ErrIndefiniteLength},
		{"too many octets", []byte{0x85, 0, 0, 0, 0, 1}, 0, ber.ErrInvalidLength},
		{"truncated long", []byte{0x82, 0x01}, 0, ber.ErrUnexpectedEOF},
		{"empty", nil, 0, ber.ErrUnexpectedEOF},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			assert, _ := makeAR(t)

			length, err := ber.NewReader(c.input).ReadLength()
			if c.err != nil {
				assert.ErrorIs(err, c.err)
				return
			}
			assert.NoError(err)
			assert.Equal(c.length, length)
		})
	}
}

func TestReadInteger(t *testing.T) {
	cases := []struct {
		description string
		input       []byte
		value       int64
	}{
		{"zero", []byte{0x01, 0x00}, 0},
		{"42", []byte{0x01, 0x2a}, 42},
		{"128", []byte{0x02, 0x00, 0x80}, 128},
		{"minus one", []byte{0x01, 0xff}, -1},
		{"minus 129", []byte{0x02, 0xff, 0x7f}, -129},
		{"max int32", []byte{0x04, 0x7f, 0xff, 0xff, 0xff}, 2147483647},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			assert, require := makeAR(t)

			r := ber.NewReader(c.input)
			v, err := r.ReadInteger()
			require.NoError(err)
			assert.Equal(c.value, v)
			assert.Zero(r.Available())
		})
	}
}

func TestReadIntegerInvalid(t *testing.T) {
	assert, _ := makeAR(t)

	_, err := ber.NewReader([]byte{0x00}).ReadInteger()
	assert.ErrorIs(err, ber.ErrInvalidInteger)

	_, err = ber.NewReader([]byte{0x09, 1, 2, 3, 4, 5, 6, 7, 8, 9}).ReadInteger()
	assert.ErrorIs(err, ber.ErrInvalidInteger)

	_, err = ber.NewReader([]byte{0x02, 0x01}).ReadInteger()
	assert.ErrorIs(err, ber.ErrUnexpectedEOF)
}

func TestReadSequenceStreamData(t *testing.T) {
	assert, require := makeAR(t)

	r := ber.NewReader([]byte{0x81, 0x01, 0x2a, 0xff})
	sub, err := r.ReadSequenceStreamData(3)
	require.NoError(err)
	assert.Equal(3, sub.Available())
	assert.Equal(1, r.Available())
	assert.Equal(3, r.Offset())

	assert.Equal(0, sub.Offset())
	number, err := sub.ReadTag()
	require.NoError(err)
	assert.Equal(1, number)
	v, err := sub.ReadInteger()
	require.NoError(err)
	assert.EqualValues(42, v)
	assert.Zero(sub.Available())

	_, err = r.ReadSequenceStreamData(2)
	assert.ErrorIs(err, ber.ErrUnexpectedEOF)
}

func TestAdvanceElement(t *testing.T) {
	assert, require := makeAR(t)

	r := ber.NewReader([]byte{0x85, 0x02, 0x01, 0x02, 0x81, 0x01, 0x07})
	assert.ErrorIs(r.AdvanceElement(), ber.ErrNoTag)

	_, err := r.ReadTag()
	require.NoError(err)
	require.NoError(r.AdvanceElement())
	assert.Equal(3, r.Available())

	number, err := r.ReadTag()
	require.NoError(err)
	assert.Equal(1, number)

	r = ber.NewReader([]byte{0x85, 0x05, 0x01})
	_, err = r.ReadTag()
	require.NoError(err)
	err = r.AdvanceElement()
	assert.ErrorIs(err, ber.ErrUnexpectedEOF)

	var de *ber.DecodeError
	require.True(errors.As(err, &de))
	assert.Equal(2, de.Offset)
}

func TestReadOctetString(t *testing.T) {
	assert, require := makeAR(t)

	input := []byte{0x03, 0x01, 0x02, 0x03}
	r := ber.NewReader(input)
	b, err := r.ReadOctetString()
	require.NoError(err)
	assert.Equal([]byte{0x01, 0x02, 0x03}, b)

	b[0] = 0xff
	assert.Equal(byte(0x01), input[1], "returned slice must not alias the input")
}
