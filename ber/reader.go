// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package ber

// Reader is a bounded cursor over BER encoded data.
//
// A Reader is not safe for concurrent use; every decode owns its own Reader.
type Reader struct {
	data   []byte
	offset int
	base   int

	tagRead   bool
	class     Class
	primitive bool
}

// NewReader creates a new Reader over b.
func NewReader(b []byte) *Reader {
	return &Reader{data: b}
}

// Available returns the number of bytes left in the Reader.
func (r *Reader) Available() int {
	return len(r.data) - r.offset
}

// Offset returns the absolute position of the cursor, counted from the start
// of the outermost Reader.
func (r *Reader) Offset() int {
	return r.base + r.offset
}

// TagClass returns the class of the last tag read.
func (r *Reader) TagClass() Class {
	return r.class
}

// IsTagPrimitive reports whether the last tag read has the primitive form.
func (r *Reader) IsTagPrimitive() bool {
	return r.primitive
}

// ReadTag reads the identifier octets of the next element and returns the tag
// number. The class and form are available from TagClass and IsTagPrimitive.
func (r *Reader) ReadTag() (int, error) {
	start := r.Offset()
	if r.Available() < 1 {
		return 0, newDecodeError(start, "cannot read tag", ErrUnexpectedEOF)
	}

	b := r.data[r.offset]
	r.offset++

	r.class = Class(b >> 6)
	r.primitive = b&constructedBit == 0
	r.tagRead = true

	number := int(b & longFormTag)
	if number != longFormTag {
		return number, nil
	}

	number = 0
	for {
		if r.Available() < 1 {
			return 0, newDecodeError(start, "truncated long form tag", ErrUnexpectedEOF)
		}
		if number > 1<<24 {
			return 0, newDecodeError(start, "tag number overflow", ErrInvalidTag)
		}

		b = r.data[r.offset]
		r.offset++
		number = number<<7 | int(b&0x7f)
		if b&0x80 == 0 {
			break
		}
	}
	return number, nil
}

// ReadLength reads a definite length.
func (r *Reader) ReadLength() (int, error) {
	start := r.Offset()
	if r.Available() < 1 {
		return 0, newDecodeError(start, "cannot read length", ErrUnexpectedEOF)
	}

	b := r.data[r.offset]
	r.offset++

	if b&longFormLength == 0 {
		return int(b), nil
	}

	n := int(b &^ longFormLength)
	switch {
	case n == 0:
		return 0, newDecodeError(start, "indefinite length", ErrIndefiniteLength)
	case n > 4:
		return 0, newDecodeError(start, "length octets out of range", ErrInvalidLength)
	case r.Available() < n:
		return 0, newDecodeError(start, "truncated length", ErrUnexpectedEOF)
	}

	length := 0
	for i := 0; i < n; i++ {
		length = length<<8 | int(r.data[r.offset])
		r.offset++
	}
	if length < 0 || length > 1<<30 {
		return 0, newDecodeError(start, "length overflow", ErrInvalidLength)
	}
	return length, nil
}

// ReadSequenceStreamData returns a Reader scoped to the next length bytes and
// advances r past them.
func (r *Reader) ReadSequenceStreamData(length int) (*Reader, error) {
	if length < 0 {
		return nil, newDecodeError(r.Offset(), "negative length", ErrInvalidLength)
	}
	if r.Available() < length {
		return nil, newDecodeError(r.Offset(), "truncated contents", ErrUnexpectedEOF)
	}

	sub := &Reader{
		data: r.data[r.offset : r.offset+length],
		base: r.Offset(),
	}
	r.offset += length
	return sub, nil
}

// ReadSequenceStream reads a length and returns a Reader scoped to the contents.
func (r *Reader) ReadSequenceStream() (*Reader, error) {
	length, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	return r.ReadSequenceStreamData(length)
}

// ReadIntegerData reads length octets as a two's complement integer.
func (r *Reader) ReadIntegerData(length int) (int64, error) {
	start := r.Offset()
	switch {
	case length < 1:
		return 0, newDecodeError(start, "empty integer", ErrInvalidInteger)
	case length > 8:
		return 0, newDecodeError(start, "integer does not fit in 64 bits", ErrInvalidInteger)
	case r.Available() < length:
		return 0, newDecodeError(start, "truncated integer", ErrUnexpectedEOF)
	}

	v := int64(int8(r.data[r.offset]))
	for i := 1; i < length; i++ {
		v = v<<8 | int64(r.data[r.offset+i])
	}
	r.offset += length
	return v, nil
}

// ReadInteger reads the length and contents of an INTEGER whose tag has
// already been read.
func (r *Reader) ReadInteger() (int64, error) {
	length, err := r.ReadLength()
	if err != nil {
		return 0, err
	}
	return r.ReadIntegerData(length)
}

// ReadOctetStringData reads length octets. The returned slice is a copy.
func (r *Reader) ReadOctetStringData(length int) ([]byte, error) {
	if length < 0 {
		return nil, newDecodeError(r.Offset(), "negative length", ErrInvalidLength)
	}
	if r.Available() < length {
		return nil, newDecodeError(r.Offset(), "truncated octet string", ErrUnexpectedEOF)
	}

	b := make([]byte, length)
	copy(b, r.data[r.offset:r.offset+length])
	r.offset += length
	return b, nil
}

// ReadOctetString reads the length and contents of a primitive OCTET STRING
// whose tag has already been read.
func (r *Reader) ReadOctetString() ([]byte, error) {
	length, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	return r.ReadOctetStringData(length)
}

// AdvanceElement skips the length and contents of the element whose tag has
// just been read.
func (r *Reader) AdvanceElement() error {
	if !r.tagRead {
		return newDecodeError(r.Offset(), "cannot skip element", ErrNoTag)
	}

	length, err := r.ReadLength()
	if err != nil {
		return err
	}
	return r.AdvanceElementData(length)
}

// AdvanceElementData skips length bytes of contents.
func (r *Reader) AdvanceElementData(length int) error {
	if length < 0 {
		return newDecodeError(r.Offset(), "negative length", ErrInvalidLength)
	}
	if r.Available() < length {
		return newDecodeError(r.Offset(), "truncated element", ErrUnexpectedEOF)
	}
	r.offset += length
	return nil
}
