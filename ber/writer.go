// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package ber

// Writer appends BER encoded elements to a buffer.
type Writer struct {
	buf []byte
}

// NewWriter creates a new Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	if capacity <= 0 {
		capacity = 32
	}
	return &Writer{buf: make([]byte, 0, capacity)}
}

// NewWriterBuffer creates a new Writer appending to b[:0]. Writes stay in the
// backing array of b as long as they fit in its capacity.
func NewWriterBuffer(b []byte) *Writer {
	return &Writer{buf: b[:0]}
}

// Bytes returns the encoded bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Truncate discards everything written after the first n bytes.
func (w *Writer) Truncate(n int) {
	if n < 0 || n > len(w.buf) {
		return
	}
	w.buf = w.buf[:n]
}

// Write appends raw bytes. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// WriteTag writes the identifier octets of an element.
func (w *Writer) WriteTag(class Class, primitive bool, number int) error {
	if class > ClassPrivate || number < 0 {
		return ErrInvalidTag
	}

	b := byte(class) << 6
	if !primitive {
		b |= constructedBit
	}

	if number <= maxShortTagValue {
		w.buf = append(w.buf, b|byte(number))
		return nil
	}

	w.buf = append(w.buf, b|longFormTag)
	n := TagLen(number) - 1
	for i := n - 1; i >= 0; i-- {
		o := byte(number>>(7*uint(i))) & 0x7f
		if i > 0 {
			o |= 0x80
		}
		w.buf = append(w.buf, o)
	}
	return nil
}

// WriteLength writes a definite length.
func (w *Writer) WriteLength(length int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	w.buf = appendLength(w.buf, length)
	return nil
}

func appendLength(b []byte, length int) []byte {
	if length <= maxShortLength {
		return append(b, byte(length))
	}

	n := LengthLen(length) - 1
	b = append(b, longFormLength|byte(n))
	for i := n - 1; i >= 0; i-- {
		b = append(b, byte(length>>(8*uint(i))))
	}
	return b
}

// StartContentDefiniteLength reserves a single length octet and returns its
// position, to be passed to FinalizeContent once the contents are written.
func (w *Writer) StartContentDefiniteLength() int {
	w.buf = append(w.buf, 0)
	return len(w.buf) - 1
}

// FinalizeContent backpatches the length reserved at pos with the size of
// everything written after it. The contents are shifted when the length needs
// the long form.
func (w *Writer) FinalizeContent(pos int) error {
	if pos < 0 || pos >= len(w.buf) {
		return ErrInvalidPosition
	}

	length := len(w.buf) - pos - 1
	if length <= maxShortLength {
		w.buf[pos] = byte(length)
		return nil
	}

	extra := LengthLen(length) - 1
	w.buf = append(w.buf, make([]byte, extra)...)
	copy(w.buf[pos+1+extra:], w.buf[pos+1:pos+1+length])
	appendLength(w.buf[:pos], length)
	return nil
}

// WriteIntegerData writes the minimal two's complement octets of v.
func (w *Writer) WriteIntegerData(v int64) {
	for i := IntegerLen(v) - 1; i >= 0; i-- {
		w.buf = append(w.buf, byte(v>>(8*uint(i))))
	}
}

// WriteInteger writes a whole primitive INTEGER element with the given tag.
func (w *Writer) WriteInteger(class Class, number int, v int64) error {
	if err := w.WriteTag(class, true, number); err != nil {
		return err
	}
	w.buf = appendLength(w.buf, IntegerLen(v))
	w.WriteIntegerData(v)
	return nil
}

// WriteOctetString writes a whole primitive OCTET STRING element with the
// given tag.
func (w *Writer) WriteOctetString(class Class, number int, v []byte) error {
	if err := w.WriteTag(class, true, number); err != nil {
		return err
	}
	w.buf = appendLength(w.buf, len(v))
	w.buf = append(w.buf, v...)
	return nil
}
