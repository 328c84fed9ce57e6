// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package cap

import (
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/cgngc/go-cap/ber"
	"github.com/cgngc/go-cap/isup"
)

// Context-specific tags of CallingAddressAndService.
const (
	IDCallingAddressValue = 0
	IDServiceKey          = 1
)

const (
	callingAddressAndServiceName = "CallingAddressAndService"

	fieldCallingAddressValue = "callingAddressValue"
	fieldServiceKey          = "serviceKey"
)

// CallingAddressAndService represents a CAP CallingAddressAndService, used by
// call gapping to select calls by calling party and service.
//
//	CallingAddressAndService ::= SEQUENCE {
//		callingAddressValue [0] Digits,
//		serviceKey          [1] ServiceKey,
//		...
//	}
//
// ServiceKey is INTEGER (0..2147483647); values outside that range are
// rejected by both decoding and encoding. A ServiceKey of zero means unset.
// Decoding therefore rejects a CallingAddressAndService carrying a zero
// ServiceKey, while encoding writes it as it is.
type CallingAddressAndService struct {
	callingAddressValue *isup.Digits
	serviceKey          int
}

// NewCallingAddressAndService creates a new CallingAddressAndService.
func NewCallingAddressAndService(callingAddressValue *isup.Digits, serviceKey int) *CallingAddressAndService {
	return &CallingAddressAndService{
		callingAddressValue: callingAddressValue,
		serviceKey:          serviceKey,
	}
}

// CallingAddressValue returns the calling address, nil if unset.
func (c *CallingAddressAndService) CallingAddressValue() *isup.Digits {
	return c.callingAddressValue
}

// ServiceKey returns the service key, 0 if unset.
func (c *CallingAddressAndService) ServiceKey() int {
	return c.serviceKey
}

// ParseCallingAddressAndService parses given byte sequence as a CallingAddressAndService.
func ParseCallingAddressAndService(b []byte) (*CallingAddressAndService, error) {
	c := &CallingAddressAndService{}
	if err := c.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return c, nil
}

// UnmarshalBinary sets the values retrieved from a whole BER element in a
// CallingAddressAndService. The identifier of the element is not checked
// beyond its form, as the type may be implicitly tagged.
func (c *CallingAddressAndService) UnmarshalBinary(b []byte) error {
	r := ber.NewReader(b)
	if _, err := r.ReadTag(); err != nil {
		c.reset()
		return newParsingError(callingAddressAndServiceName, "", "failed to read tag", err)
	}
	if r.IsTagPrimitive() {
		c.reset()
		return &ParsingError{
			Primitive: callingAddressAndServiceName,
			Reason:    MalformedTLV,
			Message:   "SEQUENCE is not constructed",
		}
	}

	if err := c.DecodeAll(r); err != nil {
		return err
	}

	if n := r.Available(); n != 0 {
		c.reset()
		return &ParsingError{
			Primitive: callingAddressAndServiceName,
			Reason:    MalformedTLV,
			Message:   fmt.Sprintf("%d bytes left after the element", n),
		}
	}
	return nil
}

// DecodeAll decodes the length and contents of a CallingAddressAndService whose
// tag has already been read from r.
func (c *CallingAddressAndService) DecodeAll(r *ber.Reader) error {
	length, err := r.ReadLength()
	if err != nil {
		c.reset()
		return newParsingError(callingAddressAndServiceName, "", "failed to read length", err)
	}
	return c.DecodeData(r, length)
}

// DecodeData decodes length bytes of contents from r.
//
// On failure c is left unset and r may have been advanced.
func (c *CallingAddressAndService) DecodeData(r *ber.Reader, length int) error {
	c.reset()

	v, err := decodeCallingAddressAndService(r, length)
	if err != nil {
		log().Debug("failed to decode "+callingAddressAndServiceName, zap.Error(err))
		return err
	}

	*c = *v
	return nil
}

func decodeCallingAddressAndService(r *ber.Reader, length int) (*CallingAddressAndService, error) {
	ais, err := r.ReadSequenceStreamData(length)
	if err != nil {
		return nil, newParsingError(callingAddressAndServiceName, "", "failed to read contents", err)
	}

	v := &CallingAddressAndService{}
	for ais.Available() > 0 {
		tag, err := ais.ReadTag()
		if err != nil {
			return nil, newParsingError(callingAddressAndServiceName, "", "failed to read tag", err)
		}

		if ais.TagClass() != ber.ClassContextSpecific {
			if err := skipElement(ais, tag); err != nil {
				return nil, err
			}
			continue
		}

		switch tag {
		case IDCallingAddressValue:
			d := &isup.Digits{}
			if err := d.DecodeAll(ais); err != nil {
				return nil, newParsingError(callingAddressAndServiceName, fieldCallingAddressValue, "failed to decode Digits", err)
			}
			d.SetIsGenericNumber()
			v.callingAddressValue = d
		case IDServiceKey:
			if !ais.IsTagPrimitive() {
				return nil, &ParsingError{
					Primitive: callingAddressAndServiceName,
					Reason:    UnexpectedConstructedEncoding,
					Field:     fieldServiceKey,
					Message:   fmt.Sprintf("Parameter %d not primitive", IDServiceKey),
				}
			}
			n, err := ais.ReadInteger()
			if err != nil {
				return nil, newParsingError(callingAddressAndServiceName, fieldServiceKey, "failed to read INTEGER", err)
			}
			if n < 0 || n > math.MaxInt32 {
				return nil, &ParsingError{
					Primitive: callingAddressAndServiceName,
					Reason:    MalformedTLV,
					Field:     fieldServiceKey,
					Message:   fmt.Sprintf("serviceKey %d out of range", n),
				}
			}
			v.serviceKey = int(n)
		default:
			if err := skipElement(ais, tag); err != nil {
				return nil, err
			}
		}
	}

	if v.serviceKey == 0 {
		return nil, &ParsingError{
			Primitive: callingAddressAndServiceName,
			Reason:    MissingMandatoryField,
			Field:     fieldServiceKey,
			Message:   "serviceKey is mandatory",
		}
	}
	if v.callingAddressValue == nil {
		return nil, &ParsingError{
			Primitive: callingAddressAndServiceName,
			Reason:    MissingMandatoryField,
			Field:     fieldCallingAddressValue,
			Message:   "callingAddressValue is mandatory",
		}
	}

	return v, nil
}

func skipElement(r *ber.Reader, tag int) error {
	log().Debug("skipping element of "+callingAddressAndServiceName,
		zap.Stringer("class", r.TagClass()),
		zap.Int("tag", tag),
		zap.Bool("primitive", r.IsTagPrimitive()),
	)
	if err := r.AdvanceElement(); err != nil {
		return newParsingError(callingAddressAndServiceName, "", fmt.Sprintf("failed to skip element %d", tag), err)
	}
	return nil
}

func (c *CallingAddressAndService) reset() {
	c.callingAddressValue = nil
	c.serviceKey = 0
}

// MarshalBinary returns the byte sequence generated from a CallingAddressAndService.
func (c *CallingAddressAndService) MarshalBinary() ([]byte, error) {
	w := ber.NewWriter(c.MarshalLen())
	if err := c.EncodeAll(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalTo puts the byte sequence in the byte array given as b.
func (c *CallingAddressAndService) MarshalTo(b []byte) error {
	l := c.MarshalLen()
	if len(b) < l {
		return io.ErrUnexpectedEOF
	}

	w := ber.NewWriterBuffer(b[:0:l])
	if err := c.EncodeAll(w); err != nil {
		return err
	}
	copy(b, w.Bytes())
	return nil
}

// MarshalLen returns the serial length of CallingAddressAndService.
func (c *CallingAddressAndService) MarshalLen() int {
	return ber.ElementLen(ber.TagSequence, c.contentLen())
}

func (c *CallingAddressAndService) contentLen() int {
	l := ber.ElementLen(IDServiceKey, ber.IntegerLen(int64(c.serviceKey)))
	if d := c.callingAddressValue; d != nil {
		l += d.EncodeLen(IDCallingAddressValue)
	}
	return l
}

// EncodeAll writes CallingAddressAndService as a universal SEQUENCE.
func (c *CallingAddressAndService) EncodeAll(w *ber.Writer) error {
	return c.EncodeAllWithTag(w, ber.ClassUniversal, ber.TagSequence)
}

// EncodeAllWithTag writes CallingAddressAndService as a constructed element
// with the given tag, for use as an implicitly tagged field.
//
// Nothing is left in w on failure.
func (c *CallingAddressAndService) EncodeAllWithTag(w *ber.Writer, class ber.Class, tag int) error {
	if err := c.checkEncodable(); err != nil {
		return err
	}

	start := w.Len()
	if err := c.encodeAll(w, class, tag); err != nil {
		w.Truncate(start)
		return err
	}
	return nil
}

func (c *CallingAddressAndService) encodeAll(w *ber.Writer, class ber.Class, tag int) error {
	if err := w.WriteTag(class, false, tag); err != nil {
		return c.encodingError("failed to write tag", err)
	}

	pos := w.StartContentDefiniteLength()
	if err := c.EncodeData(w); err != nil {
		return err
	}
	if err := w.FinalizeContent(pos); err != nil {
		return c.encodingError("failed to write length", err)
	}
	return nil
}

// EncodeData writes the contents of CallingAddressAndService.
//
// Nothing is left in w on failure.
func (c *CallingAddressAndService) EncodeData(w *ber.Writer) error {
	if err := c.checkEncodable(); err != nil {
		return err
	}

	start := w.Len()
	if err := c.callingAddressValue.EncodeAll(w, ber.ClassContextSpecific, IDCallingAddressValue); err != nil {
		w.Truncate(start)
		return c.encodingError("failed to write "+fieldCallingAddressValue, err)
	}
	if err := w.WriteInteger(ber.ClassContextSpecific, IDServiceKey, int64(c.serviceKey)); err != nil {
		w.Truncate(start)
		return c.encodingError("failed to write "+fieldServiceKey, err)
	}
	return nil
}

func (c *CallingAddressAndService) checkEncodable() error {
	if c.callingAddressValue == nil {
		return c.encodingError("callingAddressValue must not be nil", ErrMissingRequiredValue)
	}
	if err := c.callingAddressValue.Validate(); err != nil {
		return c.encodingError("invalid "+fieldCallingAddressValue, err)
	}
	if c.serviceKey < 0 || int64(c.serviceKey) > math.MaxInt32 {
		return c.encodingError(fmt.Sprintf("serviceKey %d out of range", c.serviceKey), ErrServiceKeyOutOfRange)
	}
	return nil
}

func (c *CallingAddressAndService) encodingError(msg string, err error) *EncodingError {
	return &EncodingError{
		Primitive: callingAddressAndServiceName,
		Message:   msg,
		Err:       err,
	}
}

// String returns CallingAddressAndService in human readable string.
func (c *CallingAddressAndService) String() string {
	return fmt.Sprintf("{CallingAddressValue: %v, ServiceKey: %d}",
		c.callingAddressValue,
		c.serviceKey,
	)
}
