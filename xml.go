// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package cap

import (
	"encoding/xml"

	"github.com/cgngc/go-cap/isup"
)

// XML mapping for archiving and debugging; it is not a wire format.
type callingAddressAndServiceXML struct {
	CallingAddressValue *isup.Digits `xml:"callingAddressValue"`
	ServiceKey          int          `xml:"serviceKey"`
}

// MarshalXML implements xml.Marshaler.
func (c *CallingAddressAndService) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(callingAddressAndServiceXML{
		CallingAddressValue: c.callingAddressValue,
		ServiceKey:          c.serviceKey,
	}, start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (c *CallingAddressAndService) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var x callingAddressAndServiceXML
	if err := d.DecodeElement(&x, &start); err != nil {
		return err
	}

	c.callingAddressValue = x.CallingAddressValue
	c.serviceKey = x.ServiceKey
	return nil
}
