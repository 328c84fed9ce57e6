// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package isup

import (
	"encoding/hex"
	"encoding/xml"
	"fmt"
)

type digitsXML struct {
	Data            string `xml:"data,attr"`
	IsGenericNumber bool   `xml:"isGenericNumber,attr,omitempty"`
	IsGenericDigits bool   `xml:"isGenericDigits,attr,omitempty"`
}

// MarshalXML writes Digits as an element with the data in hex.
func (d *Digits) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(digitsXML{
		Data:            hex.EncodeToString(d.data),
		IsGenericNumber: d.isGenericNumber,
		IsGenericDigits: d.isGenericDigits,
	}, start)
}

// UnmarshalXML reads Digits written by MarshalXML.
func (d *Digits) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var x digitsXML
	if err := dec.DecodeElement(&x, &start); err != nil {
		return err
	}

	data, err := hex.DecodeString(x.Data)
	if err != nil {
		return fmt.Errorf("invalid digits data %q: %w", x.Data, err)
	}

	d.data = data
	d.isGenericNumber = x.IsGenericNumber
	d.isGenericDigits = x.IsGenericDigits
	return nil
}
