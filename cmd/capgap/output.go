// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	gocap "github.com/cgngc/go-cap"
)

// OutputFormat represents output format types.
type OutputFormat string

// Output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatXML  OutputFormat = "xml"
	FormatHex  OutputFormat = "hex"
)

// Formatter prints CallingAddressAndService values in one OutputFormat.
type Formatter struct {
	format OutputFormat
	writer io.Writer
}

// NewFormatter creates a new Formatter writing to w.
func NewFormatter(format string, w io.Writer) (*Formatter, error) {
	switch f := OutputFormat(format); f {
	case FormatText, FormatJSON, FormatXML, FormatHex:
		return &Formatter{format: f, writer: w}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

type genericNumberView struct {
	NumberQualifier  uint8  `json:"numberQualifier"`
	NatureOfAddress  uint8  `json:"natureOfAddress"`
	NumberIncomplete bool   `json:"numberIncomplete"`
	NumberingPlan    uint8  `json:"numberingPlan"`
	Presentation     uint8  `json:"presentation"`
	Screening        uint8  `json:"screening"`
	Address          string `json:"address"`
}

type callingAddressAndServiceView struct {
	Encoded             string             `json:"encoded"`
	CallingAddressValue string             `json:"callingAddressValue"`
	GenericNumber       *genericNumberView `json:"genericNumber,omitempty"`
	ServiceKey          int                `json:"serviceKey"`
}

func newView(v *gocap.CallingAddressAndService, encoded []byte) *callingAddressAndServiceView {
	view := &callingAddressAndServiceView{
		Encoded:    hex.EncodeToString(encoded),
		ServiceKey: v.ServiceKey(),
	}

	d := v.CallingAddressValue()
	if d == nil {
		return view
	}
	view.CallingAddressValue = hex.EncodeToString(d.Data())

	// digits that do not parse as a generic number are shown raw only
	if gn, err := d.GenericNumber(); err == nil {
		view.GenericNumber = &genericNumberView{
			NumberQualifier:  gn.NumberQualifier,
			NatureOfAddress:  gn.NatureOfAddress,
			NumberIncomplete: gn.NumberIncomplete,
			NumberingPlan:    gn.NumberingPlan,
			Presentation:     gn.Presentation,
			Screening:        gn.Screening,
			Address:          gn.Address,
		}
	}
	return view
}

// Print prints v along with its encoding.
func (f *Formatter) Print(v *gocap.CallingAddressAndService, encoded []byte) error {
	switch f.format {
	case FormatJSON:
		enc := json.NewEncoder(f.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(newView(v, encoded))
	case FormatXML:
		b, err := xml.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(f.writer, "%s\n", b)
		return err
	case FormatHex:
		_, err := fmt.Fprintln(f.writer, hex.EncodeToString(encoded))
		return err
	}
	return f.printText(newView(v, encoded))
}

func (f *Formatter) printText(view *callingAddressAndServiceView) error {
	pairs := map[string]interface{}{
		"Encoded":        view.Encoded,
		"Calling digits": view.CallingAddressValue,
		"Service key":    view.ServiceKey,
	}
	order := []string{"Encoded", "Calling digits"}

	if gn := view.GenericNumber; gn != nil {
		pairs["Address"] = gn.Address
		pairs["Qualifier"] = gn.NumberQualifier
		pairs["Nature"] = gn.NatureOfAddress
		pairs["Incomplete"] = gn.NumberIncomplete
		pairs["Plan"] = gn.NumberingPlan
		pairs["Presentation"] = gn.Presentation
		pairs["Screening"] = gn.Screening
		order = append(order, "Address", "Qualifier", "Nature", "Incomplete", "Plan", "Presentation", "Screening")
	}
	order = append(order, "Service key")

	return f.printKeyValue(pairs, order)
}

func (f *Formatter) printKeyValue(pairs map[string]interface{}, order []string) error {
	maxKeyLen := 0
	for _, key := range order {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}

	for _, key := range order {
		if val, ok := pairs[key]; ok {
			if _, err := fmt.Fprintf(f.writer, "%-*s: %v\n", maxKeyLen, key, val); err != nil {
				return err
			}
		}
	}
	return nil
}
