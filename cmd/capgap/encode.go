// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gocap "github.com/cgngc/go-cap"
	"github.com/cgngc/go-cap/ber"
	"github.com/cgngc/go-cap/isup"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		digits     string
		serviceKey int
		incomplete bool
		tag        int
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a CallingAddressAndService",
		Long: `Encode a CallingAddressAndService from a calling party number and a service key.

The calling party number is carried as an ISUP Generic Number. Its header
fields default to an international ISDN additional calling party number and
can be set by flag or under generic-number in the config file.

Examples:
  capgap encode --digits 12345 --service-key 42
  capgap encode --digits 0312345678 --nai 3 --service-key 7 -o json
  capgap encode --digits 12345 --service-key 42 --tag 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gn := isup.NewGenericNumber(digits)
			gn.NumberIncomplete = incomplete

			fields := []struct {
				key string
				dst *uint8
			}{
				{keyQualifier, &gn.NumberQualifier},
				{keyNAI, &gn.NatureOfAddress},
				{keyNPI, &gn.NumberingPlan},
				{keyAPRI, &gn.Presentation},
				{keyScreening, &gn.Screening},
			}
			for _, f := range fields {
				n := a.v.GetUint(f.key)
				if n > math.MaxUint8 {
					return fmt.Errorf("%s: %d out of range", f.key, n)
				}
				*f.dst = uint8(n)
			}

			d, err := isup.NewDigitsFromGenericNumber(gn)
			if err != nil {
				return err
			}
			if serviceKey == 0 {
				a.logger.Warn("service key 0 is treated as absent by decoders")
			}

			v := gocap.NewCallingAddressAndService(d, serviceKey)
			w := ber.NewWriter(v.MarshalLen())
			if tag >= 0 {
				err = v.EncodeAllWithTag(w, ber.ClassContextSpecific, tag)
			} else {
				err = v.EncodeAll(w)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("encoded",
				zap.Stringer("value", v),
				zap.Int("length", w.Len()),
			)

			f, err := NewFormatter(a.v.GetString(keyOutput), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.Print(v, w.Bytes())
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&digits, "digits", "", "Calling party address signals (0-9, a-f)")
	fl.IntVar(&serviceKey, "service-key", 0, "Service key")
	fl.BoolVar(&incomplete, "incomplete", false, "Mark the number as incomplete")
	fl.IntVar(&tag, "tag", -1, "Encode with this context-specific tag instead of SEQUENCE")

	def := isup.NewGenericNumber("")
	fl.Uint("qualifier", uint(def.NumberQualifier), "Number qualifier indicator")
	fl.Uint("nai", uint(def.NatureOfAddress), "Nature of address indicator")
	fl.Uint("npi", uint(def.NumberingPlan), "Numbering plan indicator")
	fl.Uint("apri", uint(def.Presentation), "Address presentation restricted indicator")
	fl.Uint("screening", uint(def.Screening), "Screening indicator")

	cmd.MarkFlagRequired("digits")
	cmd.MarkFlagRequired("service-key")

	a.v.BindPFlag(keyQualifier, fl.Lookup("qualifier"))
	a.v.BindPFlag(keyNAI, fl.Lookup("nai"))
	a.v.BindPFlag(keyNPI, fl.Lookup("npi"))
	a.v.BindPFlag(keyAPRI, fl.Lookup("apri"))
	a.v.BindPFlag(keyScreening, fl.Lookup("screening"))
	return cmd
}
