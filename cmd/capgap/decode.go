// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	gocap "github.com/cgngc/go-cap"
)

func newDecodeCmd(a *app) *cobra.Command {
	var invokeID int

	cmd := &cobra.Command{
		Use:   "decode HEX...",
		Short: "Decode CallingAddressAndService parameters",
		Long: `Decode one or more BER encoded CallingAddressAndService parameters given in hex.

Spaces and colons in the input are ignored. Every input is decoded even if an
earlier one fails; for each failure the TCAP Reject component that answers it
is logged, addressed to --invoke-id.

Examples:
  capgap decode 300b800606841321430581012a
  capgap decode "30 0b 80 06 06 84 13 21 43 05 81 01 2a" -o xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := NewFormatter(a.v.GetString(keyOutput), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var errs error
			for i, arg := range args {
				b, err := parseHex(arg)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("input %d: %w", i, err))
					continue
				}

				v, err := gocap.ParseCallingAddressAndService(b)
				if err != nil {
					var pe *gocap.ParsingError
					if errors.As(err, &pe) {
						p := pe.Problem()
						fields := []zap.Field{
							zap.Int("input", i),
							zap.Stringer("reason", pe.Reason),
							zap.Stringer("problem", p),
							zap.Error(err),
						}
						if rej, err := p.Reject(invokeID).MarshalBinary(); err == nil {
							fields = append(fields, zap.String("reject", hex.EncodeToString(rej)))
						}
						a.logger.Warn("rejecting parameter", fields...)
					}
					errs = multierr.Append(errs, fmt.Errorf("input %d: %w", i, err))
					continue
				}

				if err := f.Print(v, b); err != nil {
					return err
				}
			}
			return errs
		},
	}

	cmd.Flags().IntVar(&invokeID, "invoke-id", 1, "Invoke ID the Reject components answer")
	return cmd
}

func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}
