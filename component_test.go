// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package cap_test

import (
	"bytes"
	"testing"

	"github.com/wmnsk/go-tcap"

	cap "github.com/cgngc/go-cap"
)

func TestProblemString(t *testing.T) {
	cases := []struct {
		problem *cap.Problem
		want    string
	}{
		{cap.NewInvokeProblem(tcap.InvokeProblemMistypedParameter), "invokeProblem/mistypedParameter"},
		{cap.NewInvokeProblem(tcap.InvokeProblemUnexpectedLinkedOperation), "invokeProblem/unexpectedLinkedOperation"},
		{&cap.Problem{Type: tcap.GeneralProblem, Code: tcap.BadlyStructuredComponent}, "generalProblem/badlyStructuredComponent"},
		{&cap.Problem{Type: tcap.ReturnErrorProblem, Code: tcap.ErrorProblemMistypedParameter}, "returnErrorProblem/mistypedParameter"},
		{&cap.Problem{Type: tcap.ReturnResultProblem, Code: 9}, "returnResultProblem/9"},
		{&cap.Problem{Type: 7, Code: 1}, "problemType(7)/1"},
	}

	for _, c := range cases {
		if got := c.problem.String(); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func TestReasonString(t *testing.T) {
	for r, want := range map[cap.Reason]string{
		cap.StreamTruncated:               "streamTruncated",
		cap.MalformedTLV:                  "malformedTlv",
		cap.UnexpectedConstructedEncoding: "unexpectedConstructedEncoding",
		cap.MissingMandatoryField:         "missingMandatoryField",
		cap.Reason(0):                     "Reason(0)",
	} {
		if got := r.String(); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}
}

func TestProblemReject(t *testing.T) {
	_, err := cap.ParseCallingAddressAndService([]byte{0x30, 0x03, 0x81, 0x01, 0x2a})
	pe, ok := err.(*cap.ParsingError)
	if !ok {
		t.Fatalf("got %T, want *cap.ParsingError", err)
	}

	b, err := pe.Problem().Reject(5).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b, []byte{0xa4, 0x06, 0x02, 0x01, 0x05, 0x81, 0x01, 0x02}; !bytes.Equal(got, want) {
		t.Errorf("\ngot:  %x\nwant: %x", got, want)
	}

	c, err := tcap.ParseComponent(b)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.Type.Code(), tcap.Reject; got != want {
		t.Errorf("component type: got %d, want %d", got, want)
	}
	if got, want := c.ProblemCode.Tag.Code(), tcap.InvokeProblem; got != want {
		t.Errorf("problem type: got %d, want %d", got, want)
	}
	if got, want := c.ProblemCode.Value, []byte{tcap.InvokeProblemMistypedParameter}; !bytes.Equal(got, want) {
		t.Errorf("problem code: got %x, want %x", got, want)
	}
}
