// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package cap

import (
	"fmt"

	"github.com/wmnsk/go-tcap"
)

var problemNames = map[int][]string{
	tcap.GeneralProblem: {
		"unrecognizedComponent",
		"mistypedComponent",
		"badlyStructuredComponent",
	},
	tcap.InvokeProblem: {
		"duplicateInvokeID",
		"unrecognizedOperation",
		"mistypedParameter",
		"resourceLimitation",
		"initiatingRelease",
		"unrecognizedLinkedID",
		"linkedResponseUnexpected",
		"unexpectedLinkedOperation",
	},
	tcap.ReturnResultProblem: {
		"unrecognizedInvokeID",
		"returnResultUnexpected",
		"mistypedParameter",
	},
	tcap.ReturnErrorProblem: {
		"unrecognizedInvokeID",
		"returnErrorUnexpected",
		"unrecognizedError",
		"unexpectedError",
		"mistypedParameter",
	},
}

var problemTypeNames = []string{
	tcap.GeneralProblem:      "generalProblem",
	tcap.InvokeProblem:       "invokeProblem",
	tcap.ReturnResultProblem: "returnResultProblem",
	tcap.ReturnErrorProblem:  "returnErrorProblem",
}

// Problem represents the Problem Code of a TCAP Reject component, the answer
// to an Invoke whose parameter could not be decoded.
//
// Type and Code take the Problem Type and Problem Code definitions of go-tcap.
type Problem struct {
	Type int
	Code uint8
}

// NewInvokeProblem creates a new Problem of type tcap.InvokeProblem.
func NewInvokeProblem(code uint8) *Problem {
	return &Problem{Type: tcap.InvokeProblem, Code: code}
}

// Reject returns the TCAP Reject component answering the Invoke invID with p.
func (p *Problem) Reject(invID int) *tcap.Component {
	c := tcap.NewReject(invID, p.Type, p.Code, nil)

	// tcap.NewReject tags the component as an Invoke, which drops the
	// Problem Code when marshaling.
	c.Type = tcap.NewContextSpecificConstructorTag(tcap.Reject)
	c.SetLength()
	return c
}

// String returns Problem in human readable string.
func (p *Problem) String() string {
	typ := fmt.Sprintf("problemType(%d)", p.Type)
	if p.Type >= 0 && p.Type < len(problemTypeNames) {
		typ = problemTypeNames[p.Type]
	}

	names := problemNames[p.Type]
	if int(p.Code) < len(names) {
		return typ + "/" + names[p.Code]
	}
	return fmt.Sprintf("%s/%d", typ, p.Code)
}
