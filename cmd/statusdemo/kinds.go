/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"dirpx.dev/status"
	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"dirpx.dev/status/reason"
)

// ErrorKind classifies what the demo can fail at.
type ErrorKind int

const (
	KindRead ErrorKind = iota
	KindEmpty
	KindParse
	KindUsage
)

var (
	_ apis.KindCoder    = KindRead
	_ apis.KindReasoner = KindRead
)

func (k ErrorKind) String() string {
	switch k {
	case KindRead:
		return "Failed to read file"
	case KindEmpty:
		return "File has too few entries"
	case KindParse:
		return "Failed to parse file"
	case KindUsage:
		return "Invalid arguments"
	default:
		return "Unknown failure"
	}
}

func (k ErrorKind) Code() code.Code {
	switch k {
	case KindRead:
		return code.Unavailable
	case KindEmpty, KindParse, KindUsage:
		return code.Invalid
	default:
		return code.Internal
	}
}

func (k ErrorKind) Reason() reason.Reason {
	switch k {
	case KindRead:
		return "file.read"
	case KindEmpty:
		return "file.validate"
	case KindParse:
		return "file.parse"
	default:
		return reason.Empty
	}
}

// demoStatus is the error type every command returns.
type demoStatus = status.Status[ErrorKind, status.AdhocContext]

func newStatus(k ErrorKind) *demoStatus {
	return status.New[ErrorKind, status.AdhocContext](k)
}
