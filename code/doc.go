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

// Package code is the machine-readable classification vocabulary for status
// kinds.
//
// A Code is short, lowercase and underscore-separated ("not_found",
// "unavailable"). It is comparable and implements fmt.Stringer, so a bare
// Code already satisfies status.Kind; richer kinds (status.Coded) pair it
// with a reason and a human message.
//
// The zero value is "no code". Parse and Validate reject it.
package code
