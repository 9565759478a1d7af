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

// Package reason holds the optional, dotted refinement that travels next to a
// code inside a kind.
//
// A code says what went wrong; a reason says where: "storage.pg.connect",
// "config.read". Reasons have one to four segments, which is what lets the
// mapper match them by prefix.
//
// The zero value means "no reason" and is always valid.
package reason
