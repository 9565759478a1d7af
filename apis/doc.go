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

// Package apis holds the small contracts that transport code, loggers and
// mappers target without importing the status container itself.
//
// Concrete errors (status.Status, its Internal view) implement these
// interfaces; callers should depend on the interfaces.
//
// Keep this package light: interfaces plus the Transport value, nothing else.
package apis
