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

// Command statusdemo reads small key=value files and reports failures the
// way a service would: a short message for the caller, the full cause chain
// for operators.
//
//	statusdemo read config.env --min-lines 2
//	statusdemo --debug read missing.env
//	statusdemo classify --code unavailable --reason storage.pg.connect
package main

import "dirpx.dev/status"

func main() {
	status.Main(newRootCmd().Execute)
}
