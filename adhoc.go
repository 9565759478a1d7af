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

package status

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

type entry struct {
	key   string
	value any
}

// AdhocContext is an ordered set of key/value pairs for prototyping.
// Keys are unique; the zero value is empty.
//
//	ctx := status.AdhocContext{}.
//		Insert("path", "/etc/app.yaml").
//		Insert("attempt", 3)
type AdhocContext struct {
	entries []entry
}

// Fields builds a context from alternating keys and values. A pair whose key
// is not a string is dropped; a trailing key gets a nil value.
func Fields(kv ...any) AdhocContext {
	var c AdhocContext
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		c = c.Insert(key, v)
	}
	return c
}

// Insert returns a copy with key set to value. An existing key keeps its
// position.
func (c AdhocContext) Insert(key string, value any) AdhocContext {
	out := AdhocContext{entries: slices.Clone(c.entries)}
	out.set(key, value)
	return out
}

// set mutates c in place; only for freshly cloned contexts.
func (c *AdhocContext) set(key string, value any) {
	if i := c.index(key); i >= 0 {
		c.entries[i].value = value
		return
	}
	c.entries = append(c.entries, entry{key: key, value: value})
}

func (c AdhocContext) index(key string) int {
	return slices.IndexFunc(c.entries, func(e entry) bool { return e.key == key })
}

// Update returns c extended with every entry of replacement, in order.
// On a shared key the replacement's value wins.
func (c AdhocContext) Update(replacement AdhocContext) AdhocContext {
	out := AdhocContext{entries: slices.Clone(c.entries)}
	for _, e := range replacement.entries {
		out.set(e.key, e.value)
	}
	return out
}

// Get returns the value stored under key.
func (c AdhocContext) Get(key string) (any, bool) {
	if i := c.index(key); i >= 0 {
		return c.entries[i].value, true
	}
	return nil, false
}

func (c AdhocContext) Len() int { return len(c.entries) }

func (c AdhocContext) IsEmpty() bool { return len(c.entries) == 0 }

// Keys returns the keys in insertion order.
func (c AdhocContext) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key
	}
	return keys
}

// All iterates over the entries in insertion order.
func (c AdhocContext) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, e := range c.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// String renders one "key: value" line per entry.
func (c AdhocContext) String() string {
	var b strings.Builder
	for i, e := range c.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(&b, "%s: %v", e.key, e.value)
	}
	return b.String()
}

// LogValue renders the entries as an ordered slog group.
func (c AdhocContext) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(c.entries))
	for i, e := range c.entries {
		attrs[i] = slog.Any(e.key, e.value)
	}
	return slog.GroupValue(attrs...)
}
