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
	"log/slog"
)

var (
	_ slog.LogValuer = (*Status[Unkind, NoContext])(nil)
	_ slog.LogValuer = (*InternalStatus[Unkind, NoContext])(nil)
	_ slog.LogValuer = AdhocContext{}
)

// LogValue groups the kind, its code and reason when present, the context
// and the messages of the public causes. Private causes are left out.
func (s *Status[K, C]) LogValue() slog.Value {
	if s == nil {
		return slog.StringValue("<nil>")
	}
	attrs := s.attrs()
	attrs = appendCauses(attrs, s.Sources())
	return slog.GroupValue(attrs...)
}

// LogValue is like Status.LogValue but includes a private cause and says how
// the cause was attached.
func (i *InternalStatus[K, C]) LogValue() slog.Value {
	s := i.inner()
	if s == nil {
		return slog.StringValue("<nil>")
	}
	attrs := s.attrs()
	if vis := i.sourceVisibility(); vis != noSource {
		attrs = append(attrs, slog.String("source", vis.String()))
	}
	attrs = appendCauses(attrs, i.Sources())
	return slog.GroupValue(attrs...)
}

func (s *Status[K, C]) attrs() []slog.Attr {
	attrs := []slog.Attr{slog.String("kind", s.kind.String())}
	if c := kindCode(s.kind); c != "" {
		attrs = append(attrs, slog.String("code", c))
	}
	if r := kindReason(s.kind); r != "" {
		attrs = append(attrs, slog.String("reason", r))
	}
	if !s.context.IsEmpty() {
		if lv, ok := any(s.context).(slog.LogValuer); ok {
			attrs = append(attrs, slog.Attr{Key: "context", Value: lv.LogValue()})
		} else {
			attrs = append(attrs, slog.String("context", s.context.String()))
		}
	}
	return attrs
}

func appendCauses(attrs []slog.Attr, chain *Chain) []slog.Attr {
	var causes []string
	for err := range chain.All() {
		causes = append(causes, err.Error())
	}
	if len(causes) == 0 {
		return attrs
	}
	return append(attrs, slog.Any("causes", causes))
}
