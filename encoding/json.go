// Copyright 2026 The arbor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package encoding

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/arborlog/arbor"
)

// JSONEncoder emits one record per event (spec §4.2). Field order is
// fixed to keep on-disk diffs stable: time, level, message,
// module_path, file, line, target, thread, thread_id, then the
// optional mdc and key_value_pairs objects.
type JSONEncoder struct{}

// NewJSONEncoder builds the JSON encoder. It takes no parameters: the
// pattern DSL has knobs, JSON does not (spec §4.2 "The JSON encoder
// ignores patterns").
func NewJSONEncoder() *JSONEncoder { return &JSONEncoder{} }

// Encode implements arbor.Encoder.
func (j *JSONEncoder) Encode(buf *bytes.Buffer, e *arbor.Event) error {
	buf.WriteByte('{')
	first := true
	field := func(name string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeJSONString(buf, name)
		buf.WriteByte(':')
	}

	field("time")
	writeJSONString(buf, e.Wall.Format("2006-01-02T15:04:05.000000000-07:00"))

	field("level")
	writeJSONString(buf, e.Level.String())

	field("message")
	writeJSONString(buf, e.Message)

	field("module_path")
	writeJSONString(buf, e.Source.Module)

	field("file")
	writeJSONString(buf, e.Source.File)

	field("line")
	buf.WriteString(strconv.Itoa(e.Source.Line))

	field("target")
	writeJSONString(buf, e.Target)

	field("thread")
	writeJSONString(buf, e.ThreadName)

	field("thread_id")
	buf.WriteString(strconv.FormatInt(e.ThreadID, 10))

	if len(e.KVs) > 0 {
		field("mdc")
		buf.WriteByte('{')
		for i, kv := range e.KVs {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, kv.Key)
			buf.WriteByte(':')
			writeJSONString(buf, kv.Value)
		}
		buf.WriteByte('}')

		field("key_value_pairs")
		buf.WriteByte('{')
		for i, kv := range e.KVs {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, kv.Key)
			buf.WriteByte(':')
			writeJSONString(buf, kv.Value)
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	buf.WriteByte('\n')
	return nil
}

// writeJSONString escapes and quotes s using encoding/json's string
// encoder, reused rather than hand-rolled since Go's stdlib already
// gets surrogate pairs and control-character escaping right — the
// escaping rules themselves aren't a place arbor's domain logic lives.
func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
