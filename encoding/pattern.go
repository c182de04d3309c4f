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
	"fmt"
	"strconv"
	"strings"

	"github.com/arborlog/arbor"
)

// DefaultPattern is spec §4.1's default: `{d} {l} {t} - {m}{n}`.
const DefaultPattern = "{d} {l} {t} - {m}{n}"

// renderFunc writes a directive's raw, unpadded output into w.
type renderFunc func(w *bytes.Buffer, e *arbor.Event, rc *renderCtx)

type formatSpec struct {
	set       bool
	align     byte // '<', '>', or 0 (unset)
	width     int
	hasWidth  bool
	precision int
	hasPrec   bool
}

type step struct {
	render renderFunc
}

// PatternEncoder compiles a pattern once at config build time and
// renders it against events. Directives carrying a width, alignment or
// precision render through a temporary buffer allocated per call;
// unadorned directives write straight into the caller's buffer.
type PatternEncoder struct {
	steps []step
	color ColorMode
}

// renderCtx carries per-Encode-call state shared by every directive,
// nested bodies (highlight) included: the color mode the encoder was
// compiled with.
type renderCtx struct {
	color ColorMode
}

// CompilePattern parses and compiles pattern, returning a
// configuration error if the pattern is malformed (spec §4.1:
// "compile failure is a configuration error").
func CompilePattern(pattern string, color ColorMode) (*PatternEncoder, error) {
	p := &patternParser{src: []rune(pattern)}
	steps, err := p.parseSequence(0)
	if err != nil {
		return nil, fmt.Errorf("pattern encoder: %w", err)
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("pattern encoder: unexpected %q at position %d", p.src[p.pos], p.pos)
	}
	return &PatternEncoder{steps: steps, color: color}, nil
}

// Encode implements arbor.Encoder.
func (pe *PatternEncoder) Encode(buf *bytes.Buffer, e *arbor.Event) error {
	rc := &renderCtx{color: pe.color}
	for _, s := range pe.steps {
		s.render(buf, e, rc)
	}
	return nil
}

// ---- parsing ----

type patternParser struct {
	src []rune
	pos int
}

func (p *patternParser) eof() bool { return p.pos >= len(p.src) }

func (p *patternParser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// parseSequence parses literal text interspersed with directives,
// stopping at an unescaped close rune (closing a nested body or a
// parenthesized unnamed-formatter argument), or at EOF when close==0.
func (p *patternParser) parseSequence(close rune) ([]step, error) {
	var steps []step
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			s := lit.String()
			steps = append(steps, step{render: func(w *bytes.Buffer, _ *arbor.Event, _ *renderCtx) {
				w.WriteString(s)
			}})
			lit.Reset()
		}
	}
	for !p.eof() {
		c := p.peek()
		switch {
		case c == '{':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '{' {
				lit.WriteByte('{')
				p.pos += 2
				continue
			}
			flush()
			st, err := p.parseDirective()
			if err != nil {
				return nil, err
			}
			steps = append(steps, st)
		case c == close:
			flush()
			return steps, nil
		case c == '}':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '}' {
				lit.WriteByte('}')
				p.pos += 2
				continue
			}
			return nil, fmt.Errorf("unmatched '}' at position %d", p.pos)
		default:
			lit.WriteRune(c)
			p.pos++
		}
	}
	flush()
	if close != 0 {
		return nil, fmt.Errorf("unterminated sequence: expected %q", close)
	}
	return steps, nil
}

// parseDirective parses one `{...}` span; p.pos is at the opening '{'.
func (p *patternParser) parseDirective() (step, error) {
	p.pos++ // consume '{'
	name := p.parseName()

	var args []string
	var body []step
	hasBody := false

	if name == "" {
		// Unnamed formatter: {(pattern)}. Its parenthesized content is
		// itself a compiled sub-pattern, not a plain string argument.
		if p.peek() != '(' {
			return step{}, fmt.Errorf("expected directive name or '(' at position %d", p.pos)
		}
		p.pos++
		b, err := p.parseSequence(')')
		if err != nil {
			return step{}, err
		}
		if p.peek() != ')' {
			return step{}, fmt.Errorf("unterminated unnamed formatter argument")
		}
		p.pos++
		body = b
		hasBody = true
	} else {
		for p.peek() == '(' {
			arg, err := p.parseParenGroup()
			if err != nil {
				return step{}, err
			}
			args = append(args, arg)
		}

		if p.peek() == '{' {
			p.pos++
			b, err := p.parseSequence('}')
			if err != nil {
				return step{}, err
			}
			if p.peek() != '}' {
				return step{}, fmt.Errorf("unterminated nested body for %q", name)
			}
			p.pos++
			body = b
			hasBody = true
		}
	}

	var spec formatSpec
	if p.peek() == ':' {
		p.pos++
		s, err := p.parseFormatSpec()
		if err != nil {
			return step{}, err
		}
		spec = s
	}

	if p.peek() != '}' {
		return step{}, fmt.Errorf("expected '}' to close directive %q at position %d", name, p.pos)
	}
	p.pos++ // consume closing '}'

	rf, err := buildDirective(name, args, body, hasBody)
	if err != nil {
		return step{}, err
	}
	if spec.set {
		rf = applySpec(rf, spec)
	}
	return step{render: rf}, nil
}

func (p *patternParser) parseName() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if c == '(' || c == '{' || c == '}' || c == ':' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *patternParser) parseParenGroup() (string, error) {
	p.pos++ // consume '('
	start := p.pos
	depth := 1
	for !p.eof() {
		switch p.peek() {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				s := string(p.src[start:p.pos])
				p.pos++ // consume ')'
				return s, nil
			}
		}
		p.pos++
	}
	return "", fmt.Errorf("unterminated '(' at position %d", start)
}

// parseFormatSpec parses `[align][width][.precision]` up to the next
// '}'. No fill character is accepted: padding is always spaces.
func (p *patternParser) parseFormatSpec() (formatSpec, error) {
	spec := formatSpec{set: true}
	if p.peek() == '<' || p.peek() == '>' {
		spec.align = byte(p.peek())
		p.pos++
	}
	start := p.pos
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.pos > start {
		w, _ := strconv.Atoi(string(p.src[start:p.pos]))
		spec.width = w
		spec.hasWidth = true
	}
	if p.peek() == '.' {
		p.pos++
		start = p.pos
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
		if p.pos == start {
			return spec, fmt.Errorf("expected digits after '.' at position %d", p.pos)
		}
		prec, _ := strconv.Atoi(string(p.src[start:p.pos]))
		spec.precision = prec
		spec.hasPrec = true
	}
	return spec, nil
}

// ---- directive construction ----

func buildDirective(name string, args []string, body []step, hasBody bool) (renderFunc, error) {
	switch name {
	case "d", "date":
		return dateDirective(args)
	case "l", "level":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) { w.WriteString(e.Level.String()) }, nil
	case "L", "line":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) {
			if e.Source.Line == 0 {
				w.WriteString("???")
				return
			}
			w.WriteString(strconv.Itoa(e.Source.Line))
		}, nil
	case "f", "file":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) {
			if e.Source.File == "" {
				w.WriteString("???")
				return
			}
			w.WriteString(e.Source.File)
		}, nil
	case "m", "message":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) { w.WriteString(e.Message) }, nil
	case "M", "module":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) {
			if e.Source.Module == "" {
				w.WriteString("???")
				return
			}
			w.WriteString(e.Source.Module)
		}, nil
	case "n":
		return func(w *bytes.Buffer, _ *arbor.Event, _ *renderCtx) { w.WriteString(newline) }, nil
	case "t", "target":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) { w.WriteString(e.Target) }, nil
	case "T", "thread":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) { w.WriteString(e.ThreadName) }, nil
	case "I", "thread_id":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) { fmt.Fprintf(w, "%d", e.ThreadID) }, nil
	case "P", "pid":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) { fmt.Fprintf(w, "%d", e.PID) }, nil
	case "X", "mdc":
		if len(args) == 0 {
			return nil, fmt.Errorf("%s: requires a key argument", name)
		}
		key := args[0]
		def := ""
		if len(args) > 1 {
			def = args[1]
		}
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) {
			if v, ok := e.KV(key); ok {
				w.WriteString(v)
				return
			}
			w.WriteString(def)
		}, nil
	case "K", "kv":
		return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) {
			for i, kv := range e.KVs {
				if i > 0 {
					w.WriteString(", ")
				}
				w.WriteString(kv.Key)
				w.WriteString("=")
				w.WriteString(kv.Value)
			}
		}, nil
	case "h", "highlight":
		if !hasBody {
			return nil, fmt.Errorf("%s: requires a nested body {%s{...}}", name, name)
		}
		return highlightDirective(body), nil
	case "":
		// unnamed formatter: just applies the format spec to its body.
		if !hasBody {
			return nil, fmt.Errorf("unnamed formatter requires a nested body")
		}
		return bodyDirective(body), nil
	default:
		return nil, fmt.Errorf("unknown directive %q", name)
	}
}

func bodyDirective(body []step) renderFunc {
	return func(w *bytes.Buffer, e *arbor.Event, rc *renderCtx) {
		for _, s := range body {
			s.render(w, e, rc)
		}
	}
}

func highlightDirective(body []step) renderFunc {
	inner := bodyDirective(body)
	return func(w *bytes.Buffer, e *arbor.Event, rc *renderCtx) {
		if rc.color == ColorOff {
			inner(w, e, rc)
			return
		}
		code, ok := levelSGR[e.Level.String()]
		if !ok {
			inner(w, e, rc)
			return
		}
		w.WriteString(code)
		inner(w, e, rc)
		w.WriteString(sgrReset)
	}
}

func dateDirective(args []string) (renderFunc, error) {
	layout := defaultDateLayout
	if len(args) > 0 && args[0] != "" {
		layout = chronoToGo(args[0])
	}
	useUTC := false
	if len(args) > 1 {
		switch strings.ToLower(strings.TrimSpace(args[1])) {
		case "utc":
			useUTC = true
		case "local", "":
		default:
			return nil, fmt.Errorf("d/date: unknown timezone argument %q", args[1])
		}
	}
	return func(w *bytes.Buffer, e *arbor.Event, _ *renderCtx) {
		t := e.Wall
		if useUTC {
			t = t.UTC()
		} else {
			t = t.Local()
		}
		w.WriteString(t.Format(layout))
	}, nil
}

// ---- format-spec application ----

func applySpec(inner renderFunc, spec formatSpec) renderFunc {
	return func(w *bytes.Buffer, e *arbor.Event, rc *renderCtx) {
		// A dedicated buffer per call (rather than one shared buffer)
		// so nested format-spec directives (e.g. a width spec inside a
		// highlighted body that itself has a precision spec) don't
		// clobber an in-progress outer Reset/Write pair.
		var local bytes.Buffer
		inner(&local, e, rc)
		s := local.String()
		if spec.hasPrec && len(s) > spec.precision {
			// truncate on the left, preserving the rightmost N
			// characters (spec §4.1, a deliberate departure from the
			// upstream's right-truncation).
			s = s[len(s)-spec.precision:]
		}
		if spec.hasWidth && len(s) < spec.width {
			pad := strings.Repeat(" ", spec.width-len(s))
			if spec.align == '>' {
				s = pad + s
			} else {
				// default / '<' both left-align (pad on the right)
				s = s + pad
			}
		}
		w.WriteString(s)
	}
}
