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

package config

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/arborlog/arbor"
	"github.com/arborlog/arbor/encoding"
)

// Build assembles an *arbor.Graph from a decoded Document, resolving
// every kind tag through reg (spec §4.7's build phase). No partial
// graph is ever installed: the first validation error aborts the
// whole build, mirroring log4g's groupConfigParams-style
// fail-the-whole-reconfigure behavior rather than skipping the one
// bad entry.
func Build(doc *Document, reg *Registry) (*arbor.Graph, error) {
	if doc.Root.Level == "" {
		return nil, errMissingRootLevel
	}
	rootLevel, ok := arbor.ParseLevelFilter(doc.Root.Level)
	if !ok {
		return nil, fmt.Errorf("config: invalid root level %q", doc.Root.Level)
	}

	appenders := make(map[string]arbor.Appender, len(doc.Appenders))
	for id, spec := range doc.Appenders {
		app, err := buildAppender(id, spec, reg)
		if err != nil {
			return nil, errors.Wrapf(err, "config: building appender %q", id)
		}
		appenders[id] = app
	}

	specs := make([]arbor.LoggerSpec, 0, len(doc.Loggers)+1)
	specs = append(specs, arbor.LoggerSpec{
		Name:        "",
		Level:       rootLevel,
		HasLevel:    true,
		AppenderIDs: doc.Root.Appenders,
		Additive:    false,
	})
	for name, l := range doc.Loggers {
		ls := arbor.LoggerSpec{
			Name:        name,
			AppenderIDs: l.Appenders,
			Additive:    true,
		}
		if l.Additive != nil {
			ls.Additive = *l.Additive
		}
		if l.Level != "" {
			lf, ok := arbor.ParseLevelFilter(l.Level)
			if !ok {
				return nil, fmt.Errorf("config: invalid level %q for logger %q", l.Level, name)
			}
			ls.Level = lf
			ls.HasLevel = true
		}
		specs = append(specs, ls)
	}

	return arbor.BuildGraph(specs, appenders)
}

// Validate runs every §4.7 build-phase check against doc without
// installing a graph, accumulating every failure instead of stopping
// at the first (unlike Build, which fails fast — an application
// starting up only needs to know something is wrong, while `arborctl
// check` wants to report everything wrong with a file in one pass).
// Appenders constructed along the way (which may create files/
// directories as a side effect of validating their path) are closed
// before returning.
func Validate(doc *Document, reg *Registry) []error {
	var errs []error

	if doc.Root.Level == "" {
		errs = append(errs, errMissingRootLevel)
	} else if _, ok := arbor.ParseLevelFilter(doc.Root.Level); !ok {
		errs = append(errs, fmt.Errorf("config: invalid root level %q", doc.Root.Level))
	}

	var built []arbor.Appender
	for id, spec := range doc.Appenders {
		app, err := buildAppender(id, spec, reg)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "config: building appender %q", id))
			continue
		}
		built = append(built, app)
	}
	defer func() {
		for _, app := range built {
			_ = app.Close()
		}
	}()

	for name, l := range doc.Loggers {
		if l.Level != "" {
			if _, ok := arbor.ParseLevelFilter(l.Level); !ok {
				errs = append(errs, fmt.Errorf("config: invalid level %q for logger %q", l.Level, name))
			}
		}
		for _, id := range l.Appenders {
			if _, ok := doc.Appenders[id]; !ok {
				errs = append(errs, fmt.Errorf("config: logger %q references unknown appender %q", name, id))
			}
		}
	}
	for _, id := range doc.Root.Appenders {
		if _, ok := doc.Appenders[id]; !ok {
			errs = append(errs, fmt.Errorf("config: root references unknown appender %q", id))
		}
	}

	return errs
}

func buildAppender(id string, spec AppenderSpec, reg *Registry) (arbor.Appender, error) {
	factory, ok := reg.appenders[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown appender kind %q", spec.Kind)
	}

	filters := make([]arbor.Filter, 0, len(spec.Filters))
	for _, fs := range spec.Filters {
		ffactory, ok := reg.filters[fs.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown filter kind %q", fs.Kind)
		}
		f, err := ffactory(fs.Extra)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	encSpec := spec.Encoder
	if encSpec == nil {
		encSpec = &KindSpec{Kind: "pattern", Extra: map[string]interface{}{"pattern": encoding.DefaultPattern}}
	}
	efactory, ok := reg.encoders[encSpec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown encoder kind %q", encSpec.Kind)
	}
	color := encoding.DecideColor(colorFD(spec.Kind, spec.Extra), nil)
	enc, err := efactory(encSpec.Extra, color)
	if err != nil {
		return nil, err
	}

	return factory(id, enc, filters, spec.Extra)
}
