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

	"github.com/arborlog/arbor"
	"github.com/arborlog/arbor/encoding"
	"github.com/arborlog/arbor/rolling"
)

// AppenderFactory builds an appender from its decoded encoder,
// filters, and kind-specific Extra fields.
type AppenderFactory func(id string, encoder arbor.Encoder, filters []arbor.Filter, extra map[string]interface{}) (arbor.Appender, error)

// EncoderFactory builds an encoder from its kind-specific Extra
// fields and the color mode its host appender decided on.
type EncoderFactory func(extra map[string]interface{}, color encoding.ColorMode) (arbor.Encoder, error)

// FilterFactory builds a filter from its kind-specific Extra fields.
type FilterFactory func(extra map[string]interface{}) (arbor.Filter, error)

// TriggerFactory builds a rolling.Trigger from its kind-specific Extra
// fields.
type TriggerFactory func(extra map[string]interface{}) (rolling.Trigger, error)

// RollerFactory builds a rolling.Roller from its kind-specific Extra
// fields.
type RollerFactory func(extra map[string]interface{}) (rolling.Roller, error)

// Registry maps a (component kind, string tag) pair to the factory
// that builds it — spec §4.7's Deserializers. Unlike log4g's
// logConfig.appenderFactorys, which lives on a package-level
// singleton mutated by init(), Registry is a plain value type with no
// shared global: every Build call supplies its own (or the default
// one from NewRegistry), so concurrent tests building independent
// configs never race on one shared map.
type Registry struct {
	appenders map[string]AppenderFactory
	encoders  map[string]EncoderFactory
	filters   map[string]FilterFactory
	triggers  map[string]TriggerFactory
	rollers   map[string]RollerFactory
}

// NewRegistry returns a registry pre-populated with every built-in
// kind (spec §4.7: "built-in kinds are preregistered").
func NewRegistry() *Registry {
	r := &Registry{
		appenders: make(map[string]AppenderFactory),
		encoders:  make(map[string]EncoderFactory),
		filters:   make(map[string]FilterFactory),
		triggers:  make(map[string]TriggerFactory),
		rollers:   make(map[string]RollerFactory),
	}
	registerBuiltins(r)
	return r
}

// RegisterAppender adds a user-defined appender kind. It errors on a
// kind tag already registered — built-in or user — matching log4g's
// registerAppender, which panics on a duplicate type name rather than
// silently shadowing it.
func (r *Registry) RegisterAppender(kind string, f AppenderFactory) error {
	if _, ok := r.appenders[kind]; ok {
		return fmt.Errorf("config: appender kind %q already registered", kind)
	}
	r.appenders[kind] = f
	return nil
}

// RegisterEncoder adds a user-defined encoder kind.
func (r *Registry) RegisterEncoder(kind string, f EncoderFactory) error {
	if _, ok := r.encoders[kind]; ok {
		return fmt.Errorf("config: encoder kind %q already registered", kind)
	}
	r.encoders[kind] = f
	return nil
}

// RegisterFilter adds a user-defined filter kind.
func (r *Registry) RegisterFilter(kind string, f FilterFactory) error {
	if _, ok := r.filters[kind]; ok {
		return fmt.Errorf("config: filter kind %q already registered", kind)
	}
	r.filters[kind] = f
	return nil
}

// RegisterTrigger adds a user-defined rolling trigger kind.
func (r *Registry) RegisterTrigger(kind string, f TriggerFactory) error {
	if _, ok := r.triggers[kind]; ok {
		return fmt.Errorf("config: trigger kind %q already registered", kind)
	}
	r.triggers[kind] = f
	return nil
}

// RegisterRoller adds a user-defined rolling roller kind.
func (r *Registry) RegisterRoller(kind string, f RollerFactory) error {
	if _, ok := r.rollers[kind]; ok {
		return fmt.Errorf("config: roller kind %q already registered", kind)
	}
	r.rollers[kind] = f
	return nil
}
