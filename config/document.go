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
	"bytes"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// LoadDocument reads a YAML/JSON/TOML file at path into an untyped
// document tree. Format is inferred from the file extension the same
// way viper.SetConfigFile does natively; viper is used purely as a
// multi-format document loader here, never as a package-level
// singleton and never for its own watch goroutine (arbor's reload
// loop, §4.8, owns timing itself). viper's key delimiter is set to
// "::" so dotted logger names such as "app.db" stay single map keys.
func LoadDocument(path string) (map[string]interface{}, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	return v.AllSettings(), nil
}

// DecodeBytes parses raw config bytes already in hand (tests, embedded
// defaults) in the given viper format ("yaml", "json", "toml").
func DecodeBytes(data []byte, format string) (map[string]interface{}, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "config: decoding %s document", format)
	}
	return v.AllSettings(), nil
}

// DecodeDocument decodes an untyped document tree into a Document,
// rejecting unknown top-level fields (spec §4.7: "Unknown fields are
// rejected").
func DecodeDocument(raw map[string]interface{}) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "config: decoding document")
	}
	return &doc, nil
}

// decodeExtra decodes a kind's Extra map into its typed spec struct,
// with the same unknown-field rejection as DecodeDocument. Every
// built-in factory in builtins.go calls this once for its own fields.
func decodeExtra(extra map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return errors.WithStack(dec.Decode(extra))
}
