/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads sampling scenarios from YAML files. A scenario
// binds a seed, a sample count, a distribution description in one of
// the textual parameter formats, and the range policies of the
// generator.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/godist-project/godist/mtrand"
	"github.com/godist-project/godist/params"
)

// Scenario describes one reproducible sampling run.
type Scenario struct {
	Seed             uint32 `yaml:"seed"`
	Count            int    `yaml:"count"`
	Distribution     string `yaml:"distribution"`
	FloatRangePolicy string `yaml:"float_range_policy,omitempty"`
	IntRangePolicy   string `yaml:"int_range_policy,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario file %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse scenario file %s", path)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario document.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{Count: 1}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "malformed scenario YAML")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scenario fields against the formats and policy
// names the library accepts.
func (s *Scenario) Validate() error {
	if s.Count < 0 {
		return errors.Errorf("count cannot be negative: %d", s.Count)
	}
	if s.Distribution != "" {
		if _, err := params.Parse(s.Distribution); err != nil {
			return errors.Wrapf(err, "invalid distribution %q", s.Distribution)
		}
	}
	if s.FloatRangePolicy != "" {
		if _, err := mtrand.ParsePolicy(s.FloatRangePolicy); err != nil {
			return errors.Wrap(err, "invalid float_range_policy")
		}
	}
	if s.IntRangePolicy != "" {
		if _, err := mtrand.ParsePolicy(s.IntRangePolicy); err != nil {
			return errors.Wrap(err, "invalid int_range_policy")
		}
	}
	return nil
}

// Config translates the scenario policy names into a generator
// configuration, falling back to the defaults for empty fields.
func (s *Scenario) Config() mtrand.Config {
	cfg := mtrand.DefaultConfig()
	if s.FloatRangePolicy != "" {
		if p, err := mtrand.ParsePolicy(s.FloatRangePolicy); err == nil {
			cfg.FloatRange = p
		}
	}
	if s.IntRangePolicy != "" {
		if p, err := mtrand.ParsePolicy(s.IntRangePolicy); err == nil {
			cfg.IntRange = p
		}
	}
	return cfg
}

// Parameters parses the scenario distribution description. An empty
// description yields the default uniform parameters.
func (s *Scenario) Parameters() (params.Parameters, error) {
	if s.Distribution == "" {
		return params.NewUniform(), nil
	}
	return params.Parse(s.Distribution)
}
