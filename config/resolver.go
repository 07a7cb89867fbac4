// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-service-kit/logger"
)

// Resolver resolves complete configuration values of type C by overlaying
// partial values of type O decoded from an ordered chain of sources.
// A Resolver holds no mutable state across calls and is safe for repeated use.
type Resolver[C, O any] struct {
	defaults  C
	log       *logger.Logger
	useEnv    bool
	envPrefix string
}

// NewResolver validates that O is the optional counterpart of C (same field
// set, each field a pointer to the complete field's type) and returns a
// resolver that starts every resolution from defaults. A shape mismatch is a
// programming error in the type pair and is reported here, once, so the Read
// methods can never fail.
func NewResolver[C, O any](defaults C, opts ...Option) (*Resolver[C, O], error) {
	if err := checkShapes[C, O](); err != nil {
		return nil, fmt.Errorf("error validating config shapes: %w", err)
	}

	options := resolverOptions{log: logger.NewConsoleLogger("config")}
	for _, opt := range opts {
		opt(&options)
	}

	return &Resolver[C, O]{
		defaults:  defaults,
		log:       options.log,
		useEnv:    options.useEnv,
		envPrefix: options.envPrefix,
	}, nil
}

// ReadChain resolves a complete configuration value from the given chain of
// source files, earliest first, latest wins. Each source is read and decoded
// into the optional shape; sources that cannot be read or decoded are
// reported through the resolver's logger and skipped, so the chain never
// aborts. Fields no source sets keep their default value — the result is
// always fully populated, worst case being the defaults themselves.
//
// When the resolver was built with [WithEnvVars], an environment-variable
// overlay is folded in after all file sources and takes the highest
// precedence.
func (r *Resolver[C, O]) ReadChain(chain []string) C {
	combined := new(O)

	for _, source := range chain {
		data, err := os.ReadFile(source)
		if err != nil {
			r.report(source, fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
			continue
		}

		partial := new(O)
		if err := decode(source, data, partial); err != nil {
			r.report(source, fmt.Errorf("%w: %w", ErrDecodeFailure, err))
			continue
		}

		if err := overlay(combined, partial); err != nil {
			r.report(source, fmt.Errorf("error merging source: %w", err))
		}
	}

	if r.useEnv {
		partial := new(O)
		if err := env.ParseWithOptions(partial, env.Options{Prefix: r.envPrefix}); err != nil {
			r.report("environment", fmt.Errorf("%w: %w", ErrDecodeFailure, err))
		} else if err := overlay(combined, partial); err != nil {
			r.report("environment", fmt.Errorf("error merging overlay: %w", err))
		}
	}

	result := r.defaults
	applyPartial(&result, combined)
	return result
}

// ReadEnvironment resolves the conventional two-file layering for a named
// environment: "{dir}/{basename}.toml" overlaid by
// "{dir}/{basename}.{environment}.toml". An empty environment reads only the
// base file; an empty dir means the current directory.
func (r *Resolver[C, O]) ReadEnvironment(dir, basename, environment string) C {
	if dir == "" {
		dir = "."
	}

	chain := []string{filepath.Join(dir, basename+".toml")}
	if environment != "" {
		chain = append(chain, filepath.Join(dir, basename+"."+environment+".toml"))
	}

	return r.ReadChain(chain)
}

func (r *Resolver[C, O]) report(source string, err error) {
	r.log.Warn().Str("source", source).Err(err).Msg("skipping configuration source")
}

// overlay folds src into dst: fields src sets (non-nil pointers) replace
// dst's, fields src leaves nil are transparent. WithoutDereference makes
// mergo judge emptiness by pointer nilness rather than the pointed-to value,
// so an explicitly configured zero (empty string, 0, empty list) still wins
// over an earlier source.
func overlay[O any](dst, src *O) error {
	return mergo.Merge(dst, *src, mergo.WithOverride, mergo.WithoutDereference)
}
