// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-service-kit/logger"

// Option customizes a [Resolver] at construction time.
type Option func(*resolverOptions)

type resolverOptions struct {
	log       *logger.Logger
	useEnv    bool
	envPrefix string
}

// WithLogger routes skip diagnostics to log instead of the default stderr
// console logger. Pass logger.Nop() to silence them entirely.
func WithLogger(log *logger.Logger) Option {
	return func(o *resolverOptions) {
		o.log = log
	}
}

// WithEnvVars enables an environment-variable overlay that is applied after
// every file source, taking the highest precedence. Variables are mapped onto
// the optional shape via its `env` struct tags with the given prefix
// prepended (e.g. prefix "APP_" and tag `env:"SOME_INT"` reads APP_SOME_INT).
// Unset variables leave the corresponding pointer fields nil, so the overlay
// is transparent for everything the environment does not mention.
func WithEnvVars(prefix string) Option {
	return func(o *resolverOptions) {
		o.useEnv = true
		o.envPrefix = prefix
	}
}
