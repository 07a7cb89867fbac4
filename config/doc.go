// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides a layered configuration resolver that builds a
// fully-populated settings value by overlaying partial configuration sources
// in a caller-specified order.
//
// Callers declare two structurally parallel struct types: a complete shape C
// whose fields are plain values, and an optional shape O whose fields are
// pointers to the same types. A decoded source leaves absent keys as nil
// pointers, so each source contributes only the fields it actually sets.
// Sources are folded earliest-to-latest (later sources override earlier
// non-nil fields); the combined partial is then applied field-by-field onto a
// defaults value of C, so resolution always yields a complete value even when
// the chain is empty or every source fails.
//
// Sources that cannot be read or decoded are reported through the resolver's
// logger and skipped; no error ever propagates out of chain resolution.
//
// The main entry points are [NewResolver] to declare a shape pair, then
// [Resolver.ReadChain] for explicit chains and [Resolver.ReadEnvironment]
// for the common "{dir}/{basename}.toml, {dir}/{basename}.{env}.toml"
// layering scheme.
package config
