// SPDX-License-Identifier: MIT

// Package models is the read-only registry of named example models used to
// build test problems: name → (arity, callable, textual form).
//
// The registry is populated at package initialization and never mutated, so
// concurrent readers need no coordination. Lookups return values; callers
// cannot modify the table.
package models

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lovogen/synth"
)

// ErrUnknownModel indicates a lookup for a name that is not registered.
var ErrUnknownModel = errors.New("models: unknown model")

// Model is a registry entry.
type Model struct {
	// Name is the canonical registry key.
	Name string
	// Arity is the length of θ.
	Arity int
	// Func evaluates the model.
	Func synth.Model
	// Expr is the textual form written to solution files. It is opaque to
	// this module and never parsed back.
	Expr string
}

// Canonical model names.
const (
	Linear      = "linear"
	Cubic       = "cubic"
	Exponential = "exponential"
	Logistic    = "logistic"
	Circle      = "circle"
)

var registry = map[string]Model{
	Linear: {
		Name:  Linear,
		Arity: 2,
		Func:  linear,
		Expr:  "(x, θ) -> θ[1] * x[1] + θ[2]",
	},
	Cubic: {
		Name:  Cubic,
		Arity: 4,
		Func:  cubic,
		Expr:  "(x, θ) -> θ[1] * x[1]^3 + θ[2] * x[1]^2 + θ[3] * x[1] + θ[4]",
	},
	Exponential: {
		Name:  Exponential,
		Arity: 3,
		Func:  exponential,
		Expr:  "(x, θ) -> θ[1] + θ[2] * exp(- θ[3] * x[1])",
	},
	Logistic: {
		Name:  Logistic,
		Arity: 4,
		Func:  logistic,
		Expr:  "(x, θ) -> θ[1] + θ[2] / (1.0 + exp(- θ[3] * x[1] + θ[4]))",
	},
	Circle: {
		Name:  Circle,
		Arity: 3,
		Func:  circle,
		Expr:  "(x, θ) -> (x[1] - θ[1])^2 + (x[2] - θ[2])^2 - θ[3]^2",
	},
}

// aliases maps alternative spellings to canonical names.
var aliases = map[string]string{
	"expon": Exponential,
}

// Lookup returns the model registered under name (or one of its aliases).
func Lookup(name string) (Model, error) {
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	m, ok := registry[name]
	if !ok {
		return Model{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownModel)
	}

	return m, nil
}

// Names returns the canonical model names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// All returns every registered model, ordered by name.
func All() []Model {
	names := Names()
	out := make([]Model, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}

	return out
}

func linear(x, θ []float64) float64 {
	return θ[0]*x[0] + θ[1]
}

func cubic(x, θ []float64) float64 {
	t := x[0]
	return θ[0]*t*t*t + θ[1]*t*t + θ[2]*t + θ[3]
}

func exponential(x, θ []float64) float64 {
	return θ[0] + θ[1]*math.Exp(-θ[2]*x[0])
}

func logistic(x, θ []float64) float64 {
	return θ[0] + θ[1]/(1.0+math.Exp(-θ[2]*x[0]+θ[3]))
}

// circle is the implicit circle equation. The 1-D generators hand it a
// single coordinate; the missing second coordinate reads as 0.
func circle(x, θ []float64) float64 {
	var y float64
	if len(x) > 1 {
		y = x[1]
	}
	dx, dy := x[0]-θ[0], y-θ[1]

	return dx*dx + dy*dy - θ[2]*θ[2]
}
