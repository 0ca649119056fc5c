// Package builder fills posets with well-known shapes: chains, antichains,
// grids (product orders), Boolean lattices, divisor lattices and seeded
// random orders. The shapes serve as fixtures for tests, benchmarks and the
// posetctl script commands.
//
// Components:
//
//   - Constructor: a closure that inserts elements and relations into one
//     poset of a registry.Registry.
//   - Build / Apply: run constructors against a new or an existing poset.
//   - BuilderOption: functional options resolved into an immutable
//     builderConfig (element naming, RNG).
//   - IDFn schemes: DefaultIDFn ("0","1",...), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A",...,"Z","AA",...).
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order produce equal
//     posets.
//   - Constructors validate their parameters and return sentinel errors;
//     option constructors panic on meaningless input.
//   - Only cover pairs are added where the shape has an obvious Hasse
//     diagram; relations already implied are skipped silently.
package builder
