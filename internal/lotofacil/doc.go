// Package lotofacil serves as an umbrella for the Lotofácil ticket generator,
// including the constrained sampling engine and its transport adapters.
//
// The package is organized into three subpackages:
//   - domain: Implements the classifiers, the sampler, the acceptance policy
//     and the batch generator.
//   - service: Implements the gRPC API layer over the domain.
//   - i18n: Renders localized batch reports for command-line output.
package lotofacil
