// Package domain contains the core model for slidey.
//
// The domain is format- and library-agnostic: it does not depend on YAML parsing,
// the presentation library, or the filesystem. Infra/adapters map into/from these types.
package domain
