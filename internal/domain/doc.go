// Package domain contains the core models for solid: one small model per
// object-design principle (journal, product specifications, shapes, devices
// and family relations).
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// SQL drivers, or the filesystem. Infra/adapters map into/from these types.
package domain
