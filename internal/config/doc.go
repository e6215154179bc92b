// Package config defines the HashSnap configuration structure.
//
// The Spec struct mirrors the YAML configuration file and is populated by
// the confloader package with the usual priority: environment variables
// over file values over defaults.
//
// @design DS-0501
package config
