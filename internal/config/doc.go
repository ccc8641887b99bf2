// Package config implements the configuration core of the ax CLI: the
// typed profile schema, environment variable expansion, routing strategy
// resolution, validation, and the Manager that orchestrates profile
// load/save/list/switch/delete against a profile store.
package config
