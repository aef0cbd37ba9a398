// Package template selects and renders the DC/OS api-model document that
// the external template generator consumes.
//
// Templates are keyed by version channel and deployment type
// (stable|testing / simple|hybrid) and rendered exactly once per run by
// substituting configuration values into their placeholder tokens.
// Substitution is deterministic: the same configuration always produces
// byte-identical output.
package template
