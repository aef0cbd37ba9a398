// Package config defines the deployment configuration model for dcos-azure.
//
// Configuration is assembled once at startup from environment variables and
// an optional YAML file, validated fail-fast, and then passed as an immutable
// value to every pipeline stage. Parameters fall into three groups:
// required-always, required-for-hybrid, and optional-with-default.
package config
