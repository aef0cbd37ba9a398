// Package retry provides exponential backoff retry logic for transient
// failures. It is used for the package-list mirror lookup; deployment steps
// deliberately do not retry.
package retry
