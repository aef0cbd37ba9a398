package config

import (
	"fmt"
	"strings"
)

// MissingParameterError reports the first required parameter found absent.
// Validation stops at the first miss rather than collecting a batch report.
type MissingParameterError struct {
	// Name is the environment variable name of the missing parameter.
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %s is not set", e.Name)
}

// UnsupportedVersionError reports a version pin outside the allow-list.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported DC/OS version %q: must be one of %s",
		e.Version, strings.Join(SupportedVersions, ", "))
}
