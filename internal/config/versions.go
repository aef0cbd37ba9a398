package config

// SupportedVersions is the allow-list of DC/OS releases the stable templates
// are known to deploy. Any other non-empty version pin is a fatal
// configuration error.
var SupportedVersions = []string{
	"1.8.8",
	"1.9.0",
	"1.10.0",
}

// IsSupportedVersion reports whether v is in the release allow-list.
func IsSupportedVersion(v string) bool {
	for _, s := range SupportedVersions {
		if v == s {
			return true
		}
	}
	return false
}
