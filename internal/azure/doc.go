// Package azure drives the az command-line client.
//
// All provider interaction goes through the external az binary, which the
// pipeline treats as an opaque collaborator: every operation here is a thin
// argument builder over a Runner, and failures propagate untranslated.
package azure
