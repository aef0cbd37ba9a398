package azure

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
// The deploy pipeline injects a fake implementation in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the host, blocking until completion.
type ExecRunner struct {
	// Verbose echoes each command line before running it.
	Verbose bool
}

// Run executes name with args and returns combined stdout/stderr. A
// non-zero exit wraps the output into the error so the caller's log shows
// what the tool printed.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.Verbose {
		log.Printf("exec: %s %s", name, strings.Join(redactArgs(args), " "))
	}

	// #nosec G204 - name and args are assembled from validated configuration
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s failed: %w\noutput: %s", name, err, strings.TrimSpace(string(output)))
	}
	return output, nil
}

// secretFlags are argument flags whose values never appear in logs.
var secretFlags = map[string]bool{
	"--password":      true,
	"--client-secret": true,
}

func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	copy(redacted, args)
	for i := 0; i < len(redacted)-1; i++ {
		if secretFlags[redacted[i]] {
			redacted[i+1] = "***"
		}
	}
	return redacted
}
