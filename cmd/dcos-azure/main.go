// Package main is the entry point for the dcos-azure CLI.
//
// dcos-azure is a command-line tool for provisioning DC/OS clusters on
// Azure. It validates deployment parameters, renders the api-model for
// the selected channel and deployment variant, generates ARM templates
// with dcos-engine and drives the deployment through the az CLI.
//
// Commands: init, validate, render, deploy, doctor.
//
// For detailed usage information, run:
//
//	dcos-azure --help
package main

import (
	"fmt"
	"os"

	"github.com/mesosphere-incubator/dcos-azure/cmd/dcos-azure/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
