// Package cmd implements the sparrow command line interface: the serve
// command that runs the server, the kv command group that talks to a
// running server and the version command.
//
// Configuration is layered: command line flags override environment
// variables (prefix SPARROW_), which override .env / .env.local files.
package cmd
