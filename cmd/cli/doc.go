// Package cli assembles the specsync command-line application, wiring
// configuration loading, structured logging, and the update command.
package cli
