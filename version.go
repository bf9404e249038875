// Package phoenix holds shared metadata for the phoenix CLI.
package phoenix

// Version is the current phoenix release.
const Version = "0.1.0"
