// Package config provides configuration loading, merging, and validation
// facilities for the braille client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (loaded into the process environment, never overriding
//     variables that are already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied to whatever is still unset, then the result is
// validated. The main entry points are [GetStructuredConfig] and
// [GetClientConfig].
package config
