// Package config provides configuration loading, merging, and validation
// facilities for the vault client and the reference vault server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] and [GetServerConfig], which
// build a role-specific, validated view on top of [GetStructuredConfig].
package config
