// Package config loads the chat client configuration.
//
// Configuration is assembled from the following sources, later sources
// overriding earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path from CHAT_CONFIG or --config)
//  3. Environment variables prefixed with CHAT_
//  4. Command-line flags
//
// The entry point is [Load].
package config
