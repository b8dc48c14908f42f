// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key protecting the artifact
// endpoints and the request body limit. It is embedded by core/config and read
// by the start command.
package server
