// Package server holds configuration for the webhook HTTP server.
package server
