// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework used
// by the webhook receiver.
//
// # Context Awareness
//
// The WithRayID helper extracts the request RayID from a Fiber context and
// attaches it to the log entry, ensuring that all logs related to a specific
// webhook delivery can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//   - Path: optional log file teed with stdout
package logger
