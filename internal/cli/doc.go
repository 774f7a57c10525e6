// Package cli provides command-line interface setup and configuration
// for the textprep application. It handles argument parsing, command
// creation, runtime settings and logger setup using cobra, viper and slog.
package cli
