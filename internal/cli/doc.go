// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates cobra flags, COMPONEER_* environment variables and an optional
// config file, merged through viper, into the application's configuration.
package cli
