// Package config loads runtime configuration for the LifeLog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Command-line flags, declared as cobra persistent flags by package cli
//     with the values from 1 and 2 as their defaults.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "local_db_path": "lifelog.db",
//	  "log_file": "lifelog.log",
//	  "request_timeout": "10s"
//	}
package config
