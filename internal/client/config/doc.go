// Package config loads runtime configuration for the gadgetkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the HTTP API
//	-i int      request timeout (seconds)
//	-f string   local session database file
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "session_db_path": "gadgetkeeper.db"
//	}
package config
