// Package config loads runtime configuration for the useradmin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "api_base_url": "",
//	  "host": "admin.example.com",
//	  "path_prefix": "/api",
//	  "session_db": "session.db",
//	  "log_level": "warn",
//	  "request_timeout": "30s"
//	}
//
// The backend base URL is derived by (*Config).ResolveBaseURL.
package config
