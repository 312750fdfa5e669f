// Package config loads exhibit's startup configuration.
//
// # Overview
//
// Configuration is layered with koanf, lowest precedence first:
//
//  1. Built-in defaults (Default)
//  2. The config file, if it exists
//  3. EXHIBIT_* environment variables
//
// The API credential is read last and only from API_KEY. An api_key entry in
// the file or an EXHIBIT_API_KEY variable is discarded.
//
// # Config File
//
// The default location is ~/.config/exhibit/config.toml. Files ending in
// .yaml or .yml are parsed as YAML; everything else as TOML (go-toml). A
// missing file is not an error; exhibit runs on defaults.
//
//	model = "gemini-3-flash-preview"
//	base_url = ""
//	export_dir = "~/Pictures/exhibit"
//	font_path = ""
//	log_file = "~/.local/state/exhibit/exhibit.log"
//	log_level = "info"
//	metrics_file = ""
//	prefs_file = "~/.config/exhibit/prefs.toml"
//
// Blank values fall back to the defaults. Paths get tilde expansion and are
// made absolute.
//
// # Environment
//
// Each key can be overridden with its upper-cased name and the EXHIBIT_
// prefix, for example EXHIBIT_LOG_LEVEL=debug or
// EXHIBIT_EXPORT_DIR=/tmp/placards.
//
// # Error Handling
//
// Read and parse failures wrap ErrLoadConfig. Values that parse but make no
// sense (unknown log level, base_url without a scheme) wrap
// ErrInvalidConfig. Callers test with errors.Is.
package config
