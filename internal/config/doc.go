// Package config loads LazyFloat's TOML configuration.
//
// # Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path, when one is given
//  2. Otherwise ~/.config/lazyfloat/config.toml
//  3. A missing file yields Default()
//
// Fields that are absent or blank keep their defaults.
//
// # TOML Format
//
//	auth_url = "https://dog.ceo/api/breeds/image/random"
//	request_timeout = "10s"
//	on_login_error = "report" # or "exit"
//	log_file = "~/.local/state/lazyfloat/lazyfloat.log"
//	theme = "Nightfox"
//
// Setting log_file to an empty string disables logging. Tilde expansion is
// applied to the config path and to log_file.
//
// # Errors
//
// Load fails on unreadable files, invalid TOML, a non-positive or malformed
// request_timeout, and an unknown on_login_error value. A missing file is not
// an error.
package config
