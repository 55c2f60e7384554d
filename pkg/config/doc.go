// Package config loads session cookie settings.
//
// Values are resolved in order: built-in defaults, the YAML file at
// $SESSION_CONFIG_PATH/session.yml, then SESSION_* environment variables.
// Each attribute remembers which of those it came from.
//
// # Configuration Sources
//
//   - SESSION_CONFIG_PATH: directory holding session.yml
//   - SESSION_COOKIE_NAME, SESSION_SESSION_TTL, ...: per-attribute overrides
//   - AUTH_SECRET: the encryption key, read by package key, never by config
package config
