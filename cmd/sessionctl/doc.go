// Command sessionctl runs the session cookie service and provides operator
// tooling around its key, tokens, and configuration.
//
//	# Generate a key
//	export AUTH_SECRET="$(sessionctl key generate)"
//
//	# Hash a password for the credentials file
//	sessionctl credentials hash --login alice s3cret >> credentials.yml
//
//	# Start the server
//	SESSION_CREDENTIALS_FILE=credentials.yml sessionctl server
//
// # Environment Variables
//
//   - AUTH_SECRET: base64-encoded 256-bit session key (required)
//   - SESSION_CONFIG_PATH: directory holding session.yml
//   - SESSION_*: configuration overrides, see sessionctl configuration show
//   - PORT: server port (default: 8080)
package main
