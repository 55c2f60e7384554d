// Package key loads the 256-bit symmetric key that seals session cookies.
//
// The key arrives as a standard base64 string, normally from the AUTH_SECRET
// environment variable:
//
//	k, err := key.FromEnv(key.DefaultEnv)
//	if err != nil {
//	    log.Fatal(err) // *key.ConfigError
//	}
//
// A missing, non-base64, or wrong-length value is a *ConfigError. Servers
// should load the key before accepting traffic and exit on failure.
package key
