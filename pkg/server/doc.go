// Package server assembles the HTTP server: a gorilla/mux router behind
// access logging and panic recovery, with the session middleware and the
// collaborators endpoints need.
//
// Endpoints are registered separately by package endpoints.
package server
