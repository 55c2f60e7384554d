// Package logger provides structured logging on top of zerolog.
package logger
