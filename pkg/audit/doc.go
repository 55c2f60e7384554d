// Package audit writes RFC5424 audit records for session events.
//
// # Event Types
//
//   - SessionIssuedEvent: a login produced a session
//   - LoginFailedEvent: a login was refused
//   - SessionRejectedEvent: a request's session check failed
//   - SessionEndedEvent: a logout
//
// # Usage
//
//	auditor := audit.NewLogger(os.Stdout, "cookie-session")
//	auditor.Log(audit.SessionEndedEvent{Subject: "alice", ClientIP: ip})
package audit
