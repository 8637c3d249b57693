// Package auth binds the auth.* family of Web API methods.
//
// Test is the conventional first call of a session: it verifies the token
// and reports the workspace and user it authenticates as. Revoke invalidates
// the token, with an optional dry-run mode.
//
// Both methods follow the binding pattern described in the conversations
// package: ordered parameters with the token first, sync and async variants
// sharing one failure classification, and the api package's error taxonomy.
package auth
