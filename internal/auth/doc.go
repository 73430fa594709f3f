// Package auth implements authentication and authorization: password
// verification, bearer token issuing and parsing, current-user resolution
// and the role checks used by the editorial API.
package auth
