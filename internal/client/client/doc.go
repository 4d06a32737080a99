// Package client contains the CLI's transport to the gadgetkeeper server.
//
// # Overview
//
// The package provides:
//  1. An API contract (see the Client interface) covering sign-up, sign-in,
//     sign-out and the admin gadget operations.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that attaches the
//     bearer token, unwraps the server's response envelope and maps status
//     codes to sentinel errors.
//  3. Bootstrap of the local SQLite session store (InitDatabase,
//     RunMigrations) using embedded goose migrations.
//
// # Error Handling
//
// Non-2xx answers are returned as *APIError, which matches ErrBadRequest,
// ErrUnauthorized, ErrForbidden, ErrNotFound or ErrConflict with errors.Is.
// Network failures and timeouts match ErrUnavailable.
package client
