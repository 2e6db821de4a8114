// Package server runs the reconciliation HTTP API.
//
// It owns the listener lifecycle: the server starts serving when RunServer
// is called and drains in-flight requests once the passed context is
// cancelled.
package server
