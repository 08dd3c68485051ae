// Package client talks to the Drop Logistics tracking server.
//
// # Overview
//
// Client is the transport-agnostic contract used by the tracking service
// of the CLI: Ping, Track, ListShipments and Close. GRPCClient implements
// it over gRPC with the JSON codec from package api, attaching the session
// token as "access_token" metadata where a call needs one.
//
// # Error Handling
//
// gRPC status codes are mapped to sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrUnauthorized and ErrNotFound.
package client
