// Package client talks to the blogauth account service.
//
// The Client interface is what the CLI depends on; GRPCClient implements it
// over the generated AccountService gRPC client. Transport
// failures (server down, deadline exceeded) are reported as ErrUnavailable.
// Service errors come back as gRPC statuses whose message is the one to
// show the user.
package client
