// Package proto holds the generated AccountService messages and gRPC stubs.
// Sources live in api/blogauth/v1.
package proto

//go:generate sh -c "cd ../.. && go run github.com/bufbuild/buf/cmd/buf@v1.57.0 generate"
