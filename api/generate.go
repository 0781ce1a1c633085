// Package api holds the protobuf schema of the flow service.
//
// To regenerate the bindings in api/gen:
//
//	go generate ./api
package api

//go:generate protoc --proto_path=proto --go_out=gen --go_opt=paths=source_relative --go-grpc_out=gen --go-grpc_opt=paths=source_relative peers.proto flow.proto route.proto
