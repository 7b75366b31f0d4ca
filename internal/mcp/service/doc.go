// Package service wires the MCP protocol transports to the lottery tools.
//
// It knows how to run MCP over stdio or streamable HTTP. Tool semantics live
// in the sibling domain package; the lottery itself is either in-process or a
// remote gRPC server.
package service
