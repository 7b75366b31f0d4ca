// Package domain defines the MCP tools for the lottery: their schemas and the
// handlers that translate tool calls into lottery service requests.
package domain
