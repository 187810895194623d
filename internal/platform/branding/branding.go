// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the product name shown in CLI output and MCP server metadata.
const AppName = "SDKGate"
