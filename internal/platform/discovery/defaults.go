// Package discovery centralizes internal service-discovery conventions.
package discovery

import (
	"strconv"
	"strings"
)

// ServiceCompat is the compat gRPC service identity.
const ServiceCompat = "compat"

// grpcPorts maps gRPC service identities to their conventional ports. The
// topology catalog under topology/services.json mirrors this table.
var grpcPorts = map[string]int{
	ServiceCompat: 8082,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a
// service, or "" for a service without a gRPC convention.
func DefaultGRPCAddr(service string) string {
	service = strings.TrimSpace(service)
	port, ok := grpcPorts[service]
	if !ok || port <= 0 {
		return ""
	}
	return service + ":" + strconv.Itoa(port)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}
