// Package discovery publishes the node's discovery name over mDNS.
//
// While the access point is up, the node answers for <host>.local with the
// access point address and advertises its configuration pages as an
// _http._tcp service, so clients can reach it by name instead of by address.
package discovery
