// Package discovery implements mDNS/DNS-SD discovery of the seat service.
//
// Seat service providers advertise _sdv-seats._tcp in the local domain. The
// instance name is free-form (typically the host or application name) and the
// TXT records describe the service:
//
//   - api: protobuf package of the served API, e.g. sdv.edge.comfort.seats.v1
//   - vss: VSS release of the vehicle tree behind the service (optional)
//   - app: middleware application ID of the provider (optional)
//
// Browsers aggregate the addresses an instance announces on several
// interfaces into one Service.
package discovery
