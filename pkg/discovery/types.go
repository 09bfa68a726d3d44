package discovery

import (
	"errors"
	"net"
	"strconv"
	"time"
)

const (
	// ServiceType is the DNS-SD service type of the seat service.
	ServiceType = "_sdv-seats._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// DefaultPort is announced when a ServiceInfo has no port.
	DefaultPort = 50051

	// DefaultAPI is the API announced when a ServiceInfo names none.
	DefaultAPI = "sdv.edge.comfort.seats.v1"

	// BrowseTimeout is the default timeout of FindSeatService.
	BrowseTimeout = 10 * time.Second

	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63
)

// TXT record keys.
const (
	TXTKeyAPI = "api"
	TXTKeyVSS = "vss"
	TXTKeyApp = "app"
)

// Errors.
var (
	ErrNotFound            = errors.New("seat service not found")
	ErrMissingRequired     = errors.New("missing required TXT record")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record")
	ErrInvalidInstanceName = errors.New("invalid instance name")
	ErrAdvertiserStopped   = errors.New("advertiser stopped")
)

// ServiceInfo is what a provider announces.
type ServiceInfo struct {
	InstanceName string
	Port         uint16
	API          string
	VSSVersion   string
	AppID        string
}

// Service is a discovered seat service instance.
type Service struct {
	InstanceName string
	Host         string
	Port         uint16
	Addresses    []string

	API        string
	VSSVersion string
	AppID      string
}

// Address returns host:port for the first known address, falling back to
// the announced host name.
func (s *Service) Address() string {
	host := s.Host
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return net.JoinHostPort(host, strconv.Itoa(int(s.Port)))
}

// URL returns the cleartext base URL of the service.
func (s *Service) URL() string {
	return "http://" + s.Address()
}
