package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"
)

// Browser finds seat services on the local network.
type Browser interface {
	// Browse emits every seat service instance once, as it is first seen.
	// The channel is closed when ctx is done or Stop is called.
	Browse(ctx context.Context) (<-chan *Service, error)

	// Stop stops all active browsing operations.
	Stop()
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// API restricts results to services announcing this API. Empty accepts
	// any API.
	API string
}

// MDNSBrowser implements Browser using zeroconf.
type MDNSBrowser struct {
	config BrowserConfig

	mu      sync.Mutex
	cancels []context.CancelFunc
}

// NewMDNSBrowser creates a new mDNS browser.
func NewMDNSBrowser(config BrowserConfig) *MDNSBrowser {
	return &MDNSBrowser{config: config}
}

// Browse searches for seat services. Addresses announced on several
// interfaces are merged into one Service; instances that lose all
// addresses are forgotten and emitted again when they reappear.
func (b *MDNSBrowser) Browse(ctx context.Context) (<-chan *Service, error) {
	ctx, cancel := context.WithCancel(ctx)
	b.mu.Lock()
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	out := make(chan *Service)

	go func() {
		defer close(out)
		agg := newAggregator(b.config.API)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				svc := agg.add(fromZeroconf(entry))
				if svc == nil {
					continue
				}
				select {
				case out <- svc:
				case <-ctx.Done():
					return
				}
			case entry, ok := <-removed:
				if !ok {
					removed = nil
					continue
				}
				agg.remove(fromZeroconf(entry))
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		_ = zeroconf.Browse(ctx, ServiceType, Domain, entries, removed, b.options()...)
	}()

	return out, nil
}

// Stop cancels every running Browse.
func (b *MDNSBrowser) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
}

func (b *MDNSBrowser) options() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if ifaces := interfaces(b.config.Interface); ifaces != nil {
		opts = append(opts, zeroconf.SelectIfaces(ifaces))
	}
	return opts
}

// FindSeatService returns the first seat service seen within timeout. A
// timeout of zero uses BrowseTimeout.
func FindSeatService(ctx context.Context, b Browser, timeout time.Duration) (*Service, error) {
	if timeout <= 0 {
		timeout = BrowseTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}
	select {
	case svc, ok := <-results:
		if !ok {
			return nil, ErrNotFound
		}
		return svc, nil
	case <-ctx.Done():
		return nil, ErrNotFound
	}
}

// entry is the part of a zeroconf.ServiceEntry the browser uses.
type entry struct {
	Instance  string
	Host      string
	Port      int
	Text      []string
	Addresses []string
}

func fromZeroconf(e *zeroconf.ServiceEntry) entry {
	addrs := make([]string, 0, len(e.AddrIPv4)+len(e.AddrIPv6))
	for _, ip := range e.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range e.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return entry{
		Instance:  e.Instance,
		Host:      e.HostName,
		Port:      e.Port,
		Text:      e.Text,
		Addresses: addrs,
	}
}

// aggregator tracks instances by name while browsing.
type aggregator struct {
	api      string
	services map[string]*Service
}

func newAggregator(api string) *aggregator {
	return &aggregator{api: api, services: make(map[string]*Service)}
}

// add records e and returns a copy of the service if it is new.
func (a *aggregator) add(e entry) *Service {
	svc := entryToService(e)
	if svc == nil || (a.api != "" && svc.API != a.api) {
		return nil
	}
	if existing, found := a.services[svc.InstanceName]; found {
		existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
		return nil
	}
	a.services[svc.InstanceName] = svc
	emitted := *svc
	emitted.Addresses = append([]string(nil), svc.Addresses...)
	return &emitted
}

func (a *aggregator) remove(e entry) {
	existing, found := a.services[e.Instance]
	if !found {
		return
	}
	existing.Addresses = removeAddresses(existing.Addresses, e.Addresses)
	if len(existing.Addresses) == 0 {
		delete(a.services, e.Instance)
	}
}

// entryToService converts an entry; entries with invalid TXT records
// yield nil.
func entryToService(e entry) *Service {
	info, err := DecodeServiceTXT(StringsToTXTRecords(e.Text))
	if err != nil {
		return nil
	}
	return &Service{
		InstanceName: e.Instance,
		Host:         e.Host,
		Port:         uint16(e.Port),
		Addresses:    e.Addresses,
		API:          info.API,
		VSSVersion:   info.VSSVersion,
		AppID:        info.AppID,
	}
}

// mergeAddresses adds new addresses to existing, avoiding duplicates.
func mergeAddresses(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range added {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses drops the addresses in gone from addresses.
func removeAddresses(addresses, gone []string) []string {
	drop := make(map[string]bool, len(gone))
	for _, addr := range gone {
		drop[addr] = true
	}
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !drop[addr] {
			result = append(result, addr)
		}
	}
	return result
}

var _ Browser = (*MDNSBrowser)(nil)
