package shipper

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry manages registered shipping carriers.
type Registry struct {
	shippers map[string]Shipper
	mu       sync.RWMutex
}

// NewRegistry creates a new shipper registry.
func NewRegistry() *Registry {
	return &Registry{
		shippers: make(map[string]Shipper),
	}
}

// Register adds a shipper to the registry.
func (r *Registry) Register(s Shipper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shippers[s.Name()] = s
}

// Get returns a shipper by name.
func (r *Registry) Get(name string) (Shipper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.shippers[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCarrierNotFound, name)
}

// Names returns the sorted names of all registered shippers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.shippers))
	for name := range r.shippers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered shippers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shippers)
}

// QuoteServices quotes every service code of one shipment with the named
// carrier in parallel. Each code gets its own independent quotation, so a
// failure for one code never affects the others.
func (r *Registry) QuoteServices(ctx context.Context, carrier string, req *QuoteRequest, codes []string) (map[string]*QuoteResult, error) {
	s, err := r.Get(carrier)
	if err != nil {
		return nil, err
	}

	results := make(map[string]*QuoteResult, len(codes))
	mu := &sync.Mutex{}

	g, ctx := errgroup.WithContext(ctx)

	for _, code := range codes {
		code := code
		g.Go(func() error {
			perCode := *req
			perCode.ServiceCode = code
			res := s.GetQuote(ctx, &perCode)

			mu.Lock()
			defer mu.Unlock()
			results[code] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
