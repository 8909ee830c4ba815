package registry

import "sync"

// Registry is the read-only chain metadata table. It is built once and then
// shared by arbitrarily many concurrent readers with no locking.
type Registry struct {
	chains   []ChainDescriptor
	byFamily map[EncodingFamily][]*ChainDescriptor
	fallback *ChainDescriptor
}

var (
	buildOnce sync.Once
	global    *Registry
)

// Get returns the process-wide registry, building it on first use.
func Get() *Registry {
	buildOnce.Do(func() {
		global = build(allChains())
	})
	return global
}

func build(chains []ChainDescriptor) *Registry {
	r := &Registry{
		chains:   chains,
		byFamily: make(map[EncodingFamily][]*ChainDescriptor),
	}
	for i := range r.chains {
		d := &r.chains[i]
		r.byFamily[d.Family] = append(r.byFamily[d.Family], d)
		// Base58Check chains with an HRP also answer Bech32 (SegWit)
		// queries for their HRP.
		if d.Family != FamilyBech32 && len(d.HRPs) > 0 {
			r.byFamily[FamilyBech32] = append(r.byFamily[FamilyBech32], d)
		}
		if d.SS58Fallback {
			r.fallback = d
		}
	}
	return r
}

// All returns every descriptor in declaration order.
func (r *Registry) All() []*ChainDescriptor {
	out := make([]*ChainDescriptor, len(r.chains))
	for i := range r.chains {
		out[i] = &r.chains[i]
	}
	return out
}

// ByFamily returns the descriptors participating in an encoding family, in
// declaration order.
func (r *Registry) ByFamily(f EncodingFamily) []*ChainDescriptor {
	return r.byFamily[f]
}

// SS58Fallback returns the descriptor that structurally valid SS58
// addresses with unregistered prefixes resolve to.
func (r *Registry) SS58Fallback() *ChainDescriptor {
	return r.fallback
}

// Lookup returns the descriptor for a chain ID.
func (r *Registry) Lookup(id ChainID) (*ChainDescriptor, bool) {
	for i := range r.chains {
		if r.chains[i].ID == id {
			return &r.chains[i], true
		}
	}
	return nil, false
}
