package sched

import (
	"fmt"

	"github.com/emirpasic/gods/maps/hashbidimap"
)

// Registry keys of the six policies.
const (
	KeyFCFS   = "FCFS"
	KeyLPFNP  = "LPF-NP"
	KeyLPFP   = "LPF-P"
	KeySRTFNP = "SRTF-NP"
	KeySRTFP  = "SRTF-P"
	KeyRR     = "RR"
)

// Registry maps short keys to policies and policies back to their keys.
type Registry struct {
	keys     *hashbidimap.Map // key <-> Kind
	order    []string
	policies map[Kind]Policy
}

var defaultRegistry = newRegistry(
	FCFS(),
	LPFNonPreemptive(),
	LPFPreemptive(),
	SRTFNonPreemptive(),
	SRTFPreemptive(),
	RoundRobin(),
)

func newRegistry(policies ...Policy) *Registry {
	r := &Registry{
		keys:     hashbidimap.New(),
		policies: make(map[Kind]Policy, len(policies)),
	}
	for _, p := range policies {
		key := keyFor(p.Kind())
		r.keys.Put(key, p.Kind())
		r.order = append(r.order, key)
		r.policies[p.Kind()] = p
	}
	return r
}

func keyFor(k Kind) string {
	switch k {
	case KindFCFS:
		return KeyFCFS
	case KindLPFNonPreemptive:
		return KeyLPFNP
	case KindLPFPreemptive:
		return KeyLPFP
	case KindSRTFNonPreemptive:
		return KeySRTFNP
	case KindSRTFPreemptive:
		return KeySRTFP
	case KindRoundRobin:
		return KeyRR
	default:
		panic(fmt.Sprintf("sched: no registry key for policy kind %d", k))
	}
}

// DefaultRegistry returns the registry holding all six policies.
func DefaultRegistry() *Registry { return defaultRegistry }

// Lookup resolves a policy by its key.
func (r *Registry) Lookup(key string) (Policy, error) {
	v, ok := r.keys.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicyKey, key)
	}
	return r.policies[v.(Kind)], nil
}

// KeyOf returns the key p is registered under, or false if it is not.
func (r *Registry) KeyOf(p Policy) (string, bool) {
	if p == nil {
		return "", false
	}
	k, ok := r.keys.GetKey(p.Kind())
	if !ok {
		return "", false
	}
	return k.(string), true
}

// Keys lists the registered keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup resolves a key against the default registry.
func Lookup(key string) (Policy, error) { return defaultRegistry.Lookup(key) }

// KeyOf resolves a policy against the default registry.
func KeyOf(p Policy) (string, bool) { return defaultRegistry.KeyOf(p) }

// Keys lists the keys of the default registry.
func Keys() []string { return defaultRegistry.Keys() }
