package normalisers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches raw documents to the highest priority normaliser
// that supports their MIME type.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser. Equal priorities keep registration order.
func (r *Registry) Register(normaliser driven.Normaliser) {
	if normaliser == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.normalisers = append(r.normalisers, normaliser)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise converts raw with the best matching normaliser.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.lookup(raw.MIMEType)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}
	return n.Normalise(ctx, raw)
}

// SupportedMIMETypes returns the sorted, de-duplicated MIME types.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

func (r *Registry) lookup(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if t == mimeType {
				return n
			}
		}
	}
	return nil
}
