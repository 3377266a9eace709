package corpus

import "sync/atomic"

// Provider owns the process-wide corpora. Both slots always hold a valid
// (possibly empty) Corpus behind an atomic pointer, so the read path needs no
// locking and reloads never expose a partially-built set.
type Provider struct {
	curated atomic.Pointer[Corpus]
	generic atomic.Pointer[Corpus]
}

// NewProvider returns a Provider with both corpora empty.
func NewProvider() *Provider {
	p := &Provider{}
	p.curated.Store(Empty())
	p.generic.Store(Empty())
	return p
}

// SetCurated atomically swaps in a new curated corpus.
func (p *Provider) SetCurated(c *Corpus) {
	if c == nil {
		c = Empty()
	}
	p.curated.Store(c)
}

// SetGeneric atomically swaps in a new generic corpus.
func (p *Provider) SetGeneric(c *Corpus) {
	if c == nil {
		c = Empty()
	}
	p.generic.Store(c)
}

// Curated returns the current curated corpus.
func (p *Provider) Curated() *Corpus {
	return p.curated.Load()
}

// Generic returns the current generic corpus.
func (p *Provider) Generic() *Corpus {
	return p.generic.Load()
}

// Select returns the curated corpus when requested and non-empty, otherwise
// the generic corpus, which may itself be empty if acquisition failed.
func (p *Provider) Select(useCurated bool) *Corpus {
	if useCurated {
		if cur := p.curated.Load(); !cur.IsEmpty() {
			return cur
		}
	}
	return p.generic.Load()
}
