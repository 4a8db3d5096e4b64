package catalog

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyProduct    = errors.New("product name is required")
)

// DefaultProducts is the product line offered on a fresh start.
var DefaultProducts = []string{
	"Бетон М100",
	"Бетон М150",
	"Бетон М200",
	"Бетон М250",
	"Бетон М300",
	"Бетон М350",
	"Бетон М400",
	"Цементный раствор",
	"Керамзитобетон",
	"Пескобетон",
	"Тротуарная плитка",
	"Бордюрный камень",
	"Железобетонные изделия",
	"Доставка бетона",
}

// Products is the process-wide, mutable product list. Safe for concurrent use.
type Products struct {
	mu    sync.RWMutex
	items []string
}

func NewProducts(initial []string) *Products {
	items := make([]string, 0, len(initial))
	for _, name := range initial {
		if name = strings.TrimSpace(name); name != "" {
			items = append(items, name)
		}
	}
	return &Products{items: items}
}

func (p *Products) List() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Products) Contains(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.indexOf(name) >= 0
}

// Add appends name and returns the resulting list.
func (p *Products) Add(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProduct
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.indexOf(name) >= 0 {
		return nil, ErrProductExists
	}
	p.items = append(p.items, name)
	return p.snapshot(), nil
}

// Rename replaces oldName in place, keeping its position.
func (p *Products) Rename(oldName, newName string) ([]string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrEmptyProduct
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(strings.TrimSpace(oldName))
	if idx < 0 {
		return nil, ErrProductNotFound
	}
	if other := p.indexOf(newName); other >= 0 && other != idx {
		return nil, ErrProductExists
	}
	p.items[idx] = newName
	return p.snapshot(), nil
}

func (p *Products) Remove(name string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(strings.TrimSpace(name))
	if idx < 0 {
		return nil, ErrProductNotFound
	}
	p.items = append(p.items[:idx], p.items[idx+1:]...)
	return p.snapshot(), nil
}

// callers hold mu
func (p *Products) indexOf(name string) int {
	for i, item := range p.items {
		if item == name {
			return i
		}
	}
	return -1
}

func (p *Products) snapshot() []string {
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}
