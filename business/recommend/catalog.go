package recommend

import (
	"context"
	"fmt"
	"strings"

	"tripLogger/domain"
)

// DestinationSource is the storage the catalog snapshot is loaded from.
type DestinationSource interface {
	FindAll(ctx context.Context) ([]domain.Destination, error)
}

// StaticCatalog is an immutable destination snapshot. It is built once and
// shared by concurrent requests without locking.
type StaticCatalog struct {
	destinations []domain.Destination
	byKey        map[string]int
}

func NewStaticCatalog(destinations []domain.Destination) *StaticCatalog {
	c := &StaticCatalog{
		destinations: make([]domain.Destination, len(destinations)),
		byKey:        make(map[string]int, len(destinations)),
	}
	copy(c.destinations, destinations)

	for i, d := range c.destinations {
		key := nameKey(d.Name)
		if _, dup := c.byKey[key]; !dup {
			c.byKey[key] = i
		}
	}

	return c
}

// LoadCatalog reads every destination from src into a snapshot.
func LoadCatalog(ctx context.Context, src DestinationSource) (*StaticCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	destinations, err := src.FindAll(ctx)
	if err != nil {
		return nil, asRepositoryError("load destination catalog", err)
	}

	return NewStaticCatalog(destinations), nil
}

// ListAll returns a copy of the snapshot in catalog order.
func (c *StaticCatalog) ListAll(ctx context.Context) ([]domain.Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out, nil
}

// Lookup finds a destination by name ignoring case and surrounding or
// repeated whitespace.
func (c *StaticCatalog) Lookup(name string) (domain.Destination, bool) {
	i, ok := c.byKey[nameKey(name)]
	if !ok {
		return domain.Destination{}, false
	}
	return c.destinations[i], true
}

func (c *StaticCatalog) Len() int {
	return len(c.destinations)
}

// NormalizeName trims a destination name and collapses inner whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func nameKey(name string) string {
	return strings.ToLower(NormalizeName(name))
}
