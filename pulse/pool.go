package pulse

import "log/slog"

// pool maps handles to the resources backing them. Handles start at one,
// zero is never a valid handle.
type pool[T any] struct {
	kind   string
	nextID uint32
	items  map[uint32]T
}

func newPool[T any](kind string) pool[T] {
	return pool[T]{kind: kind, items: map[uint32]T{}}
}

func (p *pool[T]) add(item T) uint32 {
	p.nextID += 1
	p.items[p.nextID] = item
	return p.nextID
}

func (p *pool[T]) get(id uint32) (T, bool) {
	item, ok := p.items[id]
	return item, ok
}

// remove takes the resource out of the pool. Removing a handle that is
// not in the pool logs a warning.
func (p *pool[T]) remove(id uint32) (T, bool) {
	item, ok := p.items[id]
	if !ok {
		slog.Warn("Destroy of unknown handle",
			slog.String("kind", p.kind),
			slog.Int("id", int(id)),
		)

		return item, false
	}

	delete(p.items, id)

	return item, true
}

// drain removes all resources from the pool and returns them.
func (p *pool[T]) drain() []T {
	items := make([]T, 0, len(p.items))
	for id, item := range p.items {
		items = append(items, item)
		delete(p.items, id)
	}

	return items
}
