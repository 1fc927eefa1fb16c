package focus

// Registry is the ordered, duplicate-free set of elements gathered at
// initialization. Iteration follows registration order.
type Registry struct {
	elems []Element
	index map[string]int
}

// NewRegistry builds a registry, dropping nil elements and any element whose
// ID was already seen.
func NewRegistry(elems ...Element) *Registry {
	r := &Registry{index: make(map[string]int, len(elems))}
	for _, el := range elems {
		if el == nil {
			continue
		}
		if _, dup := r.index[el.ID()]; dup {
			continue
		}
		r.index[el.ID()] = len(r.elems)
		r.elems = append(r.elems, el)
	}
	return r
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.elems)
}

// At returns the i-th registered element.
func (r *Registry) At(i int) Element {
	return r.elems[i]
}

// First returns the first registered element, if any.
func (r *Registry) First() (Element, bool) {
	if r.Len() == 0 {
		return nil, false
	}
	return r.elems[0], true
}

// All returns a copy of the registered elements.
func (r *Registry) All() []Element {
	if r == nil {
		return nil
	}
	return append([]Element(nil), r.elems...)
}

// Contains reports whether an element with the same ID is registered.
func (r *Registry) Contains(el Element) bool {
	if r == nil || el == nil {
		return false
	}
	_, ok := r.index[el.ID()]
	return ok
}
