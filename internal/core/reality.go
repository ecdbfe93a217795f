package core

import (
	"fmt"
)

// identity is the declaration identity: the resource kind tag plus the
// canonical form of its key. Kind disambiguates equal keys of different
// kinds.
type identity struct {
	kind string
	key  string
}

// maxEnsureDepth bounds implicit-prerequisite expansion. A resource kind
// whose ImplicitEnsure chain recurses deeper than this is considered cyclic
// and the declaration fails closed instead of recursing without end.
const maxEnsureDepth = 64

// Reality is the meta-resource: an insertion-ordered, deduplicated collection
// of declared resources. It implements Resource itself, delegating Verify and
// Realize to its members in declaration order.
type Reality struct {
	log   Logger
	order []Resource
	index map[identity]int
	depth int
}

// NewReality constructs an empty reality that reports diagnostics to the
// given logger.
func NewReality(log Logger) *Reality {
	return &Reality{
		log:   log,
		index: make(map[identity]int),
	}
}

// Ensure registers a resource to be realized, after first ensuring its
// implicit prerequisites. Re-declaring an identity with an equal value is a
// no-op; re-declaring with a different value keeps the first declaration and
// emits a warning, never an error.
func (r *Reality) Ensure(res Resource) error {
	if r.depth >= maxEnsureDepth {
		return fmt.Errorf("implicit prerequisites of %s (key %s) exceed %d levels; cyclic prerequisite chain?",
			res.Describe(), res.Key(), maxEnsureDepth)
	}

	if imp, ok := res.(ImplicitResource); ok {
		r.depth++
		err := imp.ImplicitEnsure(r)
		r.depth--
		if err != nil {
			return err
		}
	}

	id := identity{kind: res.Kind(), key: res.Key().canonical()}
	if i, ok := r.index[id]; ok {
		existing := r.order[i]
		if !existing.Equal(res) {
			r.log.Warn("duplicate resource definitions; will use the older one",
				"key", res.Key().String(),
				"old", existing.Describe(),
				"new", res.Describe())
		}
		return nil
	}

	r.index[id] = len(r.order)
	r.order = append(r.order, res)
	return nil
}

// Resources returns the members in declaration order.
func (r *Reality) Resources() []Resource {
	out := make([]Resource, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered members.
func (r *Reality) Len() int {
	return len(r.order)
}

func (r *Reality) Kind() string {
	return "reality"
}

func (r *Reality) Key() Key {
	keys := make([]Key, len(r.order))
	for i, res := range r.order {
		keys[i] = res.Key()
	}
	return SeqKey(keys...)
}

// Verify checks members in declaration order and short-circuits on the first
// member that is not yet realized.
func (r *Reality) Verify(ctx *SystemContext) (bool, error) {
	for _, res := range r.order {
		ok, err := res.Verify(ctx)
		if err != nil {
			return false, fmt.Errorf("could not verify %s: %w", res.Describe(), err)
		}
		if !ok {
			ctx.Logger.Debug("not yet realized", "resource", res.Describe())
			return false, nil
		}
	}
	return true, nil
}

// Realize converges members in declaration order and fails fast: the first
// member error aborts the run, wrapped with the member's description and key.
// There is no rollback of already-realized members.
func (r *Reality) Realize(ctx *SystemContext) error {
	for _, res := range r.order {
		ctx.Logger.Trace("realizing", "resource", res.Describe())
		if err := res.Realize(ctx); err != nil {
			return fmt.Errorf("could not realize %s (key %s): %w", res.Describe(), res.Key(), err)
		}
	}
	return nil
}

func (r *Reality) Describe() string {
	return "reality"
}

func (r *Reality) Equal(other Resource) bool {
	o, ok := other.(*Reality)
	if !ok || len(o.order) != len(r.order) {
		return false
	}
	for i, res := range r.order {
		if !res.Equal(o.order[i]) {
			return false
		}
	}
	return true
}
