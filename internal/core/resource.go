package core

// Resource is the interface representing a manageable unit: the desired
// end-state of one thing on the target system. Values are immutable once
// constructed; builder methods return new values instead of mutating.
type Resource interface {
	// Kind returns the resource kind tag ("file", "reality", ...).
	// Together with Key it forms the declaration identity used for
	// deduplication; two kinds may share a key without colliding.
	Kind() string

	// Key distinguishes this resource from other resources of the same
	// kind. For files this is the file path, for example. Pure, no side
	// effects, stable for the resource's lifetime.
	Key() Key

	// Verify reports whether the target system already matches the
	// declaration. It may read a lot but must not change anything. A
	// missing target is a legitimate "not yet realized" state and returns
	// false, not an error; only operational failures propagate as errors.
	Verify(ctx *SystemContext) (bool, error)

	// Realize brings the target system in line with the declaration. It
	// must not assume Verify was called first and must be safe to
	// re-invoke.
	Realize(ctx *SystemContext) error

	// Describe returns a human-readable summary for logs and diagnostics.
	Describe() string

	// Equal reports whether the other resource declares the same
	// end-state (same key and same content).
	Equal(other Resource) bool
}

// Ensurer is something that can register resources to be realized.
type Ensurer interface {
	Ensure(r Resource) error
}

// ImplicitResource is the optional capability for resources that structurally
// require other resources, like a file needing its containing directory.
// ImplicitEnsure is invoked with a recursive ensure capability strictly before
// the resource itself is registered, so prerequisites occupy earlier
// positions in realization order. Chains must be simple and acyclic; there is
// no graph solver behind this.
type ImplicitResource interface {
	ImplicitEnsure(e Ensurer) error
}

// Differ is the optional capability for resources that can render a preview
// of the changes Realize would make.
type Differ interface {
	Diff(ctx *SystemContext) (string, error)
}
