package attribute

import "reflect"

// Set is an ordered list of Attribute plus an optional parent (a borrow —
// Sets never own their parent) and an optional reference-handle into a
// Collection. It is the value type spec 9's Design Notes calls for in
// place of the source's intrusive linked chains.
type Set struct {
	Own    []Attribute
	Parent *Set
	// Reference is this set's own reference-handle (step 3 of the lookup
	// order below), distinct from a KindSetReference Attribute living in
	// Own (step 2).
	Reference Attribute
	collection *Collection
}

// NewSet builds a Set from an ordered attribute list with no parent.
func NewSet(attrs ...Attribute) Set {
	return Set{Own: attrs}
}

// WithParent returns a copy of s chained to parent.
func (s Set) WithParent(parent *Set) Set {
	s.Parent = parent
	return s
}

// WithCollection binds the Collection used to resolve this set's own and
// nested KindSetReference attributes, and its own Reference handle.
func (s Set) WithCollection(c *Collection) Set {
	s.collection = c
	return s
}

// Get performs the documented lookup order for kind (spec 4.1):
//  1. own attributes, last to first
//  2. for each reference attribute encountered in step 1, recurse into
//     the referenced set
//  3. the set's own reference-handle
//  4. parent set, recursively
//  5. default value
//
// The returned bool is false only when step 5 (Default) was used, so
// callers can distinguish "explicitly set to the default value" from
// "fell through to the default".
func (s Set) Get(kind Kind) (Attribute, bool) {
	if a, ok := s.getOwn(kind); ok {
		return a, true
	}
	if s.Reference.Kind == KindSetReference {
		if a, ok := s.getReferenced(s.Reference, kind); ok {
			return a, true
		}
	}
	if s.Parent != nil {
		if a, ok := s.Parent.Get(kind); ok {
			return a, true
		}
	}
	return Default(kind), false
}

// getOwn walks Own last-to-first, recursing into any reference attribute
// encountered along the way before returning to the next own entry, per
// step 1+2 of the documented order.
func (s Set) getOwn(kind Kind) (Attribute, bool) {
	for i := len(s.Own) - 1; i >= 0; i-- {
		a := s.Own[i]
		if a.Kind == kind {
			return a, true
		}
		if a.Kind == KindSetReference {
			if ref, ok := s.getReferenced(a, kind); ok {
				return ref, true
			}
		}
	}
	return Attribute{}, false
}

func (s Set) getReferenced(ref Attribute, kind Kind) (Attribute, bool) {
	if s.collection == nil {
		return Attribute{}, false
	}
	target, ok := s.collection.GetSet(ref.Ref)
	if !ok {
		return Attribute{}, false
	}
	target.collection = s.collection
	return target.getOwnOrParent(kind)
}

// getOwnOrParent is Get without the default fallback, used when
// recursing into a referenced set: the referenced set's own attributes,
// its own reference-handle and its parent chain are searched, and a miss
// there returns false so the referencing set continues with its own
// reference, parent and default.
func (s Set) getOwnOrParent(kind Kind) (Attribute, bool) {
	if a, ok := s.getOwn(kind); ok {
		return a, true
	}
	if s.Reference.Kind == KindSetReference {
		if a, ok := s.getReferenced(s.Reference, kind); ok {
			return a, true
		}
	}
	if s.Parent != nil {
		return s.Parent.getOwnOrParent(kind)
	}
	return Attribute{}, false
}

// CollectAll returns every own attribute of kind, own chain first
// (including resolved references), in encounter order (first to last,
// the reverse of Get's search order) — spec 4.1's "collect-all-by-kind
// (preserves order of encounter)".
func (s Set) CollectAll(kind Kind) []Attribute {
	var out []Attribute
	for _, a := range s.Own {
		if a.Kind == kind {
			out = append(out, a)
		}
		if a.Kind == KindSetReference && s.collection != nil {
			if target, ok := s.collection.GetSet(a.Ref); ok {
				target.collection = s.collection
				out = append(out, target.CollectAll(kind)...)
			}
		}
	}
	if s.Parent != nil {
		out = append(out, s.Parent.CollectAll(kind)...)
	}
	return out
}

// Equal compares two sets for semantic equivalence: reference attributes
// match by the referenced set's *group*, not its handle identity, so two
// chains pointing at differently-named but group-equivalent sets ("link"
// style A vs "link" style B) compare equal — spec 4.1's group-based
// equality query.
func (s Set) Equal(other Set) bool {
	if len(s.Own) != len(other.Own) {
		return false
	}
	for i := range s.Own {
		if !s.attrEqual(s.Own[i], other.Own[i]) {
			return false
		}
	}
	switch {
	case s.Parent == nil && other.Parent == nil:
	case s.Parent != nil && other.Parent != nil:
		if !s.Parent.Equal(*other.Parent) {
			return false
		}
	default:
		return false
	}
	return true
}

func (s Set) attrEqual(a, b Attribute) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindSetReference {
		return s.groupOf(a.Ref) == s.groupOf(b.Ref)
	}
	return reflect.DeepEqual(a, b)
}

func (s Set) groupOf(h Handle) string {
	if s.collection == nil {
		return ""
	}
	return s.collection.GroupName(h)
}

// Flatten emits this set's attributes plus one KindSetReference attribute
// per referenced set, parents first — spec 4.1's flatten-copy query. The
// returned slice can be replayed through NewSet to reconstruct an
// equivalent, parent-free Set for caching or serialization.
func (s Set) Flatten() []Attribute {
	var out []Attribute
	if s.Parent != nil {
		out = append(out, s.Parent.Flatten()...)
	}
	if s.Reference.Kind == KindSetReference {
		out = append(out, s.Reference)
	}
	out = append(out, s.Own...)
	return out
}

// FlattenCount returns len(Flatten()) without allocating the slice, for
// callers that only need a capacity estimate (spec 4.1's flatten-count).
func (s Set) FlattenCount() int {
	n := len(s.Own)
	if s.Reference.Kind == KindSetReference {
		n++
	}
	if s.Parent != nil {
		n += s.Parent.FlattenCount()
	}
	return n
}
