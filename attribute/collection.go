package attribute

// Handle is an opaque reference to a Set stored in a Collection. It is
// the arena-index pattern spec 9's Design Notes calls for: callers and
// Sets never hold a pointer into the Collection, only this integer.
type Handle int

// invalidHandle marks "no set"; zero is reserved as a real index so a
// zero-valued Set (Ref: 0) is never silently mistaken for "no reference".
const invalidHandle Handle = -1

type namedSet struct {
	name      string
	groupName string
	set       Set
}

// Collection is the external attribute-collection contract (spec
// section 6): add_set/find_by_name/get_set, deduplicating by group name.
//
// Ported from: skia-source/modules/skparagraph/include/ParagraphStyle.h's
// block-collection pattern, generalized to the spec's named-reference
// model; a Collection here plays the role the teacher's font_collection.go
// plays for fonts, but for attribute sets.
type Collection struct {
	sets       []namedSet
	byName     map[string]Handle
	groupFirst map[string]Handle
}

// NewCollection creates an empty attribute collection.
func NewCollection() *Collection {
	return &Collection{
		byName:     make(map[string]Handle),
		groupFirst: make(map[string]Handle),
	}
}

// AddSet registers a named attribute set. If groupName is non-empty and a
// set with that group name was already added, the existing handle is
// returned and no duplicate is stored — this is the "group-based
// equality" dedup spec 4.1 relies on for style-toggle matching.
func (c *Collection) AddSet(name, groupName string, set Set) Handle {
	if groupName != "" {
		if h, ok := c.groupFirst[groupName]; ok {
			c.byName[name] = h
			return h
		}
	}
	h := Handle(len(c.sets))
	c.sets = append(c.sets, namedSet{name: name, groupName: groupName, set: set})
	c.byName[name] = h
	if groupName != "" {
		c.groupFirst[groupName] = h
	}
	return h
}

// FindByName returns the handle registered under name, or invalidHandle.
func (c *Collection) FindByName(name string) (Handle, bool) {
	h, ok := c.byName[name]
	if !ok {
		return invalidHandle, false
	}
	return h, true
}

// GetSet dereferences a handle to its Set. Returns the zero Set and false
// for an out-of-range handle — lookups never panic on a stale handle.
func (c *Collection) GetSet(h Handle) (Set, bool) {
	if h < 0 || int(h) >= len(c.sets) {
		return Set{}, false
	}
	return c.sets[h].set, true
}

// GroupName returns the group name a handle's set was registered under.
func (c *Collection) GroupName(h Handle) string {
	if h < 0 || int(h) >= len(c.sets) {
		return ""
	}
	return c.sets[h].groupName
}

// Resolve rewrites any KindSetReference attributes in set (and
// recursively, its Parent chain is left untouched since parents are
// borrows already in their resolved form) so their Ref handle points at
// the named set within c. Call once per Set after all of its referenced
// names have been added to c.
func (c *Collection) Resolve(set *Set) {
	for i := range set.Own {
		a := &set.Own[i]
		if a.Kind == KindSetReference && a.Text != "" {
			if h, ok := c.byName[a.Text]; ok {
				a.Ref = h
			} else {
				a.Ref = invalidHandle
			}
		}
	}
	if set.Reference.Text != "" {
		if h, ok := c.byName[set.Reference.Text]; ok {
			set.Reference.Ref = h
		} else {
			set.Reference.Ref = invalidHandle
		}
	}
}
