package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGetOwnLastWins(t *testing.T) {
	s := NewSet(
		Scalar(KindFontSize, 12),
		Scalar(KindFontSize, 18),
	)
	a, explicit := s.Get(KindFontSize)
	assert.True(t, explicit)
	assert.Equal(t, float32(18), a.Scalar)
}

func TestSetGetFallsBackToParent(t *testing.T) {
	parent := NewSet(Scalar(KindFontSize, 20))
	child := NewSet(Text(KindFontFamily, "Body")).WithParent(&parent)

	a, explicit := child.Get(KindFontSize)
	assert.True(t, explicit)
	assert.Equal(t, float32(20), a.Scalar)
}

func TestSetGetDefaultWhenAbsent(t *testing.T) {
	s := NewSet()
	a, explicit := s.Get(KindFontWeight)
	assert.False(t, explicit)
	assert.Equal(t, Default(KindFontWeight), a)
}

func TestSetGetThroughReference(t *testing.T) {
	c := NewCollection()
	linkBase := NewSet(Fill(0, 0, 255, 255))
	h := c.AddSet("link-base", "link", linkBase)

	s := NewSet(Reference("link-base")).WithCollection(c)
	s.Own[0].Ref = h

	a, explicit := s.Get(KindFill)
	assert.True(t, explicit)
	assert.Equal(t, uint8(255), a.Fill.B)
}

func TestCollectAllPreservesEncounterOrder(t *testing.T) {
	s := NewSet(
		Feature("liga", 0),
		Feature("kern", 1),
	)
	got := s.CollectAll(KindFeature)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "liga", got[0].Feature.Tag)
		assert.Equal(t, "kern", got[1].Feature.Tag)
	}
}

func TestEqualByGroupNotByHandle(t *testing.T) {
	c := NewCollection()
	a := NewSet(Text(KindGroupTag, "link"))
	b := NewSet(Text(KindGroupTag, "link"))
	ha := c.AddSet("link-a", "link", a)
	hb := c.AddSet("link-b", "link", b)
	assert.Equal(t, ha, hb, "second add_set with the same group must dedup to the first handle")

	left := NewSet(Reference("link-a")).WithCollection(c)
	left.Own[0].Ref = ha
	right := NewSet(Reference("link-b")).WithCollection(c)
	right.Own[0].Ref = hb

	assert.True(t, left.Equal(right))
}

func TestFlattenOrdersParentsFirst(t *testing.T) {
	parent := NewSet(Scalar(KindFontSize, 20))
	child := NewSet(Text(KindFontFamily, "Body")).WithParent(&parent)

	flat := child.Flatten()
	if assert.Len(t, flat, child.FlattenCount()) {
		assert.Equal(t, KindFontSize, flat[0].Kind)
		assert.Equal(t, KindFontFamily, flat[1].Kind)
	}
}

func TestHashStableAcrossEqualReferenceGroups(t *testing.T) {
	c := NewCollection()
	a := NewSet(Fill(1, 2, 3, 255))
	b := NewSet(Fill(1, 2, 3, 255))
	ha := c.AddSet("a", "palette", a)
	hb := c.AddSet("b", "palette", b)

	left := NewSet(Reference("a")).WithCollection(c)
	left.Own[0].Ref = ha
	right := NewSet(Reference("b")).WithCollection(c)
	right.Own[0].Ref = hb

	assert.Equal(t, left.Hash(), right.Hash())
}
