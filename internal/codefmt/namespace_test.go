package codefmt

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("example"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "example", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example3", name)
	assert.True(t, more)
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "answer42", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_3", name)
	assert.True(t, more)
}

func TestNameConflict(t *testing.T) {
	ns := make(NS)
	ns.Reserve("next")

	assert.Equal(t, "next2", ns.Name("next"))
	assert.Equal(t, "next3", ns.Name("next"))
	assert.Equal(t, "prev", ns.Name("prev"))
}

func TestNameKeyword(t *testing.T) {
	ns := make(NS)
	assert.Equal(t, "_range", ns.Name("range"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Color", NormalizeName("color"))
	assert.Equal(t, "JobState", NormalizeName("jobState"))
	assert.Equal(t, "HTTPStatus", NormalizeName("HTTPStatus"))
}
