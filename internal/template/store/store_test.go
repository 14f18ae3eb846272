package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStore(t *testing.T) {
	s := NewMapStore(map[string]string{
		"py": "print('$file name$')",
		"sh": "#!/bin/sh\n",
	}, "sh")

	t.Run("lookup existing", func(t *testing.T) {
		v, ok := s.Lookup("py")
		assert.True(t, ok)
		assert.Equal(t, "print('$file name$')", v)
	})

	t.Run("lookup missing", func(t *testing.T) {
		_, ok := s.Lookup("rs")
		assert.False(t, ok)
	})

	t.Run("executable", func(t *testing.T) {
		assert.True(t, s.IsExecutable("sh"))
		assert.False(t, s.IsExecutable("py"))
		assert.False(t, s.IsExecutable(""))
	})
}

func TestMapStoreKeepsRawValues(t *testing.T) {
	s := &MapStore{Templates: map[string]any{"json": int64(3)}}

	v, ok := s.Lookup("json")
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)
}
