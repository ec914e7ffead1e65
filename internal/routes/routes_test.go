package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOperationsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	routes := map[string]bool{}
	for _, op := range All() {
		assert.False(t, seen[op.Name], "duplicate operation name %s", op.Name)
		seen[op.Name] = true

		key := op.Method + " " + op.Path
		assert.False(t, routes[key], "duplicate route %s", key)
		routes[key] = true

		assert.NotEmpty(t, op.Feature, "%s needs a feature", op.Name)
	}
}

func TestWriteOperationsAreMutations(t *testing.T) {
	for _, op := range All() {
		if op.Write {
			assert.NotEqual(t, http.MethodGet, op.Method, "%s marked write but uses GET", op.Name)
		} else {
			assert.Equal(t, http.MethodGet, op.Method, "%s is read-only but uses %s", op.Name, op.Method)
		}
	}
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "/api/students/42", StudentsGet.URL(map[string]string{"id": "42"}))
	assert.Equal(t, "/api/students", StudentsList.URL(nil))
	assert.Equal(t, "/api/students/:id", StudentsGet.URL(map[string]string{"other": "x"}))
}
