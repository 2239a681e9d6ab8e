package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultKind(t *testing.T) {
	failed := Failed(KindNonconvergence, "sqrt: series did not converge within 250 terms")
	assert.False(t, failed.Success)
	assert.Equal(t, "sqrt: series did not converge within 250 terms", *failed.Error)
	assert.Equal(t, KindNonconvergence, failed.Kind())

	assert.Empty(t, Succeeded(map[string]interface{}{"re": 1.0}).Kind())
	assert.Empty(t, (&Result{Success: false}).Kind())

	var missing *Result
	assert.Empty(t, missing.Kind())
}
