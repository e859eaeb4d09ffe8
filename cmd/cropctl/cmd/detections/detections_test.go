package detections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "92%", formatConfidence(0.92))
	assert.Equal(t, "100%", formatConfidence(1.0))
	assert.Equal(t, "-", formatConfidence(0))
	assert.Equal(t, "-", formatConfidence(-1))
}
