package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoCandidate_AspectRatio(t *testing.T) {
	assert.InDelta(t, 1.5, PhotoCandidate{Width: 3000, Height: 2000}.AspectRatio(), 1e-9)
	assert.Zero(t, PhotoCandidate{Width: 100}.AspectRatio())
}
