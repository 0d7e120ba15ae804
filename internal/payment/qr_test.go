package payment

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUPIGenerator_RenderPaymentCode(t *testing.T) {
	gen := NewUPIGenerator("museum@upi", "City Art Museum")

	encoded, err := gen.RenderPaymentCode(150)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	png, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8])
}

func TestUPIGenerator_RenderPaymentCode_DiffersByAmount(t *testing.T) {
	gen := NewUPIGenerator("museum@upi", "Museum")

	a, err := gen.RenderPaymentCode(50)
	require.NoError(t, err)
	b, err := gen.RenderPaymentCode(100)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
