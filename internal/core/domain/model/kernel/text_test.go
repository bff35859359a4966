package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Run("composes_decomposed_sequences", func(t *testing.T) {
		decomposed := "Café"         // e + combining acute
		composed := "Café"            // precomposed é
		assert.NotEqual(t, decomposed, composed)
		assert.Equal(t, composed, kernel.NormalizeText(decomposed))
	})

	t.Run("already_composed_text_is_unchanged", func(t *testing.T) {
		s := "Şantiye Müdürü İstanbul"
		assert.Equal(t, s, kernel.NormalizeText(s))
	})

	t.Run("normalization_is_idempotent", func(t *testing.T) {
		s := kernel.NormalizeText("Ågström")
		assert.Equal(t, s, kernel.NormalizeText(s))
	})

	t.Run("ascii_and_empty_pass_through", func(t *testing.T) {
		assert.Equal(t, "", kernel.NormalizeText(""))
		assert.Equal(t, "ORD-20240601-1234", kernel.NormalizeText("ORD-20240601-1234"))
	})
}
