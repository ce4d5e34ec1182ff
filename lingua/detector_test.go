package lingua_test

import (
	"testing"

	"github.com/fwojciec/readweb"
	readweblingua "github.com/fwojciec/readweb/lingua"
	"github.com/pemistahl/lingua-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Detector implements readweb.LanguageDetector at compile time.
var _ readweb.LanguageDetector = (*readweblingua.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	detector := readweblingua.NewDetector(
		lingua.English,
		lingua.Spanish,
		lingua.German,
	)

	t.Run("detects english", func(t *testing.T) {
		t.Parallel()

		code, ok := detector.Detect("The quick brown fox jumps over the lazy dog and keeps running through the field.")

		require.True(t, ok)
		assert.Equal(t, "en", code)
	})

	t.Run("detects spanish", func(t *testing.T) {
		t.Parallel()

		code, ok := detector.Detect("El rápido zorro marrón salta sobre el perro perezoso y sigue corriendo por el campo.")

		require.True(t, ok)
		assert.Equal(t, "es", code)
	})

	t.Run("detects german", func(t *testing.T) {
		t.Parallel()

		code, ok := detector.Detect("Der schnelle braune Fuchs springt über den faulen Hund und läuft weiter über das Feld.")

		require.True(t, ok)
		assert.Equal(t, "de", code)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		_, ok := detector.Detect("   ")
		assert.False(t, ok)
	})

	t.Run("rejects text without letters", func(t *testing.T) {
		t.Parallel()

		_, ok := detector.Detect("12345 67890 !!!")
		assert.False(t, ok)
	})
}
