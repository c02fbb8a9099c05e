package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	const name FontName = "test-regular"
	t.Cleanup(func() { delete(fonts, name) })

	require.Equal(t, basicfont.Face7x13, name.Get())
	require.NoError(t, LoadFontWithSize(name, goregular.TTF, 14))
	require.NotEqual(t, basicfont.Face7x13, name.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	const name FontName = "test-garbage"
	require.Error(t, LoadFontWithSize(name, []byte("not a font"), 12))
	require.Equal(t, basicfont.Face7x13, name.Get())
}
