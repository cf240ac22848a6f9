package style_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/imgbuild/internal/ui/style"
)

func TestTone_Mark_Plain(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

	assert.Equal(t, "✓ webapp@1.0.0 built", style.Succeeded.Mark(out, "webapp@1.0.0 built"))
	assert.Equal(t, "✗ failed at create-image", style.Failed.Mark(out, "failed at create-image"))
	assert.Equal(t, "build:", style.Detail.Paint(out, "build:"))
}

func TestTone_Paint_Colored(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))

	got := style.Warned.Paint(out, "cleanup finished")
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "cleanup finished")
	assert.NotEqual(t, style.Warned.Paint(out, "x"), style.Failed.Paint(out, "x"))
}
