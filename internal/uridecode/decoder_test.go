package uridecode

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("no escaping", func(t *testing.T) {
		require.Equal(t, "/hello", string(Decode("/hello", nil)))
	})

	t.Run("corners", func(t *testing.T) {
		require.Equal(t, "/hello/", string(Decode("%2fhello%2F", nil)))
	})

	t.Run("multiple consecutive", func(t *testing.T) {
		require.Equal(t, "/ hello", string(Decode("%2f%20hello", nil)))
	})

	t.Run("traversal escapes", func(t *testing.T) {
		require.Equal(t, "/../../etc/passwd", string(Decode("/%2e%2e/%2E%2E/etc/passwd", nil)))
	})

	t.Run("incomplete sequence", func(t *testing.T) {
		require.Equal(t, "%2", string(Decode("%2", nil)))
		require.Equal(t, "abc%", string(Decode("abc%", nil)))
	})

	t.Run("invalid sequence", func(t *testing.T) {
		require.Equal(t, "%zz/%g1", string(Decode("%zz/%g1", nil)))
		require.Equal(t, "%%", string(Decode("%%25", nil)))
	})

	t.Run("plus is not a space", func(t *testing.T) {
		require.Equal(t, "a+b", string(Decode("a+b", nil)))
	})

	t.Run("4kb slightly escaped", func(t *testing.T) {
		str := "/" + disperse("%5f", "a", 10, 4095)
		buff := make([]byte, 0, 4096)
		decoded := Decode(str, buff)
		want := "/" + strings.Repeat("_"+strings.Repeat("a", 10), 4095/len("%5f"+strings.Repeat("a", 10)))
		require.Equal(t, want, string(decoded))
		require.Equal(t, 4096, cap(decoded))
	})
}

func TestDecodeString(t *testing.T) {
	require.Equal(t, "/plain.txt", DecodeString("/plain.txt"))
	require.Equal(t, "/with space.txt", DecodeString("/with%20space.txt"))

	t.Run("multibyte", func(t *testing.T) {
		require.Equal(t, "/café.html", DecodeString("/caf%C3%A9.html"))
	})

	t.Run("invalid utf-8 is replaced", func(t *testing.T) {
		require.Equal(t, "/\uFFFD.txt", DecodeString("/%ff.txt"))
		require.Equal(t, "/a\uFFFD\uFFFDb", DecodeString("/a%ff%feb"))
		require.True(t, utf8.ValidString(DecodeString("/%c3%28")))
	})
}

func BenchmarkDecode(b *testing.B) {
	bench := func(b *testing.B, segment string) {
		str := "/" + strings.Repeat(segment, 4095/len(segment))
		buff := make([]byte, 0, len(str))
		b.SetBytes(int64(len(str)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = Decode(str, buff[:0])
		}
	}

	b.Run("4kb unescaped", func(b *testing.B) {
		bench(b, "a")
	})

	b.Run("4kb slightly escaped", func(b *testing.B) {
		bench(b, "%5faaaaaaaaa")
	})

	b.Run("4kb only escaped", func(b *testing.B) {
		bench(b, "%5f")
	})
}

// disperse makes a string, which consists of 1:proportion substrings a and b respectfully.
// Repeating them doesn't always result in exactly desiredLen bytes
func disperse(a, b string, proportion, desiredLen int) string {
	return strings.Repeat(a+strings.Repeat(b, proportion), desiredLen/(len(a)+len(b)*proportion))
}
