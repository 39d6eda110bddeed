package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "no tags here", "no tags here"},
		{"bold", "a <b>bold</b> move", "a bold move"},
		{"link", `see <a href="https://x.y">this</a>`, "see this"},
		{"unterminated", "cut <b", "cut "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestSquashSpaces(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM t", SquashSpaces("\n\tSELECT 1\n   FROM t  \n"))
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `mac\_and\_cheese \*spicy\*`, EscapeMarkdown("mac_and_cheese *spicy*"))
}

func TestLangFromCode(t *testing.T) {
	assert.Equal(t, ES, LangFromCode("es"))
	assert.Equal(t, ES, LangFromCode("es-AR"))
	assert.Equal(t, EN, LangFromCode("en"))
	assert.Equal(t, EN, LangFromCode(""))
}

func TestLanguageByFallsBackToEnglish(t *testing.T) {
	l := Language{EN: "hello"}
	assert.Equal(t, "hello", l.By(ES))
	l.ES = "hola"
	assert.Equal(t, "hola", l.By(ES))
}

func TestGenKSUID(t *testing.T) {
	a, b := GenKSUID(), GenKSUID()
	assert.Len(t, a, 27)
	assert.NotEqual(t, a, b)
}
