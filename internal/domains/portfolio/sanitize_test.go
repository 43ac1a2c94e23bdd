package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Jean Dupont", "Jean Dupont"},
		{"script tag escaped", `<script>alert("x")</script>`, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;"},
		{"ampersand escaped", "Fish & Chips", "Fish &amp; Chips"},
		{"single quote escaped", "l'atelier", "l&#39;atelier"},
		{"empty stays empty", "", ""},
		{"accents untouched", "Développeuse web à Lyon", "Développeuse web à Lyon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}
