package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("", 5))
}

func TestCanonicalSkillKey(t *testing.T) {
	assert.Equal(t, "nodejs", CanonicalSkillKey("Node.js"))
	assert.Equal(t, "nodejs", CanonicalSkillKey("  node js "))
	assert.Equal(t, "nodejs", CanonicalSkillKey("NODEJS"))
	assert.Equal(t, "c++", CanonicalSkillKey("C++"))
	assert.Equal(t, "c#", CanonicalSkillKey("C#"))
	assert.Equal(t, "", CanonicalSkillKey("  "))
}

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>body{}</style></head><body>
		<nav>Menu</nav>
		<script>alert(1)</script>
		<h1>My Project</h1>
		<p>A REST API built with Go.</p>
	</body></html>`

	text := HTMLToText(html)

	assert.Contains(t, text, "My Project")
	assert.Contains(t, text, "A REST API built with Go.")
	assert.NotContains(t, text, "alert(1)")
	assert.NotContains(t, text, "Menu")
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, stripFences("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, stripFences("```\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, stripFences(`[{"a":1}]`))
}
