package integration

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	script, err := render("/usr/bin/zsh")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/zsh\n"))
	assert.Contains(t, script, `filefinder "$@" | fzf`)
	assert.Contains(t, script, `printf '%q ' "$line"`)
	assert.NotContains(t, script, "{{")
}

// The widget strips the " - <size>" suffix with sed -E; the same ERE is
// valid RE2, so it is applied here to every size format the tool prints.
func TestRender_StripsSizeSuffix(t *testing.T) {
	script, err := render("/usr/bin/zsh")
	require.NoError(t, err)

	match := regexp.MustCompile(`sed -E 's/(.+)//'`).FindStringSubmatch(script)
	require.Len(t, match, 2, "sed expression not found")

	suffix := regexp.MustCompile(match[1])

	tests := []struct {
		line string
		want string
	}{
		{"/a/b.jpg - 500 bytes", "/a/b.jpg"},
		{"/a/b.jpg - 1,000 bytes", "/a/b.jpg"},
		{"/a/c.jpg - 1.50KB", "/a/c.jpg"},
		{"/a/d.jpg - 6.00MB", "/a/d.jpg"},
		{"/a/e.jpg - 1,024.00GB", "/a/e.jpg"},
		{"/a/x - y/f.jpg - 2.00MB", "/a/x - y/f.jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, suffix.ReplaceAllString(tt.line, ""), tt.line)
	}
}
