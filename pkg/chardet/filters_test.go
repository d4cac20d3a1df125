/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_removeXMLTags_dropsTagsKeepsText(t *testing.T) {
	out := removeXMLTags([]byte("<p>hello</p> world"))
	assert.Equal(t, "hello world", string(out))
}

func Test_removeXMLTags_unclosedTagConsumesRest(t *testing.T) {
	out := removeXMLTags([]byte("before<tag never closes"))
	assert.Equal(t, "before", string(out))
}

func Test_filterInternationalWords_leavesPureASCIIUntouched(t *testing.T) {
	// The pattern requires at least one \x80-\xff byte to match at all, so
	// text with no high bytes passes through unchanged.
	in := "plain ascii only, nothing here"
	out := filterInternationalWords([]byte(in))
	assert.Equal(t, in, string(out))
}

func Test_filterInternationalWords_collapsesHighByteWordToSpace(t *testing.T) {
	out := filterInternationalWords([]byte("caf\xe9 and beyond"))
	assert.NotContains(t, string(out), "\xe9")
	assert.Contains(t, string(out), "and beyond")
}
