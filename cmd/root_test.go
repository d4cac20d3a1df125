/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chardet/pkg/chardet"
)

func Test_splitComma(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitComma("a,b,c"))
	assert.Equal(t, []string{"a"}, splitComma("a"))
	assert.Nil(t, splitComma(""))
	assert.Equal(t, []string{"a", "b"}, splitComma("a,,b"))
}

func Test_parseLangFilter_all(t *testing.T) {
	f, err := parseLangFilter("all")
	require.NoError(t, err)
	assert.Equal(t, chardet.LangAll, f)

	f, err = parseLangFilter("")
	require.NoError(t, err)
	assert.Equal(t, chardet.LangAll, f)
}

func Test_parseLangFilter_combination(t *testing.T) {
	f, err := parseLangFilter("zh-cn,ja")
	require.NoError(t, err)
	assert.True(t, f.Has(chardet.ChineseSimplified))
	assert.True(t, f.Has(chardet.Japanese))
	assert.False(t, f.Has(chardet.Korean))
}

func Test_parseLangFilter_unknownTag(t *testing.T) {
	_, err := parseLangFilter("klingon")
	assert.Error(t, err)
}
