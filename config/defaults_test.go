package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReferenceRegionMatchesDefaults(t *testing.T) {
	region, err := ReferenceRegion()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(region), &parsed))

	require.Len(t, parsed, len(defaults))
	for key, want := range defaults {
		got, ok := parsed[key]
		require.True(t, ok, "reference template is missing %q", key)
		assert.Equal(t, fmt.Sprint(want), fmt.Sprint(got), key)
	}
}

func TestReferenceRegionHasPlaceholders(t *testing.T) {
	region, err := ReferenceRegion()
	require.NoError(t, err)

	assert.Contains(t, region, "token: "+TokenPlaceholder+"\n")
	assert.Contains(t, region, "owner: "+OwnerPlaceholder+"\n")
}

func TestNewPrinter(t *testing.T) {
	assert.Equal(t, "Invalid User ID! Exiting.\n\nConfig Location: /x",
		newPrinter(ParseLanguage("en-GB")).Sprintf(msgOwnerAbort, "/x"))
	assert.Equal(t, "無効なユーザーIDです。終了します。\n\n設定ファイルの場所: /x",
		newPrinter(ParseLanguage("ja")).Sprintf(msgOwnerAbort, "/x"))
	assert.Equal(t, "Invalid User ID! Exiting.\n\nConfig Location: /x",
		newPrinter(ParseLanguage("fr")).Sprintf(msgOwnerAbort, "/x"))
}
