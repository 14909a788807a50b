package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"", EN},
		{"en", EN},
		{"en-US", EN},
		{"fr", EN},
		{"zh", ZH},
		{"zh-CN", ZH},
		{"zh_TW", ZH},
		{"zh-Hant", ZH},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("!!")
	assert.Error(t, err)
}

func TestLocaleString(t *testing.T) {
	assert.Equal(t, "en", EN.String())
	assert.Equal(t, "zh", ZH.String())
	assert.Equal(t, "zh", ZH.Tag().String())
}

func TestCatalog(t *testing.T) {
	en := New(EN)
	zh := New(ZH)

	assert.Equal(t, "3.1 Cluster Identity Information", en.T("cluster.identity"))
	assert.Equal(t, "3.1 集群标识信息", zh.T("cluster.identity"))

	// unknown keys come back unchanged
	assert.Equal(t, "no.such.key", zh.T("no.such.key"))

	assert.Equal(t, "⚠️ **Data unavailable**: `nodes.json` is missing or unreadable", en.F("unavailable", "nodes.json"))

	var zero Catalog
	assert.Equal(t, EN, zero.Locale())
}

func TestCatalog_EveryKeyHasEnglish(t *testing.T) {
	for key, m := range messages {
		assert.NotEmpty(t, m[EN], key)
	}
}
