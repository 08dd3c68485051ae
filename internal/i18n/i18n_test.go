package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"RU", Russian, false},
		{" tg ", Tajik, false},
		{"de", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltinTablesComplete(t *testing.T) {
	c, err := Load(localesFS)
	require.NoError(t, err)
	require.Len(t, c, len(Languages()))

	assert.Equal(t, "Language", c[English].Language)
	assert.Equal(t, "Язык", c[Russian].Language)
	assert.Equal(t, "Забон", c[Tajik].Language)
}

func TestTable_FallsBackToDefault(t *testing.T) {
	assert.Same(t, Table(DefaultLanguage), Table("xx"))
	assert.NotSame(t, Table(English), Table(Russian))
}

func TestLoad_MissingKey(t *testing.T) {
	en, err := localesFS.ReadFile("locales/en.yaml")
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: en},
		"locales/ru.yaml": {Data: en},
		"locales/tg.yaml": {Data: []byte("welcome: \"hi\"\n")},
	}

	_, err = Load(fsys)
	require.ErrorIs(t, err, ErrMissingTranslation)
	assert.Contains(t, err.Error(), "tg")
	assert.Contains(t, err.Error(), "language_changed")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("welcome: [unterminated")},
	}
	_, err := Load(fsys)
	require.ErrorContains(t, err, "parse en translations")
}

func TestNativeName(t *testing.T) {
	assert.Equal(t, "Тоҷикӣ", Tajik.NativeName())
	assert.True(t, English.Valid())
	assert.False(t, Language("fr").Valid())
}
