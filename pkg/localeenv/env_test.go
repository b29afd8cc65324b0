package localeenv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstore/pkg/localeenv"
)

func TestEnvLanguages(t *testing.T) {
	t.Run("returns colon-separated LANGUAGE list in order", func(t *testing.T) {
		t.Setenv("LANGUAGE", "de:zh_TW:en")
		require.Equal(t, []string{"de", "zh-TW", "en"}, localeenv.Env{}.Languages())
	})

	t.Run("canonicalizes POSIX values", func(t *testing.T) {
		t.Setenv("LANGUAGE", "en_US.UTF-8:de_DE@euro")
		require.Equal(t, []string{"en-US", "de-DE"}, localeenv.Env{}.Languages())
	})

	t.Run("skips C and POSIX entries", func(t *testing.T) {
		t.Setenv("LANGUAGE", "C:POSIX:fr")
		require.Equal(t, []string{"fr"}, localeenv.Env{}.Languages())
	})

	t.Run("returns nil when unset", func(t *testing.T) {
		t.Setenv("LANGUAGE", "")
		require.Nil(t, localeenv.Env{}.Languages())
	})
}

func TestEnvLanguage(t *testing.T) {
	t.Run("LC_ALL wins over LANG", func(t *testing.T) {
		t.Setenv("LC_ALL", "es_MX.UTF-8")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "en_US.UTF-8")
		require.Equal(t, "es-MX", localeenv.Env{}.Language())
	})

	t.Run("falls through to LANG", func(t *testing.T) {
		t.Setenv("LC_ALL", "")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "pl_PL")
		require.Equal(t, "pl-PL", localeenv.Env{}.Language())
	})

	t.Run("ignores the C locale", func(t *testing.T) {
		t.Setenv("LC_ALL", "C")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "")
		require.Empty(t, localeenv.Env{}.Language())
	})
}

func TestStatic(t *testing.T) {
	t.Parallel()

	src := localeenv.Static{List: []string{"de", "en"}, Single: "de"}
	require.Equal(t, []string{"de", "en"}, src.Languages())
	require.Equal(t, "de", src.Language())

	empty := localeenv.Static{}
	require.Nil(t, empty.Languages())
	require.Empty(t, empty.Language())
}
