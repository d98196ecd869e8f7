package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/openspace/internal/roster"
	"github.com/katalvlaran/openspace/preference"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []preference.Person
	}{
		{"single column", "Name\nAleksei\nBrigi\n", []preference.Person{"Aleksei", "Brigi"}},
		{"name column", "id,name,team\n1, Imran ,a\n2,Jens,b\n", []preference.Person{"Imran", "Jens"}},
		{"first column fallback", "Colleague\nMona\n\nNils\n", []preference.Person{"Mona", "Nils"}},
		{"byte order mark", "\ufeffName\nOmar\n", []preference.Person{"Omar"}},
		{"short rows skipped", "id,Name\n1\n2,Pia\n", []preference.Person{"Pia"}},
		{"header only", "Name\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := roster.Read(strings.NewReader(tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadErrors(t *testing.T) {
	_, err := roster.Read(strings.NewReader(""))
	require.ErrorIs(t, err, roster.ErrEmpty)

	_, err = roster.Read(strings.NewReader("Name\nAleksei\nAleksei\n"))
	require.ErrorIs(t, err, roster.ErrDuplicateName)

	_, err = roster.Read(strings.NewReader("Name\n\"Aleksei\n"))
	require.ErrorContains(t, err, "read row")

	_, err = roster.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,Name\n1,Aleksei"), 0o644))

	require.NoError(t, roster.Append(path, " Brigi "))
	people, err := roster.Load(path)
	require.NoError(t, err)
	require.Equal(t, []preference.Person{"Aleksei", "Brigi"}, people)

	require.ErrorIs(t, roster.Append(path, "Brigi"), roster.ErrDuplicateName)
	require.ErrorIs(t, roster.Append(path, "  "), preference.ErrEmptyName)
	require.ErrorIs(t, roster.Append(filepath.Join(t.TempDir(), "none.csv"), "X"), os.ErrNotExist)
}
