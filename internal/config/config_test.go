package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/openspace/balance"
	"github.com/katalvlaran/openspace/internal/config"
	"github.com/katalvlaran/openspace/preference"
)

const jsonConfig = `{
    "input_file": "people.csv",
    "output_file": "seating.csv",
    "number_of_tables": 6,
    "table_capacity": 4,
    "preferences": {
        "with": {"Aleksei": ["Brigi", "Imran"], "Imran": ["Jens"]},
        "without": {"Aleksei": ["Jens"]}
    }
}`

const yamlConfig = `
input_file: people.csv
report_file: seating.txt
capacities: [5, 4, 4]
auto_grow: true
seed: 42
requests:
  - Mona wants Nils
  - Nils does not want Omar
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadJSON reads the with/without map form.
func TestLoadJSON(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "config.json", jsonConfig))
	require.NoError(t, err)

	assert.Equal(t, "people.csv", cfg.InputFile)
	assert.Equal(t, 6, cfg.NumberOfTables)
	assert.Equal(t, 4, cfg.TableCapacity)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, []string{"Jens"}, cfg.Preferences.Without["Aleksei"])

	prefs, err := cfg.PreferenceList()
	require.NoError(t, err)
	assert.Equal(t, []preference.Preference{
		{Subject: "Aleksei", Target: "Brigi", Polarity: preference.Want},
		{Subject: "Aleksei", Target: "Imran", Polarity: preference.Want},
		{Subject: "Imran", Target: "Jens", Polarity: preference.Want},
		{Subject: "Aleksei", Target: "Jens", Polarity: preference.Avoid},
	}, prefs)

	spec := cfg.Room()
	assert.Equal(t, []int{4, 4, 4, 4, 4, 4}, spec.Layout())
	assert.Equal(t, balance.Fixed, spec.Policy())
	assert.Empty(t, cfg.Options())
}

func TestLoadYAML(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "config.yaml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, "seating.csv", cfg.OutputFile, "default output")
	assert.Equal(t, "seating.txt", cfg.ReportFile)
	assert.Equal(t, []int{5, 4, 4}, cfg.Room().Layout())
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Len(t, cfg.Options(), 2)

	in, err := cfg.Input([]preference.Person{"Mona", "Nils", "Omar"})
	require.NoError(t, err)
	assert.Len(t, in.People, 3)
	assert.Equal(t, []preference.Preference{
		{Subject: "Mona", Target: "Nils", Polarity: preference.Want},
		{Subject: "Nils", Target: "Omar", Polarity: preference.Avoid},
	}, in.Preferences)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENSPACE_TABLES", "3")
	t.Setenv("OPENSPACE_CAPACITY", "7")
	t.Setenv("OPENSPACE_SEED", "9")
	t.Setenv("OPENSPACE_OUTPUT", "out.csv")

	cfg, err := config.Load(writeFile(t, "config.json", jsonConfig))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.NumberOfTables)
	assert.Equal(t, 7, cfg.TableCapacity)
	assert.Equal(t, "out.csv", cfg.OutputFile)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(9), *cfg.Seed)
	assert.Equal(t, "people.csv", cfg.InputFile, "unset variables keep file values")
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("OPENSPACE_TABLES", "many")
	_, err := config.Load(writeFile(t, "config.json", jsonConfig))
	require.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		err  error
	}{
		{"fixed", config.Config{NumberOfTables: 2, TableCapacity: 3}, nil},
		{"explicit capacities", config.Config{Capacities: []int{3, 0}}, nil},
		{"auto balance without capacity", config.Config{NumberOfTables: 2, AutoBalance: true}, nil},
		{"no tables", config.Config{TableCapacity: 3}, config.ErrNoTables},
		{"no capacity", config.Config{NumberOfTables: 2}, config.ErrBadCapacity},
		{"negative capacity", config.Config{Capacities: []int{3, -1}}, config.ErrBadCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "config.json", "{not json"))
	require.ErrorContains(t, err, "decode config")

	_, err = config.Load(writeFile(t, "config.yaml", "number_of_tables: 0\n"))
	require.ErrorIs(t, err, config.ErrNoTables)

	cfg, err := config.Decode([]byte(`{"requests": ["Aleksei likes Brigi"]}`), true)
	require.NoError(t, err)
	_, err = cfg.PreferenceList()
	require.ErrorIs(t, err, preference.ErrUnparsable)
}

// TestSavePreference updates one person's lists and writes them back.
func TestSavePreference(t *testing.T) {
	for _, name := range []string{"config.json", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, jsonConfig)
			if name == "config.yaml" {
				cfg, err := config.Decode([]byte(jsonConfig), true)
				require.NoError(t, err)
				require.NoError(t, config.Save(path, cfg))
			}

			cfg, err := config.Load(path)
			require.NoError(t, err)
			cfg.SetPreference("Brigi", []string{"Jens"}, nil)
			cfg.SetPreference("Aleksei", nil, []string{"Imran"})
			require.NoError(t, config.Save(path, cfg))

			back, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, map[string][]string{"Brigi": {"Jens"}, "Imran": {"Jens"}}, back.Preferences.With)
			assert.Equal(t, map[string][]string{"Aleksei": {"Imran"}}, back.Preferences.Without)
			assert.Equal(t, 6, back.NumberOfTables)
		})
	}
}

func TestLoadFileSkipsEnv(t *testing.T) {
	path := writeFile(t, "config.json", jsonConfig)
	t.Setenv("OPENSPACE_TABLES", "9")

	raw, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, raw.NumberOfTables)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.NumberOfTables)
}
