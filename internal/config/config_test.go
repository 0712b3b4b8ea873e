package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jask/fretta/internal/note"
	"github.com/jask/fretta/internal/trainer"
	"github.com/jask/fretta/internal/tuning"
)

const sampleConfig = `
[trainer]
tuning = "D, A, D, G, A, D"
min_fret = 0
max_fret = 12

[ui]
plain = true
`

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("FRETTA_CONFIG", "")
	return dir
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fretta.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, tuning.Standard(), cfg.Trainer.Tuning)
	require.Equal(t, trainer.DefaultMinFret, cfg.Trainer.MinFret)
	require.Equal(t, trainer.DefaultMaxFret, cfg.Trainer.MaxFret)
	require.Zero(t, cfg.Trainer.Seed)
	require.False(t, cfg.UI.Plain)
	require.True(t, cfg.UI.Color)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("FRETTA_CONFIG", writeConfig(t, dir))

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, tuning.Tuning{note.D, note.A, note.D, note.G, note.A, note.D}, cfg.Trainer.Tuning)
	require.Equal(t, 0, cfg.Trainer.MinFret)
	require.Equal(t, 12, cfg.Trainer.MaxFret)
	require.True(t, cfg.UI.Plain)
}

func TestLoadDefaultPath(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, ".config", "fretta")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(sampleConfig), 0o600))

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Trainer.MaxFret)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("FRETTA_CONFIG", writeConfig(t, dir))
	t.Setenv("FRETTA_TRAINER_MAX_FRET", "7")
	t.Setenv("FRETTA_TRAINER_TUNING", "E, A, D, G")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Trainer.MaxFret)
	require.Equal(t, tuning.Tuning{note.E, note.A, note.D, note.G}, cfg.Trainer.Tuning)
	require.Equal(t, 0, cfg.Trainer.MinFret)
}

func TestFlagsOverrideEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("FRETTA_CONFIG", writeConfig(t, dir))
	t.Setenv("FRETTA_TRAINER_MAX_FRET", "7")

	fs := pflag.NewFlagSet("fretta", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--max-fret=5", "-t", "B, E", "--seed", "99"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Trainer.MaxFret)
	require.Equal(t, tuning.Tuning{note.B, note.E}, cfg.Trainer.Tuning)
	require.Equal(t, int64(99), cfg.Trainer.Seed)
	// untouched flags leave the file values alone
	require.Equal(t, 0, cfg.Trainer.MinFret)
	require.True(t, cfg.UI.Plain)
}

func TestBadTuningFailsToLoad(t *testing.T) {
	isolate(t)
	t.Setenv("FRETTA_TRAINER_TUNING", "E, H, D")

	_, err := Load(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tuning string 2: unrecognized note: H")
}

func TestFlatTuningFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "flat.toml")
	require.NoError(t, os.WriteFile(path, []byte("[trainer]\ntuning = \"Eb, Ab, Db, Gb, Bb, Eb\"\n"), 0o600))
	t.Setenv("FRETTA_CONFIG", path)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "D#, G#, C#, F#, A#, D#", cfg.Trainer.Tuning.String())
}

func TestMissingExplicitConfig(t *testing.T) {
	dir := isolate(t)
	t.Setenv("FRETTA_CONFIG", filepath.Join(dir, "nope.toml"))

	_, err := Load(nil)
	require.Error(t, err)
}

func TestTrainerOptions(t *testing.T) {
	isolate(t)
	t.Setenv("FRETTA_TRAINER_MIN_FRET", "3")
	t.Setenv("FRETTA_TRAINER_MAX_FRET", "3")

	cfg, err := Load(nil)
	require.NoError(t, err)

	tr, err := trainer.New(tuning.Standard(), cfg.TrainerOptions()...)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Next().Fret)
}
