package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func ptr[T any](v T) *T { return &v }

func TestResolveDefaults(t *testing.T) {
	s, err := Resolve(RawConfig{}, EnvConfig{}, Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Input != "input.txt" || s.Experiments != 10000 || s.MaxSteps != 100 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Seed != nil {
		t.Fatalf("seed should default to unset, got %d", *s.Seed)
	}
	if s.Format != "text" || s.BoardPath != "" || s.CardSize != DefaultCardSize {
		t.Fatalf("unexpected output defaults: %+v", s)
	}
	if s.Watch || s.WatchInterval != time.Second || s.LogLevel != "info" {
		t.Fatalf("unexpected watch/log defaults: %+v", s)
	}
}

func TestLoadMergedLaterFileWins(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", `
version: "1"
simulation:
  experiments: 500
  seed: 7
input:
  path: base.txt
output:
  format: yaml
  board:
    path: board.png
`)
	local := writeFile(t, dir, "local.yaml", `
version: "2"
simulation:
  experiments: 900
output:
  board:
    card_size: 90
watch:
  enabled: true
  interval: 250ms
`)

	l := NewLoader()
	raw, err := l.LoadMerged(base, local)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Resolve(raw, EnvConfig{}, Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Version != "2" || s.Experiments != 900 || s.Input != "base.txt" {
		t.Fatalf("merge lost values: %+v", s)
	}
	if s.Seed == nil || *s.Seed != 7 {
		t.Fatalf("seed not carried: %v", s.Seed)
	}
	if s.Format != "yaml" || s.BoardPath != "board.png" || s.CardSize != 90 {
		t.Fatalf("output merge wrong: %+v", s)
	}
	if !s.Watch || s.WatchInterval != 250*time.Millisecond {
		t.Fatalf("watch merge wrong: %+v", s)
	}
}

func TestResolvePrecedence(t *testing.T) {
	raw := RawConfig{Simulation: SimulationConfig{Experiments: ptr(100), MaxSteps: ptr(50)}}
	e := EnvConfig{Experiments: ptr(200), Format: ptr("json")}
	o := Overrides{Experiments: ptr(300)}

	s, err := Resolve(raw, e, o)
	if err != nil {
		t.Fatal(err)
	}
	if s.Experiments != 300 {
		t.Fatalf("flags should win, got %d", s.Experiments)
	}
	if s.MaxSteps != 50 {
		t.Fatalf("file value lost, got %d", s.MaxSteps)
	}
	if s.Format != "json" {
		t.Fatalf("env value lost, got %q", s.Format)
	}
}

func TestResolveEmptyPathDisablesOutput(t *testing.T) {
	raw := RawConfig{Output: &OutputConfig{
		Board: &BoardConfig{Path: ptr("board.png")},
		Pie:   ptr("pie.png"),
	}}

	s, err := Resolve(raw, EnvConfig{}, Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	if s.BoardPath != "board.png" || s.PiePath != "pie.png" {
		t.Fatalf("file paths lost: %+v", s)
	}

	s, err = Resolve(raw, EnvConfig{Pie: ptr("env.png")}, Overrides{Board: ptr("")})
	if err != nil {
		t.Fatal(err)
	}
	if s.BoardPath != "" {
		t.Fatalf("explicit empty board path should disable the render, got %q", s.BoardPath)
	}
	if s.PiePath != "env.png" {
		t.Fatalf("env pie path lost, got %q", s.PiePath)
	}

	s, err = Resolve(raw, EnvConfig{}, Overrides{Pie: ptr("")})
	if err != nil {
		t.Fatal(err)
	}
	if s.PiePath != "" || s.BoardPath != "board.png" {
		t.Fatalf("only the pie should be disabled: %+v", s)
	}
}

func TestValidateRaw(t *testing.T) {
	bad := RawConfig{
		Simulation: SimulationConfig{Experiments: ptr(0), MaxSteps: ptr(-1)},
		Output:     &OutputConfig{Format: "xml", Board: &BoardConfig{CardSize: ptr(2)}},
		Log:        &LogConfig{Level: "loud"},
		Watch:      &WatchConfig{Interval: ptr(time.Duration(0))},
	}
	err := ValidateRaw(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"experiments", "max_steps", "format", "card_size", "log.level", "watch.interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	if err := ValidateRaw(Defaults()); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader()
	if _, err := l.Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	unknown := writeFile(t, dir, "unknown.yaml", "simulation:\n  trials: 3\n")
	if _, err := l.Load(unknown); err == nil {
		t.Fatal("expected error for unknown key")
	}
	empty := writeFile(t, dir, "empty.yaml", "")
	raw, err := l.Load(empty)
	if err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if raw.Simulation.Experiments != nil {
		t.Fatalf("empty file produced values: %+v", raw)
	}
}

func TestLoaderCacheAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", "simulation:\n  experiments: 5\n")
	l := NewLoader()
	if _, err := l.Load(path); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "c.yaml", "simulation:\n  experiments: 6\n")

	raw, err := l.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *raw.Simulation.Experiments != 5 {
		t.Fatalf("expected cached value 5, got %d", *raw.Simulation.Experiments)
	}

	l.Invalidate()
	raw, err = l.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *raw.Simulation.Experiments != 6 {
		t.Fatalf("expected fresh value 6, got %d", *raw.Simulation.Experiments)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PANICLAB_EXPERIMENTS", "42")
	t.Setenv("PANICLAB_SEED", "9")
	t.Setenv("PANICLAB_CONFIG", "a.yaml,b.yaml")

	e, err := ParseEnv()
	if err != nil {
		t.Fatal(err)
	}
	if e.Experiments == nil || *e.Experiments != 42 {
		t.Fatalf("experiments = %v", e.Experiments)
	}
	if e.Seed == nil || *e.Seed != 9 {
		t.Fatalf("seed = %v", e.Seed)
	}
	if e.Input != nil {
		t.Fatalf("unset input should stay nil, got %q", *e.Input)
	}
	if len(e.ConfigPaths) != 2 || e.ConfigPaths[1] != "b.yaml" {
		t.Fatalf("config paths = %v", e.ConfigPaths)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("PANICLAB_MAX_STEPS", "lots")
	_, err := ParseEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestFileWatcherPoll(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ring.txt", "lab red\n")
	w := NewFileWatcher([]string{path}, time.Millisecond)

	if changed := w.Poll(); len(changed) != 0 {
		t.Fatalf("nothing changed yet, got %v", changed)
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	changed := w.Poll()
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("expected %s to change, got %v", path, changed)
	}
	if changed := w.Poll(); len(changed) != 0 {
		t.Fatalf("change reported twice: %v", changed)
	}
}

func TestFileWatcherSetPaths(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", "lab red\n")
	moved := writeFile(t, dir, "new.txt", "lab green\n")
	w := NewFileWatcher([]string{old}, time.Millisecond)

	w.SetPaths([]string{moved})
	later := time.Now().Add(time.Hour)
	for _, p := range []string{old, moved} {
		if err := os.Chtimes(p, later, later); err != nil {
			t.Fatal(err)
		}
	}
	changed := w.Poll()
	if len(changed) != 1 || changed[0] != moved {
		t.Fatalf("only the new path should be reported, got %v", changed)
	}
}
