package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pipes/internal/pipe"
)

func TestResolveDefaults(t *testing.T) {
	s, err := Config{}.Resolve()
	if err != nil {
		t.Fatal(err)
	}

	if s.ColorMode != pipe.ColorModeANSI {
		t.Errorf("ColorMode = %v, expected ansi", s.ColorMode)
	}
	if s.Palette.Name != "default" {
		t.Errorf("Palette = %q, expected default", s.Palette.Name)
	}
	if s.Interval != 20*time.Millisecond {
		t.Errorf("Interval = %v, expected 20ms", s.Interval)
	}
	if !s.ResetEnabled || s.ResetThreshold != 0.5 {
		t.Errorf("reset = %v/%v, expected enabled at 0.5", s.ResetEnabled, s.ResetThreshold)
	}
	if got := s.Kinds.Names(); len(got) != 1 || got[0] != "heavy" {
		t.Errorf("Kinds = %v, expected [heavy]", got)
	}
	if !s.Bold || s.InheritStyle {
		t.Errorf("Bold/InheritStyle = %v/%v, expected true/false", s.Bold, s.InheritStyle)
	}
	if s.NumPipes != 1 {
		t.Errorf("NumPipes = %d, expected 1", s.NumPipes)
	}
	if s.TurnChance != 0.15 {
		t.Errorf("TurnChance = %v, expected 0.15", s.TurnChance)
	}
	if s.HueShift != 0 {
		t.Errorf("HueShift = %v, expected 0", s.HueShift)
	}
}

func TestResolveEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	fromFile, err := Default().Resolve()
	if err != nil {
		t.Fatal(err)
	}
	builtin, _ := Config{}.Resolve()

	if fromFile.Interval != builtin.Interval ||
		fromFile.ResetThreshold != builtin.ResetThreshold ||
		fromFile.TurnChance != builtin.TurnChance ||
		fromFile.NumPipes != builtin.NumPipes ||
		fromFile.Bold != builtin.Bold ||
		fromFile.Kinds.String() != builtin.Kinds.String() {
		t.Errorf("embedded defaults %+v differ from built-in %+v", fromFile, builtin)
	}
}

func TestResolvePacing(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		interval time.Duration
		err      error
	}{
		{"delay", Config{DelayMS: Ptr[uint](35)}, 35 * time.Millisecond, nil},
		{"zero delay", Config{DelayMS: Ptr[uint](0)}, 0, nil},
		{"fps", Config{FPS: Ptr(50.0)}, 20 * time.Millisecond, nil},
		{"zero fps runs flat out", Config{FPS: Ptr(0.0)}, 0, nil},
		{"negative fps", Config{FPS: Ptr(-1.0)}, 0, ErrNegativeFPS},
		{"both", Config{DelayMS: Ptr[uint](10), FPS: Ptr(30.0)}, 0, ErrPacingConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.cfg.Resolve()
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("Resolve() error = %v, expected %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Interval != tt.interval {
				t.Errorf("Interval = %v, expected %v", s.Interval, tt.interval)
			}
		})
	}
}

func TestResolveResetThreshold(t *testing.T) {
	tests := []struct {
		value   float64
		enabled bool
		err     error
	}{
		{0, false, nil},
		{0.25, true, nil},
		{1, true, nil},
		{-0.1, false, ErrThresholdRange},
		{1.5, false, ErrThresholdRange},
	}

	for _, tt := range tests {
		s, err := Config{ResetThreshold: Ptr(tt.value)}.Resolve()
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("Resolve(threshold %v) error = %v, expected %v", tt.value, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(threshold %v) error = %v", tt.value, err)
			continue
		}
		if s.ResetEnabled != tt.enabled {
			t.Errorf("ResetEnabled(threshold %v) = %v, expected %v", tt.value, s.ResetEnabled, tt.enabled)
		}
	}
}

func TestResolveRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"turn chance", Config{TurnChance: Ptr(2.0)}, ErrTurnChanceRange},
		{"color mode", Config{ColorMode: Ptr("sepia")}, pipe.ErrUnknownColorMode},
		{"palette", Config{Palette: Ptr("neon")}, pipe.ErrUnknownPalette},
		{"kind", Config{Kinds: []string{"heavy", "wavy"}}, pipe.ErrUnknownKind},
		{"empty kinds", Config{Kinds: []string{}}, ErrNoKinds},
		{"blank kinds", Config{Kinds: []string{" , "}}, ErrNoKinds},
		{"nan fps", Config{FPS: Ptr(math.NaN())}, ErrNotFinite},
		{"infinite fps", Config{FPS: Ptr(math.Inf(1))}, ErrNotFinite},
		{"nan rainbow", Config{Rainbow: Ptr(math.NaN())}, ErrNotFinite},
		{"infinite rainbow", Config{Rainbow: Ptr(math.Inf(-1))}, ErrNotFinite},
		{"nan turn chance", Config{TurnChance: Ptr(math.NaN())}, ErrTurnChanceRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Resolve()
			if !errors.Is(err, tt.err) {
				t.Errorf("Resolve() error = %v, expected %v", err, tt.err)
			}
		})
	}
}

func TestResolveRejectsNonFiniteYAML(t *testing.T) {
	cfg, err := Parse([]byte("fps: .inf\nrainbow: .nan\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	_, err = cfg.Resolve()
	if !errors.Is(err, ErrNotFinite) {
		t.Errorf("Resolve() error = %v, expected ErrNotFinite", err)
	}
	if err != nil && (!strings.Contains(err.Error(), "fps") || !strings.Contains(err.Error(), "rainbow")) {
		t.Errorf("Resolve() error = %v, expected both fields named", err)
	}
}

func TestResolveReportsAllErrors(t *testing.T) {
	cfg := Config{
		TurnChance:     Ptr(-1.0),
		ResetThreshold: Ptr(7.0),
	}
	_, err := cfg.Resolve()
	if !errors.Is(err, ErrTurnChanceRange) || !errors.Is(err, ErrThresholdRange) {
		t.Errorf("Resolve() error = %v, expected both range errors", err)
	}
}

func TestResolveStyle(t *testing.T) {
	cfg := Config{
		ColorMode:    Ptr("rgb"),
		Palette:      Ptr("matrix"),
		Kinds:        []string{"curved,dots", "curved"},
		Bold:         Ptr(false),
		InheritStyle: Ptr(true),
		NumPipes:     Ptr[uint](4),
		Rainbow:      Ptr(2.5),
	}
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}

	if s.ColorMode != pipe.ColorModeRGB || s.Palette.Name != "matrix" {
		t.Errorf("color = %v/%s, expected rgb/matrix", s.ColorMode, s.Palette.Name)
	}
	if s.Kinds.String() != "curved,dots" {
		t.Errorf("Kinds = %s, expected curved,dots", s.Kinds)
	}
	if s.Bold || !s.InheritStyle || s.NumPipes != 4 || s.HueShift != 2.5 {
		t.Errorf("Settings = %+v", s)
	}
}

func TestMerge(t *testing.T) {
	base := Config{
		ColorMode:      Ptr("rgb"),
		DelayMS:        Ptr[uint](40),
		ResetThreshold: Ptr(0.8),
		Kinds:          []string{"light"},
	}
	over := Config{
		FPS:            Ptr(60.0),
		ResetThreshold: Ptr(0.0),
	}

	merged := base.Merge(over)

	if *merged.ColorMode != "rgb" {
		t.Errorf("ColorMode = %s, expected rgb", *merged.ColorMode)
	}
	if merged.DelayMS != nil {
		t.Errorf("DelayMS = %v, expected fps to replace it", *merged.DelayMS)
	}
	if merged.FPS == nil || *merged.FPS != 60 {
		t.Errorf("FPS = %v, expected 60", merged.FPS)
	}
	if *merged.ResetThreshold != 0 {
		t.Errorf("ResetThreshold = %v, expected explicit 0 to win", *merged.ResetThreshold)
	}
	if merged.Kinds[0] != "light" {
		t.Errorf("Kinds = %v, expected [light]", merged.Kinds)
	}
	if _, err := merged.Resolve(); err != nil {
		t.Errorf("Resolve() error = %v", err)
	}
}

func TestMergeKeepsConflictFromSameLayer(t *testing.T) {
	flags := Config{DelayMS: Ptr[uint](10), FPS: Ptr(30.0)}

	_, err := Default().Merge(flags).Resolve()
	if !errors.Is(err, ErrPacingConflict) {
		t.Errorf("Resolve() error = %v, expected ErrPacingConflict", err)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("color_mode: none\nkinds: [emoji, sus]\nreset_threshold: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.ColorMode != "none" {
		t.Errorf("ColorMode = %s, expected none", *cfg.ColorMode)
	}
	if len(cfg.Kinds) != 2 || cfg.Kinds[1] != "sus" {
		t.Errorf("Kinds = %v, expected [emoji sus]", cfg.Kinds)
	}
	if cfg.ResetThreshold == nil || *cfg.ResetThreshold != 0 {
		t.Errorf("ResetThreshold = %v, expected explicit 0", cfg.ResetThreshold)
	}
	if cfg.Palette != nil {
		t.Errorf("Palette = %v, expected unset", *cfg.Palette)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != nil || cfg.Kinds != nil {
		t.Errorf("Parse(nil) = %+v, expected empty config", cfg)
	}
}

func TestParseUnknownKey(t *testing.T) {
	if _, err := Parse([]byte("colour_mode: rgb\n")); err == nil {
		t.Error("Parse() should reject unknown keys")
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Config{ColorMode: Ptr("rgb"), Kinds: []string{"heavy", "dots"}})
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, "color_mode: rgb") {
		t.Errorf("Marshal() = %q, expected color_mode", out)
	}
	if !strings.Contains(out, "kinds: [heavy, dots]") {
		t.Errorf("Marshal() = %q, expected flow-style kinds", out)
	}
	if strings.Contains(out, "palette") {
		t.Errorf("Marshal() = %q, expected unset fields omitted", out)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if !strings.Contains(string(GetDefaultYAML()), "reset_threshold: 0.5") {
		t.Error("embedded defaults should document reset_threshold")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func isolate(t *testing.T) (xdg, home string) {
	t.Helper()
	xdg, home = t.TempDir(), t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)
	return xdg, home
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, "palette: pastel\n")

	cfg, used, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if used != path {
		t.Errorf("Load() path = %q, expected %q", used, path)
	}
	if *cfg.Palette != "pastel" {
		t.Errorf("Palette = %s, expected pastel", *cfg.Palette)
	}
	if cfg.ResetThreshold == nil || *cfg.ResetThreshold != 0.5 {
		t.Errorf("ResetThreshold = %v, expected default 0.5 underneath", cfg.ResetThreshold)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected not-exist", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	xdg, home := isolate(t)
	xdgPath := filepath.Join(xdg, "pipes", FileName)
	homePath := filepath.Join(home, ".pipes", FileName)

	writeFile(t, homePath, "palette: darker\n")
	cfg, used, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if used != homePath || *cfg.Palette != "darker" {
		t.Errorf("Load() = %s from %q, expected darker from %q", *cfg.Palette, used, homePath)
	}

	writeFile(t, xdgPath, "palette: matrix\n")
	cfg, used, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if used != xdgPath || *cfg.Palette != "matrix" {
		t.Errorf("Load() = %s from %q, expected matrix from %q", *cfg.Palette, used, xdgPath)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, used, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if used != "" {
		t.Errorf("Load() path = %q, expected embedded default", used)
	}
	if *cfg.ColorMode != "ansi" {
		t.Errorf("ColorMode = %s, expected ansi", *cfg.ColorMode)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	xdg, _ := isolate(t)
	writeFile(t, filepath.Join(xdg, "pipes", FileName), "kinds: {not: a list}\n")

	if _, _, err := Load(""); err == nil {
		t.Error("Load() should report a broken config file")
	}
}
