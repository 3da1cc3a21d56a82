package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMissionConfigDefaults(t *testing.T) {
	cfg, err := ParseMissionConfig([]byte("commander: \"Tester\"\n"))
	if err != nil {
		t.Fatalf("ParseMissionConfig() error: %v", err)
	}

	if cfg.Title != "Mission To The Moon" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if len(cfg.Stargaze.Points) != 6 {
		t.Errorf("default constellation has %d points, want 6", len(cfg.Stargaze.Points))
	}
	if len(cfg.Stargaze.Edges) != 6 {
		t.Errorf("default constellation has %d edges, want 6", len(cfg.Stargaze.Edges))
	}
	if cfg.Stargaze.Points[5] != (ConstellationPoint{X: 300, Y: 200}) {
		t.Errorf("last point = %+v, want {300 200}", cfg.Stargaze.Points[5])
	}
	if len(cfg.ConfettiPalette()) != 4 {
		t.Errorf("palette has %d colors, want 4", len(cfg.ConfettiPalette()))
	}
	if cfg.Terminal.StartDelay != 500 {
		t.Errorf("Terminal.StartDelay = %d, want 500", cfg.Terminal.StartDelay)
	}
}

func TestParseMissionConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "edge out of range",
			yaml: `
stargaze:
  points: [{x: 0, y: 0}, {x: 1, y: 1}]
  edges: [[0, 2]]
`,
			wantErr: "unknown point 2",
		},
		{
			name: "memory without key",
			yaml: `
memories:
  - title: "No key"
`,
			wantErr: "key is required",
		},
		{
			name: "duplicate memory key",
			yaml: `
memories:
  - key: rose
  - key: rose
`,
			wantErr: "duplicate key",
		},
		{
			name:    "bad confetti color",
			yaml:    "confetti:\n  colors: [\"#zzzzzz\"]\n",
			wantErr: "invalid color",
		},
		{
			name:    "malformed yaml",
			yaml:    "title: [unterminated\n",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMissionConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestMissionConfigMemoryLookup(t *testing.T) {
	cfg, err := ParseMissionConfig([]byte(`
memories:
  - { key: rose, title: "White Rose Planet", body: "A rose." }
  - { key: future, title: "Future Nebula", body: "Us." }
`))
	if err != nil {
		t.Fatalf("ParseMissionConfig() error: %v", err)
	}

	m, ok := cfg.Memory("future")
	if !ok || m.Title != "Future Nebula" {
		t.Errorf("Memory(future) = %+v, %v", m, ok)
	}
	if _, ok := cfg.Memory("comet"); ok {
		t.Error("unknown key should not be found")
	}
}

func TestParseMissionConfigFadeLines(t *testing.T) {
	cfg, err := ParseMissionConfig([]byte(`
proposal:
  yes: "Yes"
  no: "No"
  lines:
    - { text: "Hello", delay: 0, large: true }
    - { text: "World", delay: 1000 }
`))
	if err != nil {
		t.Fatalf("ParseMissionConfig() error: %v", err)
	}
	lines := cfg.Proposal.Lines
	if len(lines) != 2 || lines[1].Delay != 1000 || !lines[0].Large {
		t.Errorf("proposal lines = %+v", lines)
	}
	if cfg.Proposal.Yes != "Yes" || cfg.Proposal.No != "No" {
		t.Errorf("proposal buttons = %q / %q", cfg.Proposal.Yes, cfg.Proposal.No)
	}
}

func TestLoadMissionConfigBundledContent(t *testing.T) {
	cfg, err := LoadMissionConfig(filepath.Join("..", "..", "data", "mission.yaml"))
	if err != nil {
		t.Fatalf("LoadMissionConfig() error: %v", err)
	}
	if len(cfg.Terminal.Lines) != 9 {
		t.Errorf("terminal has %d lines, want 9", len(cfg.Terminal.Lines))
	}
	if len(cfg.Memories) != 3 {
		t.Errorf("bundled content has %d memories, want 3", len(cfg.Memories))
	}
	for _, key := range []string{"rose", "chocolate", "future"} {
		if _, ok := cfg.Memory(key); !ok {
			t.Errorf("memory %q missing", key)
		}
	}
}

func TestLoadMissionConfigMissingFile(t *testing.T) {
	_, err := LoadMissionConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(unwrapAll(err)) {
		t.Errorf("error should wrap a not-exist error: %v", err)
	}
}

func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		next := u.Unwrap()
		if next == nil {
			return err
		}
		err = next
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		wantErr bool
	}{
		{"#64ffda", 0x64, 0xff, 0xda, false},
		{"e95aa3", 0xe9, 0x5a, 0xa3, false},
		{"#fff", 0xff, 0xff, 0xff, false},
		{"#12345", 0, 0, 0, true},
		{"#gggggg", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && (c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 0xff) {
				t.Errorf("ParseHexColor(%q) = %+v", tt.in, c)
			}
		})
	}
}
