package tui

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/muesli/termenv"
)

func TestSessionProfile(t *testing.T) {
	tests := []struct {
		term     string
		environ  []string
		expected termenv.Profile
	}{
		{"xterm-256color", nil, termenv.ANSI256},
		{"xterm", nil, termenv.ANSI},
		{"xterm-kitty", nil, termenv.TrueColor},
		{"xterm", []string{"COLORTERM=truecolor"}, termenv.TrueColor},
		{"xterm-256color", []string{"LANG=C", "COLORTERM=24bit"}, termenv.TrueColor},
		{"screen-256color", []string{"COLORTERM=truecolor"}, termenv.ANSI256},
		{"xterm-256color", []string{"NO_COLOR=1"}, termenv.Ascii},
		{"xterm-256color", []string{"CLICOLOR=0"}, termenv.Ascii},
		{"dumb", []string{"CLICOLOR_FORCE=1"}, termenv.ANSI},
		{"vt100", []string{"TERM=xterm-256color"}, termenv.Ascii},
		{"", []string{"TERM=xterm-256color"}, termenv.ANSI256},
		{"dumb", nil, termenv.Ascii},
		{"", nil, termenv.Ascii},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if got := sessionProfile(&buf, tt.term, tt.environ); got != tt.expected {
			t.Errorf("sessionProfile(%q, %v) = %v, expected %v", tt.term, tt.environ, got, tt.expected)
		}
		if buf.Len() != 0 {
			t.Errorf("sessionProfile(%q, %v) wrote %q to the session", tt.term, tt.environ, buf.String())
		}
	}
}

func TestSessionConsoleTracksWindow(t *testing.T) {
	var buf bytes.Buffer
	windows := make(chan ssh.Window)
	c := newSessionConsole(&buf, ssh.Window{Width: 80, Height: 24}, windows)
	defer c.Close()

	if w, h, _ := c.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %dx%d, expected 80x24", w, h)
	}

	windows <- ssh.Window{Width: 120, Height: 40}

	select {
	case size := <-c.Resizes():
		if size.Width != 120 || size.Height != 40 {
			t.Errorf("resize = %v, expected 120x40", size)
		}
	case <-time.After(time.Second):
		t.Fatal("no resize delivered")
	}
	if w, h, _ := c.Size(); w != 120 || h != 40 {
		t.Errorf("Size() = %dx%d, expected 120x40", w, h)
	}

	if _, err := c.Write([]byte("x")); err != nil || buf.String() != "x" {
		t.Errorf("Write() went to %q, %v", buf.String(), err)
	}
}

func TestSessionConsoleDeliversLatestResize(t *testing.T) {
	windows := make(chan ssh.Window)
	c := newSessionConsole(&bytes.Buffer{}, ssh.Window{}, windows)
	defer c.Close()

	windows <- ssh.Window{Width: 10, Height: 10}
	windows <- ssh.Window{Width: 20, Height: 20}
	windows <- ssh.Window{Width: 30, Height: 30}

	deadline := time.After(time.Second)
	for {
		select {
		case size := <-c.Resizes():
			if size.Width == 30 {
				return
			}
		case <-deadline:
			t.Fatal("latest resize never delivered")
		}
	}
}

func TestSessionConsoleCloseIsIdempotent(t *testing.T) {
	c := newSessionConsole(&bytes.Buffer{}, ssh.Window{}, make(chan ssh.Window))
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewSSHServerCreatesHostKeyDir(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := newSSHServer(cfg, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
}
