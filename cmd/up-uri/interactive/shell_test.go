package interactive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/uprotocol/up-go/cmd/up-uri/commands"
)

func newTestShell() (*Shell, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewShell(commands.NewSession(&buf, nil)), &buf
}

func TestShellEncode(t *testing.T) {
	sh, buf := newTestShell()

	if !sh.Execute("encode long //vcu.vin/body.access/1/door") {
		t.Fatal("shell exited")
	}
	if got := strings.TrimSpace(buf.String()); got != "//vcu.vin/body.access/1/door" {
		t.Errorf("got %q", got)
	}
}

func TestShellFormSwitch(t *testing.T) {
	sh, buf := newTestShell()

	sh.Execute("form micro")
	if sh.form != commands.FormMicro {
		t.Fatalf("form: got %q", sh.form)
	}
	buf.Reset()

	sh.Execute("decode 01004e1f752ffe00")
	if !strings.Contains(buf.String(), "version_major: 254") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	sh.Execute("form binary")
	if !strings.Contains(buf.String(), "Unknown form: binary") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if sh.form != commands.FormMicro {
		t.Errorf("form changed to %q", sh.form)
	}
}

func TestShellErrorsAreReported(t *testing.T) {
	sh, buf := newTestShell()

	if !sh.Execute("decode 0100") {
		t.Fatal("shell exited on error")
	}
	if !strings.Contains(buf.String(), "Error: URI is empty or not in micro form") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestShellUsageAndUnknown(t *testing.T) {
	sh, buf := newTestShell()

	sh.Execute("classify")
	sh.Execute("frobnicate")
	sh.Execute("   ")

	out := buf.String()
	if !strings.Contains(out, "Usage: classify <uri>") {
		t.Errorf("missing usage:\n%s", out)
	}
	if !strings.Contains(out, "Unknown command: frobnicate") {
		t.Errorf("missing unknown command:\n%s", out)
	}
}

func TestShellQuit(t *testing.T) {
	sh, _ := newTestShell()

	if sh.Execute("quit") {
		t.Error("quit should stop the shell")
	}
}
