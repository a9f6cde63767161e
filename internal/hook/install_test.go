package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testInstaller(t *testing.T) *Installer {
	t.Helper()
	return &Installer{
		HooksDir:   t.TempDir(),
		Executable: "/usr/local/bin/logbook",
		Logger:     quietLogger(),
	}
}

func TestInstallEvent_WritesDispatcherScript(t *testing.T) {
	ins := testInstaller(t)
	if err := ins.installEvent("commit-msg"); err != nil {
		t.Fatalf("installEvent: %v", err)
	}

	target := filepath.Join(ins.HooksDir, "commit-msg")
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	script := string(data)
	if !strings.Contains(script, scriptMarker) {
		t.Errorf("marker missing:\n%s", script)
	}
	if !strings.Contains(script, "hook commit-msg") {
		t.Errorf("dispatch line missing:\n%s", script)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0o111 == 0 {
		t.Error("hook script not executable")
	}
}

func TestInstallEvent_PreservesForeignHook(t *testing.T) {
	ins := testInstaller(t)
	target := filepath.Join(ins.HooksDir, "commit-msg")
	foreign := "#!/bin/sh\necho my precious hook\n"
	if err := os.WriteFile(target, []byte(foreign), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := ins.installEvent("commit-msg"); err != nil {
		t.Fatalf("installEvent: %v", err)
	}

	preserved, err := os.ReadFile(filepath.Join(ins.HooksDir, "commit-msg.local"))
	if err != nil {
		t.Fatalf("preserved hook missing: %v", err)
	}
	if string(preserved) != foreign {
		t.Errorf("preserved content = %q", preserved)
	}
	replaced, _ := os.ReadFile(target)
	if !strings.Contains(string(replaced), scriptMarker) {
		t.Errorf("dispatcher not installed:\n%s", replaced)
	}
}

func TestInstallEvent_ReinstallOverwritesOwnScript(t *testing.T) {
	ins := testInstaller(t)
	if err := ins.installEvent("commit-msg"); err != nil {
		t.Fatal(err)
	}
	if err := ins.installEvent("commit-msg"); err != nil {
		t.Fatalf("reinstall: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ins.HooksDir, "commit-msg.local")); err == nil {
		t.Error("reinstall preserved our own script as a foreign hook")
	}
}

func TestInstallEvent_RefusesDoublePreserve(t *testing.T) {
	ins := testInstaller(t)
	if err := os.WriteFile(filepath.Join(ins.HooksDir, "commit-msg"), []byte("#!/bin/sh\nfirst\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ins.HooksDir, "commit-msg.local"), []byte("#!/bin/sh\nsecond\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := ins.installEvent("commit-msg"); err == nil {
		t.Error("two foreign hooks silently merged")
	}
}
