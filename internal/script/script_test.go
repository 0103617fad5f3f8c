// SPDX-License-Identifier: MPL-2.0

package script

import (
	"os"
	"strings"
	"testing"
)

func TestMaterialize(t *testing.T) {
	path, err := Materialize("echo hi && tail -f /var/log/syslog")
	if err != nil {
		t.Fatalf("Materialize() unexpected error: %v", err)
	}
	defer os.Remove(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read script: %v", err)
	}
	content := string(raw)

	t.Run("starts with a bash shebang", func(t *testing.T) {
		if !strings.HasPrefix(content, "#!/bin/bash\n") {
			t.Errorf("script does not start with shebang: %q", content[:20])
		}
	})

	t.Run("changes to the home directory before the command", func(t *testing.T) {
		cdIdx := strings.Index(content, "\ncd ~\n")
		cmdIdx := strings.Index(content, "echo hi && tail -f /var/log/syslog")
		if cdIdx == -1 || cmdIdx == -1 || cdIdx > cmdIdx {
			t.Errorf("expected 'cd ~' before the command, got:\n%s", content)
		}
	})

	t.Run("command text is verbatim", func(t *testing.T) {
		if !strings.Contains(content, "echo hi && tail -f /var/log/syslog") {
			t.Errorf("command not found verbatim in script:\n%s", content)
		}
	})

	t.Run("ends by dropping into an interactive shell", func(t *testing.T) {
		if !strings.Contains(content, "exec bash") {
			t.Errorf("script missing interactive trailer:\n%s", content)
		}
	})

	t.Run("uses LF line endings only", func(t *testing.T) {
		if strings.Contains(content, "\r") {
			t.Error("script contains carriage returns")
		}
	})
}

func TestMaterialize_UniquePaths(t *testing.T) {
	a, err := Materialize("echo a")
	if err != nil {
		t.Fatalf("Materialize() unexpected error: %v", err)
	}
	defer os.Remove(a)
	b, err := Materialize("echo b")
	if err != nil {
		t.Fatalf("Materialize() unexpected error: %v", err)
	}
	defer os.Remove(b)

	if a == b {
		t.Errorf("Materialize() returned the same path twice: %s", a)
	}
}

func TestTranslatePath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"drive path", `C:\Users\alice\AppData\Local\Temp\wslrun-1.sh`, "/mnt/c/Users/alice/AppData/Local/Temp/wslrun-1.sh"},
		{"drive letter lowercased", `D:\tmp\x.sh`, "/mnt/d/tmp/x.sh"},
		{"forward slashes accepted", `C:/Temp/x.sh`, "/mnt/c/Temp/x.sh"},
		{"only first colon dropped", `C:\a:b\x.sh`, "/mnt/c/a:b/x.sh"},
		{"posix path unchanged", "/tmp/wslrun-1.sh", "/tmp/wslrun-1.sh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TranslatePath(tc.in); got != tc.want {
				t.Errorf("TranslatePath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	path, err := Materialize("echo bye")
	if err != nil {
		t.Fatalf("Materialize() unexpected error: %v", err)
	}

	Remove(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Remove() left the script behind: %v", err)
	}

	// Removing again (or removing nothing) must not panic.
	Remove(path)
	Remove("")
}
