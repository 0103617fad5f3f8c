// SPDX-License-Identifier: MPL-2.0

package identity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	goruntime "runtime"
	"testing"
	"time"
)

// fakeWSL writes an executable stub standing in for wsl.exe. The stub
// receives the same argv shape the Lister builds: -d <distro> -- bash -c <cmd>.
func fakeWSL(t *testing.T, script string) string {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("skipping: fake wsl stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "wsl")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write fake wsl: %v", err)
	}
	return path
}

func TestLister_List(t *testing.T) {
	t.Run("parses discovered users", func(t *testing.T) {
		stub := fakeWSL(t, "echo root\necho alice\n")
		l := NewLister(WithWSLPath(stub))

		users, err := l.List(context.Background(), "Ubuntu")
		if err != nil {
			t.Fatalf("List() unexpected error: %v", err)
		}
		want := []string{"root", "alice"}
		if !reflect.DeepEqual(users, want) {
			t.Errorf("List() = %v, want %v", users, want)
		}
	})

	t.Run("keeps partial output despite stderr warnings", func(t *testing.T) {
		stub := fakeWSL(t, "echo root\necho 'awk: warning: something' >&2\n")
		l := NewLister(WithWSLPath(stub))

		users, err := l.List(context.Background(), "Ubuntu")
		if err != nil {
			t.Fatalf("List() unexpected error: %v", err)
		}
		if !reflect.DeepEqual(users, []string{"root"}) {
			t.Errorf("List() = %v, want [root]", users)
		}
	})

	t.Run("falls back to reading passwd when awk yields nothing", func(t *testing.T) {
		stub := fakeWSL(t, `case "$6" in
*awk*) echo 'bash: awk: command not found' >&2; exit 127 ;;
*passwd*) printf 'root:x:0:0::/root:/bin/bash\nalice:x:1000:1000::/home/alice:/bin/bash\nnobody:x:65534:65534::/:/sbin/nologin\n' ;;
esac
`)
		l := NewLister(WithWSLPath(stub))

		users, err := l.List(context.Background(), "Ubuntu")
		if err != nil {
			t.Fatalf("List() unexpected error: %v", err)
		}
		want := []string{"root", "alice"}
		if !reflect.DeepEqual(users, want) {
			t.Errorf("List() = %v, want %v", users, want)
		}
	})

	t.Run("reports ErrNoUsers when nothing is found", func(t *testing.T) {
		stub := fakeWSL(t, "exit 0\n")
		l := NewLister(WithWSLPath(stub))

		_, err := l.List(context.Background(), "Ubuntu")
		if !errors.Is(err, ErrNoUsers) {
			t.Errorf("List() error = %v, want ErrNoUsers", err)
		}
	})

	t.Run("reports ErrTimeout when the distro does not answer", func(t *testing.T) {
		stub := fakeWSL(t, "sleep 5\n")
		l := NewLister(WithWSLPath(stub), WithTimeout(100*time.Millisecond))

		_, err := l.List(context.Background(), "Ubuntu")
		if !errors.Is(err, ErrTimeout) {
			t.Errorf("List() error = %v, want ErrTimeout", err)
		}
	})
}
