//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// maidEnv isolates a child process: its own HOME and config dir, a fake
// backend and short request timeouts
func maidEnv(home, apiURL string) []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"MAID_API_URL="+apiURL,
		"MAID_DB_PATH="+filepath.Join(home, "prefs.db"),
		"MAID_REQUEST_TIMEOUT=3s",
	)
}

func TestMain(m *testing.M) {
	os.Exit(runSuite(m))
}

func runSuite(m *testing.M) int {
	buildDir, err := os.MkdirTemp("", "maidadmin-bin-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create build dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(buildDir)

	binPath = filepath.Join(buildDir, "maidadmin_e2e")
	build := exec.Command("go", "build", "-o", binPath, ".")
	build.Dir = ".."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "build maidadmin: %v\n", err)
		return 1
	}

	// The binary must start with a config dir it has never seen
	home, err := os.MkdirTemp("", "maidadmin-smoke-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create smoke home: %v\n", err)
		return 1
	}
	defer os.RemoveAll(home)

	smoke := exec.Command(binPath, "theme")
	smoke.Env = maidEnv(home, "http://127.0.0.1:1")
	if out, err := smoke.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "smoke run failed: %v\n%s", err, out)
		return 1
	}

	return m.Run()
}
