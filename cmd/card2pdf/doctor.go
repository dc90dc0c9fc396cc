package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alnah/go-card2pdf/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string         `json:"status"` // "ready", "warnings", "errors"
	Assets    assetsInfo     `json:"assets"`
	StyleSets []styleSetInfo `json:"style_sets"`
	Env       envInfo        `json:"environment"`
	System    systemInfo     `json:"system"`
	Warnings  []string       `json:"warnings,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
}

// assetsInfo holds the custom assets directory check.
type assetsInfo struct {
	Path   string `json:"path,omitempty"` // empty = built-in assets only
	Source string `json:"source,omitempty"`
	Found  bool   `json:"found"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	CPUs          int    `json:"cpus"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
			CPUs: runtime.GOMAXPROCS(0),
		},
	}

	checkAssets(result)
	checkStyleSets(result)
	checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkAssets verifies the custom assets directory named by the environment.
func checkAssets(result *doctorResult) {
	path := os.Getenv(hints.AssetsEnv)
	if path == "" {
		return
	}
	result.Assets.Path = path
	result.Assets.Source = hints.AssetsEnv

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s points to %s, which is not a directory", hints.AssetsEnv, path))
		return
	}
	result.Assets.Found = true

	if _, err := os.Stat(filepath.Join(path, "fonts")); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("No fonts directory under %s; TrueType style sets will not load", path))
	}
}

// checkStyleSets loads every style set. The built-in standard set needs no
// files, so only a broken listing is an error.
func checkStyleSets(result *doctorResult) {
	path := result.Assets.Path
	if path != "" && !result.Assets.Found {
		path = ""
	}

	infos, err := describeStyleSets(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Listing style sets: %v", err))
		return
	}
	result.StyleSets = infos

	for _, info := range infos {
		if !info.Ready {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Style set %s unavailable: %s", info.Name, info.Problem))
		}
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("CARD2PDF_CONTAINER") == "1" {
		return true, "CARD2PDF_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used for atomic writes.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	f, err := os.CreateTemp(tmpDir, "card2pdf-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "card2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Assets")
	switch {
	case r.Assets.Path == "":
		fmt.Fprintln(w, "  [OK] Built-in assets only")
	case r.Assets.Found:
		fmt.Fprintf(w, "  [OK] Custom assets at %s (%s)\n", r.Assets.Path, r.Assets.Source)
	default:
		fmt.Fprintf(w, "  [ERROR] Custom assets not found at %s\n", r.Assets.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Style sets")
	for _, s := range r.StyleSets {
		if s.Ready {
			fmt.Fprintf(w, "  [OK] %s\n", s.Name)
		} else {
			fmt.Fprintf(w, "  [WARN] %s: unavailable\n", s.Name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s (%d CPUs)\n", r.Env.OS, r.Env.Arch, r.Env.CPUs)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to render")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
