// Package gradle drives the external Gradle toolchain against a scaffolded
// project directory and locates the APK it produces. The toolchain itself is
// opaque: this package only launches it, captures its output and interprets
// the exit code.
package gradle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TailLines is the retention window for combined build output.
const TailLines = 20

// BuildResult reports one toolchain invocation.
type BuildResult struct {
	Success      bool     `json:"success"`
	ArtifactPath string   `json:"apk_path,omitempty"`
	SizeBytes    int64    `json:"apk_size,omitempty"`
	Tail         []string `json:"output,omitempty"`
	Err          string   `json:"error,omitempty"`
}

// Invoker runs gradle builds with the SDK root injected into the
// subprocess environment.
type Invoker struct {
	SDKRoot string
}

func NewInvoker(sdkRoot string) *Invoker {
	return &Invoker{SDKRoot: sdkRoot}
}

// Invoke runs the assemble task for mode ("debug" or "release") in
// projectDir. A project-local gradlew wrapper takes precedence over a
// system gradle. The subprocess runs with its working directory set to the
// project, so the caller's working directory is never touched.
//
// A non-zero exit, a context timeout, or a zero exit with no APK on disk
// all yield Success=false with the retained output tail attached; err is
// reserved for failures to launch the process at all.
func (inv *Invoker) Invoke(ctx context.Context, projectDir, mode string) (*BuildResult, error) {
	task := "assembleDebug"
	if mode == "release" {
		task = "assembleRelease"
	}

	bin := "gradle"
	if wrapper := filepath.Join(projectDir, "gradlew"); fileExists(wrapper) {
		bin = wrapper
	}

	cmd := exec.CommandContext(ctx, bin, task)
	cmd.Dir = projectDir
	cmd.Env = os.Environ()
	if inv.SDKRoot != "" {
		cmd.Env = append(cmd.Env,
			"ANDROID_SDK_ROOT="+inv.SDKRoot,
			"ANDROID_HOME="+inv.SDKRoot,
		)
	}

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", bin, err)
	}

	tailCh := make(chan []string, 1)
	go func() {
		tailCh <- collectTail(pr)
	}()

	waitErr := cmd.Wait()
	pw.Close()
	tail := <-tailCh

	if ctx.Err() == context.DeadlineExceeded {
		return &BuildResult{Success: false, Tail: tail, Err: "timeout"}, nil
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return &BuildResult{
				Success: false,
				Tail:    tail,
				Err:     fmt.Sprintf("build failed with exit code %d", exitErr.ExitCode()),
			}, nil
		}
		return nil, fmt.Errorf("wait %s: %w", bin, waitErr)
	}

	apk := findArtifact(projectDir, mode)
	if apk == "" {
		return &BuildResult{Success: false, Tail: tail, Err: "apk file not found after build"}, nil
	}

	info, err := os.Stat(apk)
	if err != nil {
		return &BuildResult{Success: false, Tail: tail, Err: "apk file not found after build"}, nil
	}

	return &BuildResult{
		Success:      true,
		ArtifactPath: apk,
		SizeBytes:    info.Size(),
		Tail:         tail,
	}, nil
}

// collectTail reads combined output line by line, retaining the last
// TailLines lines.
func collectTail(r io.Reader) []string {
	var tail []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		tail = append(tail, line)
		if len(tail) > TailLines {
			tail = tail[1:]
		}
	}
	// the scanner stops on over-long lines; keep draining so the
	// subprocess never blocks writing to the pipe
	io.Copy(io.Discard, r)
	return tail
}

// findArtifact searches the conventional gradle output locations, then
// falls back to a full walk for any .apk. The first match is authoritative;
// stale artifacts from earlier builds are not disambiguated.
func findArtifact(projectDir, mode string) string {
	patterns := []string{
		fmt.Sprintf("app/build/outputs/apk/%s/app-%s.apk", mode, mode),
		fmt.Sprintf("app/build/outputs/apk/%s/*.apk", mode),
		fmt.Sprintf("build/outputs/apk/%s/*.apk", mode),
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(projectDir, filepath.FromSlash(pattern)))
		if err == nil && len(matches) > 0 {
			return matches[0]
		}
	}

	var found string
	filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".apk") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
