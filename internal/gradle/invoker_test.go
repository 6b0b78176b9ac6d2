package gradle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeWrapper drops a fake gradlew into dir so Invoke picks it over any
// system gradle.
func writeWrapper(t *testing.T, dir, script string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gradlew"), []byte("#!/bin/sh\n"+script), 0o755))
}

func TestInvoke_Success(t *testing.T) {
	dir := t.TempDir()
	apkDir := "app/build/outputs/apk/debug"
	writeWrapper(t, dir, fmt.Sprintf(`
echo "> Task :app:assembleDebug"
mkdir -p %s
echo fakeapk > %s/app-debug.apk
echo "BUILD SUCCESSFUL"
`, apkDir, apkDir))

	inv := NewInvoker("")
	result, err := inv.Invoke(context.Background(), dir, "debug")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, filepath.Join(dir, "app", "build", "outputs", "apk", "debug", "app-debug.apk"), result.ArtifactPath)
	assert.Greater(t, result.SizeBytes, int64(0))
	assert.Contains(t, result.Tail, "BUILD SUCCESSFUL")
}

func TestInvoke_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	writeWrapper(t, dir, `
echo "compile error: MainActivity.java"
echo "BUILD FAILED"
exit 1
`)

	inv := NewInvoker("")
	result, err := inv.Invoke(context.Background(), dir, "debug")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "build failed with exit code 1", result.Err)
	assert.Contains(t, result.Tail, "BUILD FAILED")
	assert.Empty(t, result.ArtifactPath)
}

func TestInvoke_TailRetainsLastLines(t *testing.T) {
	dir := t.TempDir()
	writeWrapper(t, dir, `
i=1
while [ $i -le 50 ]; do
  echo "line $i"
  i=$((i+1))
done
exit 1
`)

	inv := NewInvoker("")
	result, err := inv.Invoke(context.Background(), dir, "debug")
	require.NoError(t, err)

	require.Len(t, result.Tail, TailLines)
	assert.Equal(t, "line 31", result.Tail[0])
	assert.Equal(t, "line 50", result.Tail[TailLines-1])
}

func TestInvoke_OversizedOutputLine(t *testing.T) {
	dir := t.TempDir()
	// one line well past the scanner cap, with the subprocess still
	// writing afterwards; the build must terminate regardless
	writeWrapper(t, dir, `
head -c 2097152 /dev/zero | tr '\0' 'x'
echo
echo "BUILD FAILED"
exit 1
`)

	type outcome struct {
		result *BuildResult
		err    error
	}

	inv := NewInvoker("")
	done := make(chan outcome, 1)
	go func() {
		result, err := inv.Invoke(context.Background(), dir, "debug")
		done <- outcome{result, err}
	}()

	select {
	case out := <-done:
		require.NoError(t, out.err)
		assert.False(t, out.result.Success)
		assert.Equal(t, "build failed with exit code 1", out.result.Err)
	case <-time.After(10 * time.Second):
		t.Fatal("Invoke did not return for over-long build output")
	}
}

func TestInvoke_NoArtifactAfterSuccess(t *testing.T) {
	dir := t.TempDir()
	writeWrapper(t, dir, `echo "BUILD SUCCESSFUL"`)

	inv := NewInvoker("")
	result, err := inv.Invoke(context.Background(), dir, "debug")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "apk file not found after build", result.Err)
	assert.Contains(t, result.Tail, "BUILD SUCCESSFUL")
}

func TestInvoke_WalkFallbackFindsArtifact(t *testing.T) {
	dir := t.TempDir()
	// artifact lands outside the conventional output dirs
	writeWrapper(t, dir, `
mkdir -p somewhere/else
echo fakeapk > somewhere/else/custom.apk
`)

	inv := NewInvoker("")
	result, err := inv.Invoke(context.Background(), dir, "debug")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, filepath.Join(dir, "somewhere", "else", "custom.apk"), result.ArtifactPath)
}

func TestInvoke_Timeout(t *testing.T) {
	dir := t.TempDir()
	writeWrapper(t, dir, `sleep 10`)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	inv := NewInvoker("")
	result, err := inv.Invoke(ctx, dir, "debug")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "timeout", result.Err)
}

func TestInvoke_SDKRootInjected(t *testing.T) {
	dir := t.TempDir()
	writeWrapper(t, dir, `
echo "sdk=$ANDROID_SDK_ROOT home=$ANDROID_HOME"
exit 1
`)

	inv := NewInvoker("/opt/test-sdk")
	result, err := inv.Invoke(context.Background(), dir, "debug")
	require.NoError(t, err)

	assert.Contains(t, result.Tail, "sdk=/opt/test-sdk home=/opt/test-sdk")
}

func TestInvoke_ReleaseTask(t *testing.T) {
	dir := t.TempDir()
	writeWrapper(t, dir, `
echo "task=$1"
mkdir -p app/build/outputs/apk/release
echo fakeapk > app/build/outputs/apk/release/app-release.apk
`)

	inv := NewInvoker("")
	result, err := inv.Invoke(context.Background(), dir, "release")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.Tail, "task=assembleRelease")
	assert.Contains(t, result.ArtifactPath, "app-release.apk")
}

func TestProbe(t *testing.T) {
	sdk := t.TempDir()

	st := Probe(sdk)
	assert.True(t, st.SDK)
	assert.Equal(t, sdk, st.SDKRoot)
	assert.False(t, st.CheckedAt.IsZero())
}

func TestProberCaches(t *testing.T) {
	p := NewProber(t.TempDir())

	first := p.Last()
	assert.True(t, first.SDK)

	refreshed := p.Refresh()
	assert.False(t, refreshed.CheckedAt.Before(first.CheckedAt))
}

func TestSign_CopiesArtifact(t *testing.T) {
	dir := t.TempDir()
	apk := filepath.Join(dir, "app-debug.apk")
	require.NoError(t, os.WriteFile(apk, []byte("fakeapk"), 0o644))

	result, err := Sign(apk, "keystore.jks", "secret", "release")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, filepath.Join(dir, "app-debug-signed.apk"), result.SignedPath)

	data, err := os.ReadFile(result.SignedPath)
	require.NoError(t, err)
	assert.Equal(t, "fakeapk", string(data))
}

func TestSign_MissingArtifact(t *testing.T) {
	result, err := Sign(filepath.Join(t.TempDir(), "missing.apk"), "", "", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Err)
}
