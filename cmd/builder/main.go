// Command builder runs the gradle invoker against an existing project
// directory from the command line, outside the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/forgeapk/apk-builder-backend/internal/gradle"
)

func main() {
	mode := flag.String("mode", "debug", "build mode: debug or release")
	sdkRoot := flag.String("sdk", os.Getenv("ANDROID_SDK_ROOT"), "Android SDK root")
	timeout := flag.Duration("timeout", 0, "abort the build after this duration (0 = none)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: builder [flags] <project_dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	projectDir := flag.Arg(0)
	if info, err := os.Stat(projectDir); err != nil || !info.IsDir() {
		log.Fatalf("project path not found: %s", projectDir)
	}

	st := gradle.Probe(*sdkRoot)
	fmt.Println("Environment check:")
	fmt.Printf("  java:        %v\n", st.Java)
	fmt.Printf("  gradle:      %v\n", st.Gradle)
	fmt.Printf("  android sdk: %v (%s)\n", st.SDK, st.SDKRoot)
	if !st.Ready {
		fmt.Println("warning: some build tools are missing, the build may fail")
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	inv := gradle.NewInvoker(st.SDKRoot)
	start := time.Now()
	result, err := inv.Invoke(ctx, projectDir, *mode)
	if err != nil {
		log.Fatalf("build error: %v", err)
	}

	if !result.Success {
		fmt.Printf("build failed: %s\n", result.Err)
		for _, line := range result.Tail {
			fmt.Println(line)
		}
		os.Exit(1)
	}

	fmt.Printf("build successful in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("apk: %s (%.2f MB)\n", result.ArtifactPath, float64(result.SizeBytes)/1024/1024)
}
