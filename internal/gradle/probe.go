package gradle

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"
)

// EnvStatus is one snapshot of the build-environment probe. A missing
// prerequisite is reported here but never blocks an invocation attempt on
// its own; callers decide whether to proceed.
type EnvStatus struct {
	Java      bool      `json:"java"`
	Gradle    bool      `json:"gradle"`
	SDK       bool      `json:"android_sdk"`
	SDKRoot   string    `json:"sdk_root,omitempty"`
	Ready     bool      `json:"ready"`
	CheckedAt time.Time `json:"checked_at"`
}

// Probe checks for a Java runtime, a system gradle (per-project wrappers
// are resolved at invoke time) and an SDK root. sdkRootOverride wins over
// the conventional filesystem locations.
func Probe(sdkRootOverride string) EnvStatus {
	st := EnvStatus{CheckedAt: time.Now().UTC()}

	if _, err := exec.LookPath("java"); err == nil {
		st.Java = true
	}
	if _, err := exec.LookPath("gradle"); err == nil {
		st.Gradle = true
	}

	candidates := []string{
		sdkRootOverride,
		filepath.Join(os.Getenv("HOME"), "Android", "Sdk"),
		"/usr/local/android-sdk",
		"/opt/android-sdk",
	}
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			st.SDK = true
			st.SDKRoot = dir
			break
		}
	}

	st.Ready = st.Java && st.Gradle && st.SDK
	return st
}

// Prober caches probe results so the health endpoint does not hit the
// filesystem on every request. Refresh is called at startup and on a
// schedule.
type Prober struct {
	mu      sync.RWMutex
	sdkRoot string
	last    EnvStatus
}

func NewProber(sdkRootOverride string) *Prober {
	p := &Prober{sdkRoot: sdkRootOverride}
	p.Refresh()
	return p
}

// Refresh re-runs the probe and stores the snapshot.
func (p *Prober) Refresh() EnvStatus {
	st := Probe(p.sdkRoot)
	p.mu.Lock()
	p.last = st
	p.mu.Unlock()
	return st
}

// Last returns the most recent snapshot.
func (p *Prober) Last() EnvStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}
