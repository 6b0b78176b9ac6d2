// Package service orchestrates the build-job lifecycle: classification,
// scaffolding and gradle invocation run in the background while callers
// poll the persisted record.
package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
	"github.com/forgeapk/apk-builder-backend/internal/builds/repository"
	"github.com/forgeapk/apk-builder-backend/internal/catalog"
	"github.com/forgeapk/apk-builder-backend/internal/classify"
	"github.com/forgeapk/apk-builder-backend/internal/gradle"
	"github.com/forgeapk/apk-builder-backend/internal/scaffold"
)

// MinDescriptionLen is the shortest description accepted for a build.
const MinDescriptionLen = 5

// ToolchainInvoker runs the external build toolchain.
type ToolchainInvoker interface {
	Invoke(ctx context.Context, projectDir, mode string) (*gradle.BuildResult, error)
}

// EnvProber supplies the cached build-environment snapshot.
type EnvProber interface {
	Last() gradle.EnvStatus
}

// Options tunes the orchestrator.
type Options struct {
	BuildMode        string        // "debug" or "release"
	BuildTimeout     time.Duration // 0 disables the timeout
	RequireToolchain bool          // false: complete with the stub APK when no toolchain is usable
}

// Orchestrator owns the per-project lifecycle. Each accepted request gets
// one background goroutine; all cross-request coordination goes through the
// record store, and a record has exactly one writer until it is terminal.
type Orchestrator struct {
	cat          *catalog.Catalog
	store        repository.Store
	engine       *scaffold.Engine
	invoker      ToolchainInvoker
	prober       EnvProber
	projectsRoot string
	opts         Options

	wg sync.WaitGroup
}

func NewOrchestrator(cat *catalog.Catalog, store repository.Store, engine *scaffold.Engine, invoker ToolchainInvoker, prober EnvProber, projectsRoot string, opts Options) *Orchestrator {
	if opts.BuildMode == "" {
		opts.BuildMode = "debug"
	}
	return &Orchestrator{
		cat:          cat,
		store:        store,
		engine:       engine,
		invoker:      invoker,
		prober:       prober,
		projectsRoot: projectsRoot,
		opts:         opts,
	}
}

// Analyze runs the classifier without creating a build job.
func (o *Orchestrator) Analyze(description string) (classify.Classification, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return classify.Classification{}, domain.ErrDescriptionRequired
	}
	return classify.Classify(o.cat, description), nil
}

// CreateBuild validates the description, persists the initial record and
// schedules the background build. It returns as soon as the record is
// committed; it never waits on scaffolding or the toolchain.
func (o *Orchestrator) CreateBuild(ctx context.Context, description string) (*domain.ProjectRecord, classify.Classification, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, classify.Classification{}, domain.ErrDescriptionRequired
	}
	if len(description) < MinDescriptionLen {
		return nil, classify.Classification{}, domain.ErrDescriptionTooShort
	}

	cls := classify.Classify(o.cat, description)

	record, err := o.newRecord(ctx, description, cls)
	if err != nil {
		return nil, classify.Classification{}, err
	}

	// the job works on its own copy; the returned record stays frozen at
	// the accepted state
	o.wg.Add(1)
	go o.run(record.Clone())

	return record, cls, nil
}

// newRecord allocates an unused project id and commits the initial record.
func (o *Orchestrator) newRecord(ctx context.Context, description string, cls classify.Classification) (*domain.ProjectRecord, error) {
	for i := 0; i < 5; i++ {
		id := uuid.New().String()[:8]
		if _, err := o.store.Get(ctx, id); err == nil {
			continue // id collision, retry
		}

		record := domain.NewProjectRecord(id, description, cls)
		if err := o.store.Put(ctx, record); err != nil {
			return nil, err
		}
		return record, nil
	}
	return nil, fmt.Errorf("failed to allocate unique project id")
}

// StatusView is the polling view of one record.
type StatusView struct {
	Record        *domain.ProjectRecord
	ArtifactReady bool
	ArtifactSize  int64
}

// GetStatus returns the current record plus artifact availability.
func (o *Orchestrator) GetStatus(ctx context.Context, id string) (*StatusView, error) {
	record, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &StatusView{Record: record}
	if record.ArtifactPath != "" {
		if info, err := os.Stat(record.ArtifactPath); err == nil {
			view.ArtifactReady = true
			view.ArtifactSize = info.Size()
		}
	}
	return view, nil
}

// ResolveArtifact returns the on-disk artifact path for a completed build.
// The record's artifact path is authoritative: while the build is still in
// progress the path is unset and the caller gets ErrArtifactNotFound.
func (o *Orchestrator) ResolveArtifact(ctx context.Context, id string) (string, error) {
	record, err := o.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if record.ArtifactPath == "" {
		return "", domain.ErrArtifactNotFound
	}
	if _, err := os.Stat(record.ArtifactPath); err != nil {
		return "", domain.ErrArtifactNotFound
	}
	return record.ArtifactPath, nil
}

// ListProjects returns the listing view of every known record.
func (o *Orchestrator) ListProjects(ctx context.Context) ([]domain.ProjectSummary, error) {
	return o.store.List(ctx)
}

// Wait blocks until every outstanding build job has finished. Called during
// graceful shutdown.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// run executes one build job. Every failure, including a panic, ends as an
// error transition on the record; nothing escapes to the process.
func (o *Orchestrator) run(record *domain.ProjectRecord) {
	defer o.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			o.fail(record, fmt.Sprintf("internal error: %v", r))
		}
	}()

	ctx := context.Background()
	projectDir := filepath.Join(o.projectsRoot, record.ID)

	if !o.transition(ctx, record, domain.StatusScaffolding, 0) {
		return
	}

	if err := o.engine.Scaffold(projectDir, record.Archetype, record.PackageName, record.Features); err != nil {
		o.fail(record, err.Error())
		return
	}

	if !o.transition(ctx, record, domain.StatusGenerated, 50) {
		return
	}

	if !o.opts.RequireToolchain && o.prober != nil {
		if st := o.prober.Last(); !st.Java || !st.Gradle {
			// no usable toolchain: the scaffolded stub APK completes the build
			stub := filepath.Join(projectDir, filepath.FromSlash(scaffold.StubArtifactRelPath))
			log.Printf("[builds] project %s: toolchain unavailable, completing with stub artifact", record.ID)
			o.complete(record, stub)
			return
		}
	}

	invokeCtx := ctx
	if o.opts.BuildTimeout > 0 {
		var cancel context.CancelFunc
		invokeCtx, cancel = context.WithTimeout(ctx, o.opts.BuildTimeout)
		defer cancel()
	}

	result, err := o.invoker.Invoke(invokeCtx, projectDir, o.opts.BuildMode)
	if err != nil {
		o.fail(record, err.Error())
		return
	}
	if !result.Success {
		o.fail(record, (&domain.ToolchainError{Reason: result.Err, Tail: result.Tail}).Error())
		return
	}

	o.complete(record, result.ArtifactPath)
}

// transition advances the record and persists it. A persistence failure
// aborts the job: without a committed record there is nothing to report
// against.
func (o *Orchestrator) transition(ctx context.Context, record *domain.ProjectRecord, status string, progress int) bool {
	record.Status = status
	record.Progress = progress
	record.UpdatedAt = time.Now().UTC()
	if err := o.store.Put(ctx, record); err != nil {
		log.Printf("[builds] project %s: persist %s failed: %v", record.ID, status, err)
		return false
	}
	return true
}

func (o *Orchestrator) complete(record *domain.ProjectRecord, artifactPath string) {
	now := time.Now().UTC()
	record.Status = domain.StatusCompleted
	record.Progress = 100
	record.ArtifactPath = artifactPath
	record.CompletedAt = &now
	record.UpdatedAt = now
	if err := o.store.Put(context.Background(), record); err != nil {
		log.Printf("[builds] project %s: persist completed failed: %v", record.ID, err)
		return
	}
	log.Printf("[builds] project %s built successfully", record.ID)
}

func (o *Orchestrator) fail(record *domain.ProjectRecord, msg string) {
	now := time.Now().UTC()
	record.Status = domain.StatusError
	record.Error = msg
	record.CompletedAt = &now
	record.UpdatedAt = now
	if err := o.store.Put(context.Background(), record); err != nil {
		log.Printf("[builds] project %s: persist error state failed: %v", record.ID, err)
		return
	}
	log.Printf("[builds] project %s failed: %s", record.ID, firstLine(msg))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
