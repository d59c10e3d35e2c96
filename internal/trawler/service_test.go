package trawler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/internal/cache"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/extract"
	"github.com/dramhound/dramhound/internal/fetcher"
	"github.com/dramhound/dramhound/internal/ingest"
	"github.com/dramhound/dramhound/internal/urlcheck"
)

type fakeValidator struct {
	blocked map[string]string // url -> rejection reason
}

func (f *fakeValidator) Validate(_ context.Context, rawURL string) urlcheck.Result {
	if reason, ok := f.blocked[rawURL]; ok {
		return urlcheck.Result{Valid: false, Reason: reason}
	}
	return urlcheck.Result{Valid: true}
}

type fakeFetcher struct {
	pages map[string]*fetcher.FetchResult
	errs  map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*fetcher.FetchResult, error) {
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	if page, ok := f.pages[url]; ok {
		return page, nil
	}
	return nil, fmt.Errorf("%w: no such page", common.ErrFetch)
}

type fakeConverter struct{}

func (fakeConverter) Convert(html []byte) (*fetcher.ConvertResult, error) {
	return &fetcher.ConvertResult{Title: "Test Bar", Markdown: string(html)}, nil
}

type fakeExtractor struct {
	menu      *extract.ExtractedMenu
	err       error
	textCalls int
	imgCalls  int
}

func (f *fakeExtractor) ExtractFromText(_ context.Context, req extract.TextRequest) (*extract.ExtractedMenu, []byte, error) {
	f.textCalls++
	if f.err != nil {
		return nil, nil, f.err
	}
	m := *f.menu
	m.SourceURL = req.SourceURL
	m.ContentHash = req.ContentHash
	return &m, []byte("{}"), nil
}

func (f *fakeExtractor) ExtractFromImage(_ context.Context, _ extract.ImageRequest) (*extract.ExtractedMenu, []byte, error) {
	f.imgCalls++
	if f.err != nil {
		return nil, nil, f.err
	}
	m := *f.menu
	return &m, []byte("{}"), nil
}

type fakeBars struct {
	known map[uuid.UUID]bool
}

func (f *fakeBars) GetByID(_ context.Context, id uuid.UUID) (*entity.Bar, error) {
	if f.known[id] {
		return &entity.Bar{ID: id, Name: "Test Bar"}, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeBars) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func (f *fakeBars) Create(_ context.Context, name string, websiteURL *string) (*entity.Bar, error) {
	return nil, errors.New("unused")
}

// fakeJobs enforces the same terminal-state guard the real repository does.
type fakeJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.TrawlJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: map[uuid.UUID]*entity.TrawlJob{}}
}

func (f *fakeJobs) Start(_ context.Context, barID uuid.UUID, sourceRef string, sourceType constants.SourceType, submittedBy *string) (*entity.TrawlJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := &entity.TrawlJob{
		ID:          uuid.New(),
		BarID:       barID,
		SourceRef:   sourceRef,
		SourceType:  string(sourceType),
		Status:      string(constants.JobStatusProcessing),
		SubmittedBy: submittedBy,
		CreatedAt:   time.Now().UTC(),
	}
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobs) Complete(_ context.Context, jobID uuid.UUID, whiskeyCount int, result json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	if j.Status != string(constants.JobStatusProcessing) {
		return common.ErrJobTerminal
	}
	j.Status = string(constants.JobStatusCompleted)
	j.WhiskeyCount = whiskeyCount
	j.Result = result
	return nil
}

func (f *fakeJobs) Fail(_ context.Context, jobID uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	if j.Status != string(constants.JobStatusProcessing) {
		return common.ErrJobTerminal
	}
	j.Status = string(constants.JobStatusFailed)
	j.ErrorMessage = &message
	return nil
}

func (f *fakeJobs) GetByID(_ context.Context, jobID uuid.UUID) (*entity.TrawlJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[jobID]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeJobs) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.jobs)
}

type fakeEngine struct {
	result *ingest.TrawlResult
	err    error
	calls  int
}

func (f *fakeEngine) Ingest(_ context.Context, _ uuid.UUID, menu *extract.ExtractedMenu, _ uuid.UUID) (*ingest.TrawlResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	r.Menu = menu
	return &r, nil
}

type testEnv struct {
	svc       *Service
	barID     uuid.UUID
	jobs      *fakeJobs
	extractor *fakeExtractor
	engine    *fakeEngine
	fetcher   *fakeFetcher
	validator *fakeValidator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	barID := uuid.New()

	env := &testEnv{
		barID:     barID,
		jobs:      newFakeJobs(),
		validator: &fakeValidator{blocked: map[string]string{}},
		fetcher: &fakeFetcher{
			pages: map[string]*fetcher.FetchResult{},
			errs:  map[string]error{},
		},
		extractor: &fakeExtractor{
			menu: &extract.ExtractedMenu{
				Whiskeys: []extract.ExtractedWhiskey{
					{Name: "Lagavulin 16"},
					{Name: "Redbreast 12"},
				},
				ExtractionMethod: constants.MethodText,
				Confidence:       0.9,
				SourceType:       constants.SourceWebsiteScrape,
			},
		},
		engine: &fakeEngine{
			result: &ingest.TrawlResult{Success: true, WhiskeysAdded: 2},
		},
	}

	env.svc = NewService(
		env.validator,
		env.fetcher,
		fakeConverter{},
		env.extractor,
		&fakeBars{known: map[uuid.UUID]bool{barID: true}},
		env.jobs,
		env.engine,
		cache.NewTTL(time.Minute, 16),
		nil,
	)
	return env
}

func (e *testEnv) addPage(url, body, hash string) {
	e.fetcher.pages[url] = &fetcher.FetchResult{
		Body:        []byte(body),
		ContentType: "text/html",
		StatusCode:  200,
		FinalURL:    url,
		ContentHash: hash,
	}
}

func TestTrawlURLSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/menu", "<table>drams</table>", "hash-1")

	out, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: env.barID, URL: "https://bar.example/menu",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Job)
	assert.Equal(t, string(constants.JobStatusCompleted), out.Job.Status)
	assert.Equal(t, 2, out.Job.WhiskeyCount)
	require.NotNil(t, out.Result)
	assert.Equal(t, 2, out.Result.WhiskeysAdded)

	stored, err := env.jobs.GetByID(context.Background(), out.Job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), stored.Status)
	assert.NotEmpty(t, stored.Result)
}

func TestTrawlURLRejectedBeforeJobCreation(t *testing.T) {
	env := newTestEnv(t)
	env.validator.blocked["http://169.254.169.254/latest/meta-data/"] = "metadata endpoint"

	out, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: env.barID, URL: "http://169.254.169.254/latest/meta-data/",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSafetyRejected))
	assert.Nil(t, out)
	assert.Zero(t, env.jobs.count(), "a rejected URL must leave no job behind")
}

func TestTrawlURLUnknownBar(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/menu", "x", "h")

	_, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: uuid.New(), URL: "https://bar.example/menu",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.Zero(t, env.jobs.count())
}

func TestTrawlURLFetchFailureFailsJob(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.errs["https://bar.example/menu"] = fmt.Errorf("%w: status 503", common.ErrFetch)

	out, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: env.barID, URL: "https://bar.example/menu",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFetch))
	require.NotNil(t, out)
	require.NotNil(t, out.Job)
	assert.Equal(t, string(constants.JobStatusFailed), out.Job.Status)

	stored, getErr := env.jobs.GetByID(context.Background(), out.Job.ID)
	require.NoError(t, getErr)
	assert.Equal(t, string(constants.JobStatusFailed), stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "503")
}

func TestTrawlURLExtractionFailureFailsJob(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/menu", "x", "h")
	env.extractor.err = fmt.Errorf("%w: provider gave up", common.ErrExtraction)

	out, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: env.barID, URL: "https://bar.example/menu",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExtraction))
	assert.Equal(t, string(constants.JobStatusFailed), out.Job.Status)
}

func TestTrawlURLEmptyMenuCompletes(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/wines", "no whiskey here", "h")
	env.extractor.menu.Whiskeys = nil
	env.engine.result = &ingest.TrawlResult{Success: true}

	out, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: env.barID, URL: "https://bar.example/wines",
	})
	require.NoError(t, err, "a menu with zero whiskeys is a valid outcome")
	assert.Equal(t, string(constants.JobStatusCompleted), out.Job.Status)
	assert.Zero(t, out.Job.WhiskeyCount)
}

func TestTrawlURLCacheSkipsReextraction(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/menu", "<table>drams</table>", "same-hash")

	first, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: env.barID, URL: "https://bar.example/menu",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.extractor.textCalls)

	second, err := env.svc.TrawlURL(context.Background(), TrawlURLRequest{
		BarID: env.barID, URL: "https://bar.example/menu",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.extractor.textCalls, "unchanged content must not re-extract")
	assert.Equal(t, 1, env.engine.calls)
	assert.Equal(t, string(constants.JobStatusCompleted), second.Job.Status)
	assert.Equal(t, first.Job.WhiskeyCount, second.Job.WhiskeyCount)
	assert.NotEqual(t, first.Job.ID, second.Job.ID, "every submission still gets its own job")
}

func TestTrawlImageSuccess(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.svc.TrawlImage(context.Background(), TrawlImageRequest{
		BarID:    env.barID,
		Data:     []byte("fake-jpeg-bytes"),
		MIMEType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), out.Job.Status)
	assert.Equal(t, 1, env.extractor.imgCalls)
	assert.Contains(t, out.Job.SourceRef, "image:")
}

func TestTrawlImageRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  TrawlImageRequest
	}{
		{"unsupported mime", TrawlImageRequest{BarID: env.barID, Data: []byte("x"), MIMEType: "application/pdf"}},
		{"empty payload", TrawlImageRequest{BarID: env.barID, MIMEType: "image/png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.TrawlImage(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
			assert.Zero(t, env.jobs.count())
		})
	}
}
