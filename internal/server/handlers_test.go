package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/export"
	"github.com/dramhound/dramhound/internal/extract"
	"github.com/dramhound/dramhound/internal/fetcher"
	"github.com/dramhound/dramhound/internal/ingest"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/trawler"
	"github.com/dramhound/dramhound/internal/urlcheck"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubValidator struct {
	blocked map[string]string
}

func (s *stubValidator) Validate(_ context.Context, rawURL string) urlcheck.Result {
	if reason, ok := s.blocked[rawURL]; ok {
		return urlcheck.Result{Valid: false, Reason: reason}
	}
	return urlcheck.Result{Valid: true}
}

type stubFetcher struct {
	pages map[string]*fetcher.FetchResult
	// onFetch, when set, runs after each successful fetch
	onFetch func()
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*fetcher.FetchResult, error) {
	if page, ok := s.pages[url]; ok {
		if s.onFetch != nil {
			s.onFetch()
		}
		return page, nil
	}
	return nil, fmt.Errorf("%w: no such page", common.ErrFetch)
}

type stubConverter struct{}

func (stubConverter) Convert(html []byte) (*fetcher.ConvertResult, error) {
	return &fetcher.ConvertResult{Title: "Stub Bar", Markdown: string(html)}, nil
}

type stubExtractor struct{}

func (stubExtractor) ExtractFromText(_ context.Context, req extract.TextRequest) (*extract.ExtractedMenu, []byte, error) {
	return &extract.ExtractedMenu{
		Whiskeys:         []extract.ExtractedWhiskey{{Name: "Lagavulin 16"}},
		ExtractionMethod: constants.MethodText,
		Confidence:       0.9,
		SourceURL:        req.SourceURL,
		ContentHash:      req.ContentHash,
		SourceType:       constants.SourceWebsiteScrape,
	}, []byte("{}"), nil
}

func (stubExtractor) ExtractFromImage(context.Context, extract.ImageRequest) (*extract.ExtractedMenu, []byte, error) {
	return &extract.ExtractedMenu{
		ExtractionMethod: constants.MethodVision,
		Confidence:       0.8,
		SourceType:       constants.SourceUserSubmitted,
	}, []byte("{}"), nil
}

type stubEngine struct{}

func (stubEngine) Ingest(_ context.Context, _ uuid.UUID, menu *extract.ExtractedMenu, _ uuid.UUID) (*ingest.TrawlResult, error) {
	return &ingest.TrawlResult{
		Success:       true,
		Menu:          menu,
		WhiskeysAdded: len(menu.Whiskeys),
	}, nil
}

type stubBars struct {
	known map[uuid.UUID]*entity.Bar
}

func (s *stubBars) GetByID(_ context.Context, id uuid.UUID) (*entity.Bar, error) {
	if b, ok := s.known[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: bar %s", common.ErrNotFound, id)
}

func (s *stubBars) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.known[id]
	return ok, nil
}

func (s *stubBars) Create(_ context.Context, name string, websiteURL *string) (*entity.Bar, error) {
	b := &entity.Bar{ID: uuid.New(), Name: name, WebsiteURL: websiteURL}
	s.known[b.ID] = b
	return b, nil
}

type stubJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.TrawlJob
}

func (s *stubJobs) Start(_ context.Context, barID uuid.UUID, sourceRef string, sourceType constants.SourceType, submittedBy *string) (*entity.TrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &entity.TrawlJob{
		ID:         uuid.New(),
		BarID:      barID,
		SourceRef:  sourceRef,
		SourceType: string(sourceType),
		Status:     string(constants.JobStatusProcessing),
	}
	s.jobs[j.ID] = j
	return j, nil
}

func (s *stubJobs) Complete(_ context.Context, jobID uuid.UUID, whiskeyCount int, result json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	j.Status = string(constants.JobStatusCompleted)
	j.WhiskeyCount = whiskeyCount
	j.Result = result
	return nil
}

func (s *stubJobs) Fail(_ context.Context, jobID uuid.UUID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	j.Status = string(constants.JobStatusFailed)
	j.ErrorMessage = &message
	return nil
}

func (s *stubJobs) GetByID(_ context.Context, jobID uuid.UUID) (*entity.TrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[jobID]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
}

type stubListings struct{}

func (stubListings) GetForBar(context.Context, uuid.UUID, uuid.UUID) (*entity.BarWhiskey, error) {
	return nil, common.ErrNotFound
}

func (stubListings) Create(context.Context, repository.CreateListingRequest) (*entity.BarWhiskey, error) {
	return nil, common.ErrDatabase
}

func (stubListings) Update(context.Context, uuid.UUID, repository.UpdateListingRequest) (*entity.BarWhiskey, error) {
	return nil, common.ErrDatabase
}

func (stubListings) ListMenu(context.Context, uuid.UUID) ([]*entity.MenuItem, error) {
	return []*entity.MenuItem{{WhiskeyName: "Lagavulin 16", SpiritType: "scotch", Available: true}}, nil
}

type apiEnv struct {
	router  *gin.Engine
	barID   uuid.UUID
	jobs    *stubJobs
	fetcher *stubFetcher
	blocked map[string]string
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	barID := uuid.New()
	bars := &stubBars{known: map[uuid.UUID]*entity.Bar{
		barID: {ID: barID, Name: "Test Bar"},
	}}
	jobs := &stubJobs{jobs: map[uuid.UUID]*entity.TrawlJob{}}
	pages := &stubFetcher{pages: map[string]*fetcher.FetchResult{}}
	blocked := map[string]string{}
	listings := stubListings{}

	svc := trawler.NewService(
		&stubValidator{blocked: blocked},
		pages,
		stubConverter{},
		stubExtractor{},
		bars,
		jobs,
		stubEngine{},
		nil,
		nil,
	)
	exporter := export.NewService(bars, listings, nil)

	return &apiEnv{
		router:  NewRouter(svc, bars, listings, exporter, 0, nil),
		barID:   barID,
		jobs:    jobs,
		fetcher: pages,
		blocked: blocked,
	}
}

func (e *apiEnv) addPage(url string) {
	e.fetcher.pages[url] = &fetcher.FetchResult{
		Body:        []byte("<table>drams</table>"),
		ContentType: "text/html",
		StatusCode:  200,
		FinalURL:    url,
		ContentHash: "hash",
	}
}

func (e *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestTrawlEndpointURL(t *testing.T) {
	env := newAPIEnv(t)
	env.addPage("https://bar.example/menu")

	w := env.do(t, http.MethodPost, "/v1/trawl", gin.H{
		"bar_id": env.barID,
		"url":    "https://bar.example/menu",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Job struct {
			ID     uuid.UUID `json:"id"`
			Status string    `json:"status"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, string(constants.JobStatusCompleted), out.Job.Status)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestTrawlEndpointRequiresExactlyOneSource(t *testing.T) {
	env := newAPIEnv(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"neither", gin.H{"bar_id": env.barID}},
		{"both", gin.H{
			"bar_id": env.barID,
			"url":    "https://bar.example/menu",
			"image":  gin.H{"data": "aGk=", "mime_type": "image/png"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/v1/trawl", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTrawlEndpointRejectedURL(t *testing.T) {
	env := newAPIEnv(t)
	env.blocked["http://169.254.169.254/"] = "metadata endpoint"

	w := env.do(t, http.MethodPost, "/v1/trawl", gin.H{
		"bar_id": env.barID,
		"url":    "http://169.254.169.254/",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "metadata endpoint")
	assert.Empty(t, env.jobs.jobs, "rejected URLs leave no job")
}

func TestTrawlEndpointFetchFailure(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/v1/trawl", gin.H{
		"bar_id": env.barID,
		"url":    "https://bar.example/gone",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "job_id", "failed pipeline still reports its job")
}

func TestTrawlEndpointImageBadBase64(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/v1/trawl", gin.H{
		"bar_id": env.barID,
		"image":  gin.H{"data": "!!!not-base64!!!", "mime_type": "image/png"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchEndpointValidation(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/v1/trawl/batch", gin.H{
		"bar_id": env.barID,
		"urls":   []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	urls := make([]string, 21)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://bar.example/%d", i)
	}
	w = env.do(t, http.MethodPost, "/v1/trawl/batch", gin.H{"bar_id": env.barID, "urls": urls})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchEndpointOK(t *testing.T) {
	env := newAPIEnv(t)
	env.addPage("https://bar.example/a")
	env.addPage("https://bar.example/b")

	w := env.do(t, http.MethodPost, "/v1/trawl/batch", gin.H{
		"bar_id": env.barID,
		"urls":   []string{"https://bar.example/a", "https://bar.example/b"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Items []struct {
			URL    string `json:"url"`
			Status string `json:"status"`
		} `json:"items"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "https://bar.example/a", out.Items[0].URL)
	assert.Equal(t, string(constants.JobStatusCompleted), out.Items[1].Status)
}

func TestBatchEndpointReportsFinishedItemsOnCancellation(t *testing.T) {
	env := newAPIEnv(t)
	env.addPage("https://bar.example/a")
	env.addPage("https://bar.example/b")

	// cancel the request while the first URL is in flight; the batch stops
	// before the second but the response still lists the finished item
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	env.fetcher.onFetch = cancel

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{
		"bar_id": env.barID,
		"urls":   []string{"https://bar.example/a", "https://bar.example/b"},
	}))
	req := httptest.NewRequest(http.MethodPost, "/v1/trawl/batch", &buf).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

	var out struct {
		Items []struct {
			URL string `json:"url"`
		} `json:"items"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "https://bar.example/a", out.Items[0].URL)
	assert.Equal(t, 1, out.Count)
}

func TestGetJobEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	env.addPage("https://bar.example/menu")

	created := env.do(t, http.MethodPost, "/v1/trawl", gin.H{
		"bar_id": env.barID,
		"url":    "https://bar.example/menu",
	})
	require.Equal(t, http.StatusOK, created.Code)

	var out struct {
		Job struct {
			ID uuid.UUID `json:"id"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &out))

	w := env.do(t, http.MethodGet, "/v1/jobs/"+out.Job.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/v1/jobs/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/v1/jobs/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodGet, "/v1/bars/"+env.barID.String()+"/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lagavulin 16")

	w = env.do(t, http.MethodGet, "/v1/bars/"+uuid.NewString()+"/menu", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/v1/bars/"+env.barID.String()+"/menu/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
}

func TestCreateBarEndpoint(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/v1/bars", gin.H{"name": "The Dram Shop"})
	require.Equal(t, http.StatusCreated, w.Code)

	var bar entity.Bar
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bar))
	assert.Equal(t, "The Dram Shop", bar.Name)
	assert.NotEqual(t, uuid.Nil, bar.ID)

	w = env.do(t, http.MethodPost, "/v1/bars", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
