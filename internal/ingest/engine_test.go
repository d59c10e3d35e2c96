package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/extract"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/utils"
)

// fakeWhiskeyRepo keys whiskeys by normalized (name, distillery).
type fakeWhiskeyRepo struct {
	byKey map[string]*entity.Whiskey
	// failWith, when set, makes every call fail (simulates lost storage)
	failWith error
}

func newFakeWhiskeyRepo() *fakeWhiskeyRepo {
	return &fakeWhiskeyRepo{byKey: map[string]*entity.Whiskey{}}
}

func (f *fakeWhiskeyRepo) FindByKeys(_ context.Context, nameKey, distilleryKey string) (*entity.Whiskey, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if w, ok := f.byKey[nameKey+"|"+distilleryKey]; ok {
		return w, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeWhiskeyRepo) Create(_ context.Context, req repository.CreateWhiskeyRequest) (*entity.Whiskey, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	nameKey := utils.NormalizeKey(req.Name)
	distilleryKey := ""
	if req.Distillery != nil {
		distilleryKey = utils.NormalizeKey(*req.Distillery)
	}
	key := nameKey + "|" + distilleryKey
	if _, exists := f.byKey[key]; exists {
		return nil, common.ErrConflict
	}
	w := &entity.Whiskey{
		ID:            uuid.New(),
		Name:          req.Name,
		Distillery:    req.Distillery,
		NameKey:       nameKey,
		DistilleryKey: distilleryKey,
		SpiritType:    req.SpiritType,
		AgeYears:      req.AgeYears,
		ABV:           req.ABV,
	}
	f.byKey[key] = w
	return w, nil
}

// fakeListingRepo enforces the one-listing-per-(bar,whiskey) invariant.
type fakeListingRepo struct {
	byPair   map[string]*entity.BarWhiskey
	failWith error
	// failCreateFor makes Create fail for a single whiskey id (item-level error)
	failCreateFor map[uuid.UUID]error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		byPair:        map[string]*entity.BarWhiskey{},
		failCreateFor: map[uuid.UUID]error{},
	}
}

func pairKey(barID, whiskeyID uuid.UUID) string {
	return barID.String() + "|" + whiskeyID.String()
}

func (f *fakeListingRepo) GetForBar(_ context.Context, barID, whiskeyID uuid.UUID) (*entity.BarWhiskey, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if l, ok := f.byPair[pairKey(barID, whiskeyID)]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeListingRepo) Create(_ context.Context, req repository.CreateListingRequest) (*entity.BarWhiskey, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if err, ok := f.failCreateFor[req.WhiskeyID]; ok {
		return nil, err
	}
	key := pairKey(req.BarID, req.WhiskeyID)
	if _, exists := f.byPair[key]; exists {
		return nil, common.ErrConflict
	}
	l := &entity.BarWhiskey{
		ID:           uuid.New(),
		BarID:        req.BarID,
		WhiskeyID:    req.WhiskeyID,
		Price:        req.Price,
		PourSize:     req.PourSize,
		Notes:        req.Notes,
		Available:    true,
		SourceType:   req.SourceType,
		LastVerified: time.Now().UTC(),
	}
	f.byPair[key] = l
	return l, nil
}

func (f *fakeListingRepo) Update(_ context.Context, id uuid.UUID, req repository.UpdateListingRequest) (*entity.BarWhiskey, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, l := range f.byPair {
		if l.ID != id {
			continue
		}
		if req.Price != nil {
			l.Price = req.Price
		}
		if req.PourSize != nil {
			l.PourSize = req.PourSize
		}
		if req.Notes != nil {
			l.Notes = req.Notes
		}
		if req.Available != nil {
			l.Available = *req.Available
		}
		l.LastVerified = time.Now().UTC()
		cp := *l
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeListingRepo) ListMenu(_ context.Context, barID uuid.UUID) ([]*entity.MenuItem, error) {
	return nil, nil
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func menuOf(ws ...extract.ExtractedWhiskey) *extract.ExtractedMenu {
	return &extract.ExtractedMenu{
		Whiskeys:         ws,
		ExtractionMethod: constants.MethodText,
		Confidence:       0.9,
		SourceType:       constants.SourceWebsiteScrape,
	}
}

func TestIngestAddsNewListings(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	menu := menuOf(
		extract.ExtractedWhiskey{Name: "Lagavulin 16", Distillery: strPtr("Lagavulin"), Price: f64Ptr(18)},
		extract.ExtractedWhiskey{Name: "Buffalo Trace", Price: f64Ptr(9)},
	)

	res, err := e.Ingest(context.Background(), barID, menu, uuid.New())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.WhiskeysAdded)
	assert.Equal(t, 0, res.WhiskeysUpdated)
	assert.Equal(t, 0, res.WhiskeysSkipped)
	assert.Len(t, listings.byPair, 2)
}

func TestIngestCountersSumToMenuLength(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	menu := menuOf(
		extract.ExtractedWhiskey{Name: "Ardbeg 10"},
		extract.ExtractedWhiskey{Name: "   "}, // invalid: skipped
		extract.ExtractedWhiskey{Name: "Oban 14", Price: f64Ptr(13)},
	)

	res, err := e.Ingest(context.Background(), barID, menu, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, len(menu.Whiskeys), res.WhiskeysAdded+res.WhiskeysUpdated+res.WhiskeysSkipped)
	assert.Equal(t, 2, res.WhiskeysAdded)
	assert.Equal(t, 1, res.WhiskeysSkipped)
}

func TestIngestEmptyMenuSucceeds(t *testing.T) {
	e := NewEngine(newFakeWhiskeyRepo(), newFakeListingRepo(), nil)

	res, err := e.Ingest(context.Background(), uuid.New(), menuOf(), uuid.New())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.WhiskeysAdded)
	assert.Zero(t, res.WhiskeysUpdated)
	assert.Zero(t, res.WhiskeysSkipped)
}

func TestIngestIdempotence(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	menu := menuOf(
		extract.ExtractedWhiskey{Name: "Redbreast 12", Price: f64Ptr(14)},
		extract.ExtractedWhiskey{Name: "Nikka From The Barrel", Price: f64Ptr(16)},
	)

	first, err := e.Ingest(context.Background(), barID, menu, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, first.WhiskeysAdded)

	second, err := e.Ingest(context.Background(), barID, menu, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, second.WhiskeysAdded, "re-ingestion must not create duplicates")
	assert.Equal(t, 2, second.WhiskeysSkipped, "identical values count as skipped")
	assert.Len(t, listings.byPair, 2, "no duplicate listings")
}

func TestIngestCaseInsensitiveMatch(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	_, err := e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "Lagavulin 16yr.", Distillery: strPtr("Lagavulin")}), uuid.New())
	require.NoError(t, err)

	res, err := e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "lagavulin  16yr", Distillery: strPtr("LAGAVULIN")}), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, res.WhiskeysAdded, "punctuation/case variants must match the same catalog entry")
	assert.Len(t, whiskeys.byKey, 1)
}

func TestIngestUpdatesChangedPrice(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	_, err := e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "Oban 14", Price: f64Ptr(13)}), uuid.New())
	require.NoError(t, err)

	res, err := e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "Oban 14", Price: f64Ptr(15)}), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, res.WhiskeysUpdated)

	for _, l := range listings.byPair {
		require.NotNil(t, l.Price)
		assert.Equal(t, 15.0, *l.Price)
	}
}

func TestIngestAbsentFieldDoesNotEraseStoredValue(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	_, err := e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "Talisker 10", Price: f64Ptr(12), PourSize: strPtr("1oz")}), uuid.New())
	require.NoError(t, err)

	// second pass omits price entirely
	_, err = e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "Talisker 10", Notes: strPtr("peaty")}), uuid.New())
	require.NoError(t, err)

	for _, l := range listings.byPair {
		require.NotNil(t, l.Price, "omitted price must not null out the stored one")
		assert.Equal(t, 12.0, *l.Price)
		require.NotNil(t, l.Notes)
		assert.Equal(t, "peaty", *l.Notes)
	}
}

func TestIngestItemErrorIsRecovered(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	// pre-create the whiskey so we know its id, then rig its listing create
	w, err := whiskeys.Create(context.Background(), repository.CreateWhiskeyRequest{Name: "Cursed Dram"})
	require.NoError(t, err)
	listings.failCreateFor[w.ID] = fmt.Errorf("%w: check constraint", common.ErrConflict)

	menu := menuOf(
		extract.ExtractedWhiskey{Name: "Cursed Dram"},
		extract.ExtractedWhiskey{Name: "Fine Dram"},
	)

	res, err := e.Ingest(context.Background(), barID, menu, uuid.New())
	require.NoError(t, err, "an item-level constraint violation must not abort the pass")
	assert.Equal(t, 1, res.WhiskeysSkipped)
	assert.Equal(t, 1, res.WhiskeysAdded)
}

func TestIngestValidationErrorIsItemLevel(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	w, err := whiskeys.Create(context.Background(), repository.CreateWhiskeyRequest{Name: "Odd Dram"})
	require.NoError(t, err)
	listings.failCreateFor[w.ID] = fmt.Errorf("%w: value out of range for field", common.ErrValidation)

	menu := menuOf(
		extract.ExtractedWhiskey{Name: "Odd Dram"},
		extract.ExtractedWhiskey{Name: "Fine Dram"},
	)

	res, err := e.Ingest(context.Background(), barID, menu, uuid.New())
	require.NoError(t, err, "a single item's failed validation must not abort the pass")
	assert.Equal(t, 1, res.WhiskeysSkipped)
	assert.Equal(t, 1, res.WhiskeysAdded)
}

func TestIngestFatalStorageErrorAborts(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	whiskeys.failWith = fmt.Errorf("%w: connection refused", common.ErrDatabase)
	e := NewEngine(whiskeys, listings, nil)

	res, err := e.Ingest(context.Background(), uuid.New(),
		menuOf(extract.ExtractedWhiskey{Name: "Any Dram"}), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDatabase))
	assert.Nil(t, res, "no partial result on a fatal storage error")
}

func TestIngestMarksUnavailableListingAvailableAgain(t *testing.T) {
	whiskeys, listings := newFakeWhiskeyRepo(), newFakeListingRepo()
	e := NewEngine(whiskeys, listings, nil)
	barID := uuid.New()

	_, err := e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "Springbank 10"}), uuid.New())
	require.NoError(t, err)

	for _, l := range listings.byPair {
		l.Available = false
	}

	res, err := e.Ingest(context.Background(), barID,
		menuOf(extract.ExtractedWhiskey{Name: "Springbank 10"}), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, res.WhiskeysUpdated)
	for _, l := range listings.byPair {
		assert.True(t, l.Available, "appearing on a fresh menu means it is pouring again")
	}
}
