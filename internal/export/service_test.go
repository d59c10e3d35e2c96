package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/entity"
	"github.com/dramhound/dramhound/internal/repository"
)

type fakeBars struct {
	bar *entity.Bar
}

func (f *fakeBars) GetByID(_ context.Context, id uuid.UUID) (*entity.Bar, error) {
	if f.bar != nil && f.bar.ID == id {
		return f.bar, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeBars) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.bar != nil && f.bar.ID == id, nil
}

func (f *fakeBars) Create(_ context.Context, name string, websiteURL *string) (*entity.Bar, error) {
	panic("unused")
}

type fakeListings struct {
	items []*entity.MenuItem
}

func (f *fakeListings) GetForBar(context.Context, uuid.UUID, uuid.UUID) (*entity.BarWhiskey, error) {
	panic("unused")
}

func (f *fakeListings) Create(context.Context, repository.CreateListingRequest) (*entity.BarWhiskey, error) {
	panic("unused")
}

func (f *fakeListings) Update(context.Context, uuid.UUID, repository.UpdateListingRequest) (*entity.BarWhiskey, error) {
	panic("unused")
}

func (f *fakeListings) ListMenu(_ context.Context, _ uuid.UUID) ([]*entity.MenuItem, error) {
	return f.items, nil
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestExportMenuXLSX(t *testing.T) {
	barID := uuid.New()
	bars := &fakeBars{bar: &entity.Bar{ID: barID, Name: "The Dram Shop"}}
	listings := &fakeListings{items: []*entity.MenuItem{
		{
			WhiskeyName:  "Lagavulin 16",
			Distillery:   strPtr("Lagavulin"),
			SpiritType:   "scotch",
			Price:        f64Ptr(18),
			PourSize:     strPtr("1oz"),
			Available:    true,
			LastVerified: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			WhiskeyName: "Buffalo Trace",
			SpiritType:  "bourbon",
			Price:       f64Ptr(9),
			Available:   false,
		},
	}}

	svc := NewService(bars, listings, nil)
	data, err := svc.ExportMenuXLSX(context.Background(), barID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Menu")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two listings")

	assert.Equal(t, "Whiskey", rows[0][0])
	assert.Equal(t, "Lagavulin 16", rows[1][0])
	assert.Equal(t, "Lagavulin", rows[1][1])
	assert.Equal(t, "yes", rows[1][7])
	assert.Equal(t, "2026-08-01", rows[1][9])
	assert.Equal(t, "Buffalo Trace", rows[2][0])
	assert.Equal(t, "no", rows[2][7])
}

func TestExportMenuXLSXUnknownBar(t *testing.T) {
	svc := NewService(&fakeBars{}, &fakeListings{}, nil)

	_, err := svc.ExportMenuXLSX(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestExportMenuXLSXEmptyMenu(t *testing.T) {
	barID := uuid.New()
	svc := NewService(&fakeBars{bar: &entity.Bar{ID: barID, Name: "New Bar"}}, &fakeListings{}, nil)

	data, err := svc.ExportMenuXLSX(context.Background(), barID)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Menu")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
