package utils

import (
	"strings"
	"unicode"

	"github.com/dramhound/dramhound/gen/ent"
	"github.com/dramhound/dramhound/internal/entity"
)

// NormalizeKey lowers, strips punctuation and collapses whitespace so that
// "Lagavulin 16yr." and "lagavulin  16yr" resolve to the same catalog key.
func NormalizeKey(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			// punctuation contributes nothing to identity
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func ToBar(e *ent.Bar) *entity.Bar {
	return &entity.Bar{
		ID:         e.ID,
		Name:       e.Name,
		Address:    e.Address,
		City:       e.City,
		WebsiteURL: e.WebsiteURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToWhiskey(e *ent.Whiskey) *entity.Whiskey {
	return &entity.Whiskey{
		ID:            e.ID,
		Name:          e.Name,
		Distillery:    e.Distillery,
		NameKey:       e.NameKey,
		DistilleryKey: e.DistilleryKey,
		SpiritType:    e.SpiritType,
		AgeYears:      e.AgeYears,
		ABV:           e.Abv,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToBarWhiskey(e *ent.BarWhiskey) *entity.BarWhiskey {
	return &entity.BarWhiskey{
		ID:           e.ID,
		BarID:        e.BarID,
		WhiskeyID:    e.WhiskeyID,
		Price:        e.Price,
		PourSize:     e.PourSize,
		Available:    e.Available,
		Notes:        e.Notes,
		SourceType:   e.SourceType,
		LastVerified: e.LastVerified,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToTrawlJob(e *ent.TrawlJob) *entity.TrawlJob {
	return &entity.TrawlJob{
		ID:           e.ID,
		BarID:        e.BarID,
		SourceRef:    e.SourceRef,
		SourceType:   e.SourceType,
		Status:       e.Status,
		WhiskeyCount: e.WhiskeyCount,
		Result:       e.Result,
		ErrorMessage: e.ErrorMessage,
		SubmittedBy:  e.SubmittedBy,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
