package memory

import (
	"errors"
	"fmt"
	"sync"

	"eventSubmitter/internal/models"
)

var ErrUnknownReference = errors.New("unknown reference identifier")

type RefKind string

const (
	KindTableLayout RefKind = "table_layout"
	KindCategory    RefKind = "category"
	KindClubCard    RefKind = "club_card"
	KindGenre       RefKind = "genre"
)

// Directory maps reference identifiers to display names, per kind. It is
// the stand-in for the remote side's document lookup.
type Directory struct {
	mu   sync.RWMutex
	refs map[RefKind]map[string]string
}

func NewDirectory() *Directory {
	return &Directory{
		refs: map[RefKind]map[string]string{
			KindTableLayout: {},
			KindCategory:    {},
			KindClubCard:    {},
			KindGenre:       {},
		},
	}
}

// Seeded returns a directory pre-populated with demo references, enough to
// exercise the client end to end without any external backend.
func Seeded() *Directory {
	d := NewDirectory()

	d.Add(KindTableLayout, "tl-main-floor", "Main Floor")
	d.Add(KindTableLayout, "tl-terrace", "Terrace")
	d.Add(KindCategory, "cat-live-music", "Live Music")
	d.Add(KindCategory, "cat-private", "Private Party")
	d.Add(KindClubCard, "cc-gold", "Gold Card")
	d.Add(KindClubCard, "cc-silver", "Silver Card")
	d.Add(KindGenre, "gen-techno", "Techno")
	d.Add(KindGenre, "gen-rnb", "R&B")

	return d
}

func (d *Directory) Add(kind RefKind, id, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.refs[kind][id] = name
}

func (d *Directory) resolve(kind RefKind, ids []string) ([]models.NamedRef, error) {
	resolved := make([]models.NamedRef, 0, len(ids))

	for _, id := range ids {
		name, ok := d.refs[kind][id]
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", kind, id, ErrUnknownReference)
		}

		resolved = append(resolved, models.NamedRef{ID: id, Name: name})
	}

	return resolved, nil
}

// ResolveEventRefs resolves all four reference lists of an event request.
// Any unknown identifier fails the whole resolution.
func (d *Directory) ResolveEventRefs(event *models.EventRequest) (*models.ResolvedRefs, error) {
	const op = "storage.memory.ResolveEventRefs"

	d.mu.RLock()
	defer d.mu.RUnlock()

	layouts, err := d.resolve(KindTableLayout, event.TableLayouts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	categories, err := d.resolve(KindCategory, event.Categories)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cards, err := d.resolve(KindClubCard, event.ClubCardIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	genres, err := d.resolve(KindGenre, event.EventGenre)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.ResolvedRefs{
		TableLayouts: layouts,
		Categories:   categories,
		ClubCardIDs:  cards,
		EventGenre:   genres,
	}, nil
}
