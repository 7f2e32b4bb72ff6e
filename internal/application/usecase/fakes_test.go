package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
)

// Dobles en memoria con la misma semántica que los repositorios de postgres:
// unicidad de nombre sin distinguir mayúsculas entre activas, guarda de baja
// de ubicaciones, unicidad de código de artículo y secuencia máxima por prefijo.

type fakeLocationRepo struct {
	locations map[string]*entity.Location
	// itemsIn, si se fija, emula al repositorio real contando los artículos
	// activos que aún referencian la ubicación antes de permitir la baja.
	itemsIn func(locationID string) int
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[string]*entity.Location)}
}

func (r *fakeLocationRepo) activeByName(name string) *entity.Location {
	for _, loc := range r.locations {
		if loc.Active && strings.EqualFold(loc.Name, name) {
			return loc
		}
	}
	return nil
}

func (r *fakeLocationRepo) Create(_ context.Context, loc *entity.Location) error {
	if r.activeByName(loc.Name) != nil {
		return domain.ErrDuplicateName
	}
	r.locations[loc.ID] = loc
	return nil
}

func (r *fakeLocationRepo) Reactivate(_ context.Context, name string) (*entity.Location, error) {
	var candidate *entity.Location
	for _, loc := range r.locations {
		if loc.Active || !strings.EqualFold(loc.Name, name) {
			continue
		}
		if candidate == nil || loc.CreatedAt.After(candidate.CreatedAt) {
			candidate = loc
		}
	}
	if candidate == nil {
		return nil, nil
	}
	candidate.Active = true
	return candidate, nil
}

func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	loc, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	return loc, nil
}

func (r *fakeLocationRepo) Deactivate(_ context.Context, id string) error {
	loc, ok := r.locations[id]
	if !ok || !loc.Active {
		return domain.ErrNotFound
	}
	if r.itemsIn != nil && r.itemsIn(id) > 0 {
		return domain.ErrLocationInUse
	}
	loc.Active = false
	return nil
}

func (r *fakeLocationRepo) ListActive(_ context.Context) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, loc := range r.locations {
		if loc.Active {
			out = append(out, loc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
	// failCreates fuerza las próximas N altas a colisionar el código, como
	// haría el índice único ante dos altas con la misma secuencia calculada.
	failCreates int
	createCalls int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.createCalls++
	if r.failCreates > 0 {
		r.failCreates--
		return domain.ErrCodeConflict
	}
	for _, it := range r.items {
		if it.Code == item.Code {
			return domain.ErrCodeConflict
		}
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return it, nil
}

func (r *fakeItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeItemRepo) UpdateStock(_ context.Context, id string, stock int64) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Stock = stock
	return nil
}

func (r *fakeItemRepo) UpdateLocation(_ context.Context, id, locationID string) error {
	it, ok := r.items[id]
	if !ok || !it.Active {
		return domain.ErrNotFound
	}
	it.LocationID = locationID
	return nil
}

func (r *fakeItemRepo) Deactivate(_ context.Context, id string) error {
	it, ok := r.items[id]
	if !ok || !it.Active {
		return domain.ErrNotFound
	}
	it.Active = false
	return nil
}

func (r *fakeItemRepo) MaxSequence(_ context.Context, prefix string) (int, error) {
	max := 0
	for _, it := range r.items {
		rest, ok := strings.CutPrefix(it.Code, prefix+"-")
		if !ok {
			continue
		}
		n := 0
		for _, c := range rest {
			if c < '0' || c > '9' {
				n = 0
				break
			}
			n = n*10 + int(c-'0')
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (r *fakeItemRepo) SearchByDescription(_ context.Context, substring string, includeInactive bool, limit int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if !includeInactive && !it.Active {
			continue
		}
		if strings.Contains(strings.ToLower(it.Description), strings.ToLower(substring)) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Description < out[j].Description })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeItemRepo) CountActiveByLocation(_ context.Context, locationID string) (int64, error) {
	var n int64
	for _, it := range r.items {
		if it.Active && it.LocationID == locationID {
			n++
		}
	}
	return n, nil
}
