package usecase_test

import (
	"errors"
	"sort"
	"strings"

	"github.com/Agslz/inventory-control-api-rest/internal/domain/entity"
)

// errStorage simula un fallo crudo del motor de persistencia.
var errStorage = errors.New("fallo de storage simulado")

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	byID   map[int64]*entity.Category
	nextID int64

	// errores forzados por operación
	getErr    error
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[int64]*entity.Category{}}
}

func (f *fakeCategoryRepo) seed(c entity.Category) *entity.Category {
	f.byID[c.ID] = &c
	if c.ID > f.nextID {
		f.nextID = c.ID
	}
	return &c
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	category.ID = f.nextID
	clone := *category
	f.byID[clone.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]int64, 0, len(f.byID))
	for id := range f.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.Category, 0, len(ids))
	for _, id := range ids {
		clone := *f.byID[id]
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeCategoryRepo) Update(category *entity.Category) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	clone := *category
	f.byID[clone.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Delete(id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byID, id)
	return nil
}

type fakeProductRepo struct {
	byID   map[int64]*entity.Product
	nextID int64

	getErr    error
	listErr   error
	searchErr error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	product.ID = f.nextID
	clone := *product
	f.byID[clone.ID] = &clone
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetByNameLike(name string) ([]*entity.Product, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	all, err := f.List()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(name)
	var matched []*entity.Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]int64, 0, len(f.byID))
	for id := range f.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		clone := *f.byID[id]
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	clone := *product
	f.byID[clone.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Delete(id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byID, id)
	return nil
}
