package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

func TestProject_FileBaseName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Shop", "My_Shop"},
		{"My   Shop\tNorth", "My_Shop_North"},
		{"a/b\\c", "a_b_c"},
		{"Single", "Single"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.Project{Name: tt.name}.FileBaseName())
		})
	}
}

func TestProject_CloneIndependiente(t *testing.T) {
	p := entity.Project{
		ID:       "p1",
		Products: []entity.Product{{ID: "a", Stock: 1}},
		History:  []entity.StockLog{{ID: "l1", ProductID: "a"}},
	}
	c := p.Clone()
	c.Products[0].Stock = 99
	c.History[0].Quantity = 7

	assert.Equal(t, 1, p.Products[0].Stock)
	assert.Equal(t, 0, p.History[0].Quantity)

	empty := entity.Project{}.Clone()
	assert.NotNil(t, empty.Products)
	assert.NotNil(t, empty.History)
}

func TestProject_FindProduct(t *testing.T) {
	p := entity.Project{Products: []entity.Product{{ID: "a"}, {ID: "b"}}}
	got, ok := p.FindProduct("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, 1, p.ProductIndex("b"))

	_, ok = p.FindProduct("zzz")
	assert.False(t, ok)
	assert.Equal(t, -1, p.ProductIndex("zzz"))
}

func TestAppState_ActiveProject(t *testing.T) {
	s := entity.NewAppState()
	_, ok := s.ActiveProject()
	assert.False(t, ok)

	id := "p2"
	s.Projects = []entity.Project{{ID: "p1"}, {ID: "p2", Name: "B"}}
	s.ActiveProjectID = &id

	p, ok := s.ActiveProject()
	require.True(t, ok)
	assert.Equal(t, "B", p.Name)
	assert.True(t, s.IsActive("p2"))
	assert.False(t, s.IsActive("p1"))

	dangling := "gone"
	s.ActiveProjectID = &dangling
	_, ok = s.ActiveProject()
	assert.False(t, ok)
}

func TestAppState_CloneNoComparteActivo(t *testing.T) {
	id := "p1"
	s := entity.AppState{Projects: []entity.Project{{ID: "p1", Name: "A"}}, ActiveProjectID: &id}
	c := s.Clone()
	*c.ActiveProjectID = "other"
	c.Projects[0].Name = "Z"

	assert.Equal(t, "p1", *s.ActiveProjectID)
	assert.Equal(t, "A", s.Projects[0].Name)
}

func TestTimestamp_Milisegundos(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 5_000_000, time.UTC)
	ts := entity.NewTimestamp(at)
	assert.Equal(t, entity.Timestamp(at.UnixMilli()), ts)
	assert.True(t, at.Equal(ts.Time()))
}
