package vocabulary

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/kv"
	"github.com/xolan/croplog/internal/storage"
)

func newStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemory()
	return New(mem, nil), mem
}

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Cherry Tomato", "cherry_tomato"},
		{"  Σέλινο   φύλλων ", "σέλινο_φύλλων"},
		{"Basil", "basil"},
		{"Red\tHot  Chili", "red_hot_chili"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveID(tt.name))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	want := Plant{ID: "okra", Name: "Okra", Color: "#6B7280", Icon: "🌱"}
	assert.Equal(t, want, Placeholder("okra"))
	assert.Equal(t, "Μπάμια", Placeholder("μπάμια").Name)
	assert.Equal(t, "", Placeholder("").Name)
}

func TestAllPlants_BuiltinsFirst(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	plants, err := s.AllPlants(ctx, i18n.Greek)
	require.NoError(t, err)
	if diff := cmp.Diff(BuiltinPlants(i18n.Greek), plants); diff != "" {
		t.Errorf("AllPlants() mismatch (-want +got):\n%s", diff)
	}

	added, err := s.AddCustomPlant(ctx, i18n.Greek, PlantInput{Name: "Cherry Tomato", Color: "#DC2626", Icon: "🍅"})
	require.NoError(t, err)
	assert.Equal(t, "cherry_tomato", added.ID)

	plants, err = s.AllPlants(ctx, i18n.English)
	require.NoError(t, err)
	require.Len(t, plants, 6)
	assert.Equal(t, "Vine", plants[0].Name)
	assert.Equal(t, added, plants[5])
}

func TestAddCustomPlant_Duplicates(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.AddCustomPlant(ctx, i18n.Greek, PlantInput{Name: "Basil", Color: "#16A34A", Icon: "🌿"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		lang  i18n.Language
		input string
	}{
		{"builtin id", i18n.Greek, "Tomato"},
		{"builtin name", i18n.Greek, "Ντομάτα"},
		{"english builtin name", i18n.English, "Pepper"},
		{"custom id", i18n.Greek, "basil"},
		{"custom name", i18n.English, "Basil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddCustomPlant(ctx, tt.lang, PlantInput{Name: tt.input, Color: "#16A34A", Icon: "🌿"})
			assert.ErrorIs(t, err, apperr.ErrDuplicate)
		})
	}

	custom, err := s.CustomPlants(ctx)
	require.NoError(t, err)
	assert.Len(t, custom, 1)
}

func TestAddCustomPlant_GreekNameAllowedInEnglish(t *testing.T) {
	s, _ := newStore(t)

	// Duplicate checks only consider the built-ins of the active language.
	p, err := s.AddCustomPlant(context.Background(), i18n.English, PlantInput{Name: "Ντομάτα", Color: "#DC2626", Icon: "🍅"})
	require.NoError(t, err)
	assert.Equal(t, "ντομάτα", p.ID)
}

func TestAddCustomPlant_Validation(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	inputs := []PlantInput{
		{Name: "   ", Color: "#16A34A", Icon: "🌿"},
		{Name: "Okra", Color: "green", Icon: "🌿"},
		{Name: "Okra", Color: "#16A34A", Icon: ""},
	}
	for _, in := range inputs {
		_, err := s.AddCustomPlant(ctx, i18n.Greek, in)
		assert.ErrorIs(t, err, apperr.ErrValidation, "%+v", in)
	}
}

func TestAddCustomTask(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	task, err := s.AddCustomTask(ctx, i18n.Greek, "  Κορφολόγημα ")
	require.NoError(t, err)
	assert.Equal(t, "Κορφολόγημα", task)

	_, err = s.AddCustomTask(ctx, i18n.Greek, "Κορφολόγημα")
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	_, err = s.AddCustomTask(ctx, i18n.Greek, "Πότισμα")
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	// Matching is case-sensitive.
	_, err = s.AddCustomTask(ctx, i18n.English, "watering")
	require.NoError(t, err)

	_, err = s.AddCustomTask(ctx, i18n.Greek, " ")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	raw, _, _ := mem.Get(ctx, storage.CustomTasksKey)
	assert.JSONEq(t, `["Κορφολόγημα","watering"]`, raw)

	tasks, err := s.AllTasks(ctx, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "Watering", tasks[0])
	assert.Equal(t, []string{"Κορφολόγημα", "watering"}, tasks[len(tasks)-2:])
}

func TestCorruptVocabularyIsEmpty(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, storage.CustomPlantsKey, "{nope"))
	require.NoError(t, mem.Set(ctx, storage.CustomTasksKey, `[1, "x"]`))

	plants, err := s.CustomPlants(ctx)
	require.NoError(t, err)
	assert.Empty(t, plants)

	tasks, err := s.CustomTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestReplace(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.AddCustomTask(ctx, i18n.Greek, "Παλιό")
	require.NoError(t, err)

	plants := []Plant{{ID: "okra", Name: "Okra", Color: "#16A34A", Icon: "🌱"}}
	require.NoError(t, s.Replace(ctx, plants, nil))

	gotPlants, err := s.CustomPlants(ctx)
	require.NoError(t, err)
	assert.Equal(t, plants, gotPlants)

	gotTasks, err := s.CustomTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotTasks)
}

func TestResolvePlant(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	p, err := s.ResolvePlant(ctx, i18n.English, "eggplant")
	require.NoError(t, err)
	assert.Equal(t, "Eggplant", p.Name)

	p, err = s.ResolvePlant(ctx, i18n.Greek, "okra")
	require.NoError(t, err)
	assert.Equal(t, Placeholder("okra"), p)
}
