// Package vocabulary holds the plants and tasks a user can choose from: the
// built-in lists for each language plus the user's own additions.
package vocabulary

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/kv"
	"github.com/xolan/croplog/internal/storage"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hexColor      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Store persists the custom plant and task lists.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
}

// New returns a Store over kv. A nil logger discards output.
func New(store kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: store, logger: logger}
}

// DeriveID turns a display name into a plant id: trimmed, lower-cased, with
// each run of whitespace replaced by "_".
func DeriveID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// Placeholder is the plant shown for an id missing from the vocabulary.
func Placeholder(id string) Plant {
	name := id
	if r, size := utf8.DecodeRuneInString(id); r != utf8.RuneError {
		name = string(unicode.ToUpper(r)) + id[size:]
	}
	return Plant{ID: id, Name: name, Color: PlaceholderColor, Icon: PlaceholderIcon}
}

// CustomPlants returns the user's plants. Unreadable stored data yields an empty list.
func (s *Store) CustomPlants(ctx context.Context) ([]Plant, error) {
	var plants []Plant
	ok, err := s.read(ctx, storage.CustomPlantsKey, &plants)
	if err != nil {
		return nil, err
	}
	if !ok || plants == nil {
		plants = []Plant{}
	}
	return plants, nil
}

// CustomTasks returns the user's tasks. Unreadable stored data yields an empty list.
func (s *Store) CustomTasks(ctx context.Context) ([]string, error) {
	var tasks []string
	ok, err := s.read(ctx, storage.CustomTasksKey, &tasks)
	if err != nil {
		return nil, err
	}
	if !ok || tasks == nil {
		tasks = []string{}
	}
	return tasks, nil
}

// AllPlants returns the built-in plants for lang followed by the custom ones.
func (s *Store) AllPlants(ctx context.Context, lang i18n.Language) ([]Plant, error) {
	custom, err := s.CustomPlants(ctx)
	if err != nil {
		return nil, err
	}
	return append(BuiltinPlants(lang), custom...), nil
}

// AllTasks returns the built-in tasks for lang followed by the custom ones.
func (s *Store) AllTasks(ctx context.Context, lang i18n.Language) ([]string, error) {
	custom, err := s.CustomTasks(ctx)
	if err != nil {
		return nil, err
	}
	return append(BuiltinTasks(lang), custom...), nil
}

// ResolvePlant finds id in the vocabulary for lang, or returns its placeholder.
func (s *Store) ResolvePlant(ctx context.Context, lang i18n.Language, id string) (Plant, error) {
	plants, err := s.AllPlants(ctx, lang)
	if err != nil {
		return Plant{}, err
	}
	return Resolver(plants)(id), nil
}

// Resolver returns a lookup over plants that falls back to Placeholder.
func Resolver(plants []Plant) func(id string) Plant {
	byID := make(map[string]Plant, len(plants))
	for _, p := range plants {
		if _, dup := byID[p.ID]; !dup {
			byID[p.ID] = p
		}
	}
	return func(id string) Plant {
		if p, ok := byID[id]; ok {
			return p
		}
		return Placeholder(id)
	}
}

// AddCustomPlant appends a user plant. It fails with DUPLICATE when the
// derived id or the name is already used by a built-in plant of lang or by
// another custom plant.
func (s *Store) AddCustomPlant(ctx context.Context, lang i18n.Language, in PlantInput) (Plant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Plant{}, apperr.Validation("plant name is required")
	}
	if !hexColor.MatchString(in.Color) {
		return Plant{}, apperr.Validation("plant colour %q must look like #RRGGBB", in.Color)
	}
	if strings.TrimSpace(in.Icon) == "" {
		return Plant{}, apperr.Validation("plant icon is required")
	}

	plant := Plant{ID: DeriveID(name), Name: name, Color: in.Color, Icon: strings.TrimSpace(in.Icon)}

	custom, err := s.CustomPlants(ctx)
	if err != nil {
		return Plant{}, err
	}
	for _, p := range append(BuiltinPlants(lang), custom...) {
		if p.ID == plant.ID || p.Name == plant.Name {
			return Plant{}, apperr.Duplicate("plant %q already exists", name)
		}
	}

	if err := s.write(ctx, storage.CustomPlantsKey, append(custom, plant)); err != nil {
		return Plant{}, err
	}
	s.logger.Debug("custom plant added", zap.String("id", plant.ID))
	return plant, nil
}

// AddCustomTask appends a user task. Matching is exact and case-sensitive
// against the built-in tasks of lang and the existing custom tasks.
func (s *Store) AddCustomTask(ctx context.Context, lang i18n.Language, name string) (string, error) {
	task := strings.TrimSpace(name)
	if task == "" {
		return "", apperr.Validation("task name is required")
	}

	custom, err := s.CustomTasks(ctx)
	if err != nil {
		return "", err
	}
	for _, existing := range append(BuiltinTasks(lang), custom...) {
		if existing == task {
			return "", apperr.Duplicate("task %q already exists", task)
		}
	}

	if err := s.write(ctx, storage.CustomTasksKey, append(custom, task)); err != nil {
		return "", err
	}
	s.logger.Debug("custom task added", zap.String("task", task))
	return task, nil
}

// Replace overwrites both custom lists.
func (s *Store) Replace(ctx context.Context, plants []Plant, tasks []string) error {
	if plants == nil {
		plants = []Plant{}
	}
	if tasks == nil {
		tasks = []string{}
	}
	if err := s.write(ctx, storage.CustomPlantsKey, plants); err != nil {
		return err
	}
	return s.write(ctx, storage.CustomTasksKey, tasks)
}

// read decodes key into into. It reports false when the key is missing or
// its value does not decode; into must then be discarded.
func (s *Store) read(ctx context.Context, key string, into any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, apperr.Storage("failed to read "+key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		s.logger.Warn("stored vocabulary is unreadable, treating as empty",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Store) write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperr.Storage("failed to encode "+key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return apperr.Storage("failed to save "+key, err)
	}
	return nil
}
