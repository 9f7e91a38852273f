package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/vocabulary"
)

// record is an incoming entry. Only the user fields survive a restore.
type record struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Plant string `json:"plant"`
	Task  string `json:"task"`
	Notes string `json:"notes"`
}

func (r record) fields() entry.Fields {
	return entry.Fields{Date: r.Date, Plant: r.Plant, Task: r.Task, Notes: r.Notes}
}

// legacyRecord is an element of a bare-array backup. Any non-empty id is
// accepted, whatever its JSON type; notes that are not a string keep their
// JSON text.
type legacyRecord struct {
	ID    json.RawMessage `json:"id"`
	Date  string          `json:"date"`
	Plant string          `json:"plant"`
	Task  string          `json:"task"`
	Notes json.RawMessage `json:"notes"`
}

func (lr legacyRecord) record() record {
	return record{ID: jsonText(lr.ID), Date: lr.Date, Plant: lr.Plant, Task: lr.Task, Notes: jsonText(lr.Notes)}
}

// isTruthy reports whether raw holds a value other than null, false, 0 or "".
func isTruthy(raw json.RawMessage) bool {
	if isAbsent(raw) {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	}
	return true
}

// jsonText returns a JSON string unquoted and any other value as its JSON text.
// Absent and null values give "".
func jsonText(raw json.RawMessage) string {
	if isAbsent(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// rawDocument keeps each field undecoded so presence can be checked.
type rawDocument struct {
	Entries      json.RawMessage `json:"entries"`
	CustomPlants json.RawMessage `json:"customPlants"`
	CustomTasks  json.RawMessage `json:"customTasks"`
	Version      json.RawMessage `json:"version"`
}

// Import restores raw, which is either a Document or a bare array of entries.
// Entries are appended with fresh ids; nothing already stored is removed.
func (c *Codec) Import(ctx context.Context, raw []byte) (ImportResult, error) {
	if !json.Valid(raw) {
		return ImportResult{}, apperr.InvalidFormat("backup is not valid JSON", nil)
	}

	switch firstByte(raw) {
	case '[':
		return c.importLegacy(ctx, raw)
	case '{':
		return c.importDocument(ctx, raw)
	default:
		return ImportResult{}, apperr.InvalidFormat("backup must be a JSON object or array", nil)
	}
}

func (c *Codec) importLegacy(ctx context.Context, raw []byte) (ImportResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return ImportResult{}, apperr.InvalidFormat("backup array could not be decoded", err)
	}

	// Every element is checked before anything is written.
	records := make([]record, 0, len(elements))
	for i, el := range elements {
		if firstByte(el) != '{' {
			return ImportResult{}, apperr.Validation("entry %d is not an object", i)
		}
		var lr legacyRecord
		if err := json.Unmarshal(el, &lr); err != nil {
			return ImportResult{}, apperr.Validation("entry %d is malformed: %v", i, err)
		}
		if !isTruthy(lr.ID) || lr.Plant == "" || lr.Task == "" || lr.Date == "" {
			return ImportResult{}, apperr.Validation("entry %d is missing id, plant, task or date", i)
		}
		records = append(records, lr.record())
	}

	if err := c.takeSnapshot(ctx); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Legacy: true}
	c.restore(ctx, records, &result)
	return result, nil
}

func (c *Codec) importDocument(ctx context.Context, raw []byte) (ImportResult, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ImportResult{}, apperr.InvalidFormat("backup document could not be decoded", err)
	}

	required := []struct {
		name  string
		value json.RawMessage
	}{
		{"version", doc.Version},
		{"entries", doc.Entries},
		{"customPlants", doc.CustomPlants},
		{"customTasks", doc.CustomTasks},
	}
	for _, field := range required {
		if isAbsent(field.value) {
			return ImportResult{}, apperr.InvalidFormat(fmt.Sprintf("backup document is missing %q", field.name), nil)
		}
	}

	var version string
	if err := json.Unmarshal(doc.Version, &version); err != nil || version == "" {
		return ImportResult{}, apperr.InvalidFormat("backup version must be a non-empty string", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(doc.Entries, &elements); err != nil {
		return ImportResult{}, apperr.InvalidFormat("backup entries must be an array", err)
	}
	var plants []vocabulary.Plant
	if err := json.Unmarshal(doc.CustomPlants, &plants); err != nil {
		return ImportResult{}, apperr.InvalidFormat("backup customPlants must be an array of plants", err)
	}
	var tasks []string
	if err := json.Unmarshal(doc.CustomTasks, &tasks); err != nil {
		return ImportResult{}, apperr.InvalidFormat("backup customTasks must be an array of strings", err)
	}

	if version != Version {
		c.logger.Info("importing backup written by another format version",
			zap.String("version", version), zap.String("supported", Version))
	}

	if err := c.takeSnapshot(ctx); err != nil {
		return ImportResult{}, err
	}
	if err := c.vocab.Replace(ctx, plants, tasks); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{VocabularyReplaced: true}

	records := make([]record, 0, len(elements))
	for i, el := range elements {
		var r record
		if err := json.Unmarshal(el, &r); err != nil || firstByte(el) != '{' {
			c.logger.Warn("skipping unreadable backup entry", zap.Int("index", i), zap.Error(err))
			result.Skipped++
			continue
		}
		records = append(records, r)
	}
	c.restore(ctx, records, &result)
	return result, nil
}

// restore re-creates each record, skipping the ones that fail.
func (c *Codec) restore(ctx context.Context, records []record, result *ImportResult) {
	for i, r := range records {
		if _, err := c.repo.Create(ctx, r.fields()); err != nil {
			c.logger.Warn("skipping backup entry that could not be restored",
				zap.Int("index", i), zap.String("id", r.ID), zap.Error(err))
			result.Skipped++
			continue
		}
		result.Restored++
	}
	c.logger.Info("backup restored",
		zap.Int("restored", result.Restored),
		zap.Int("skipped", result.Skipped),
		zap.Bool("legacy", result.Legacy))
}

func (c *Codec) takeSnapshot(ctx context.Context) error {
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.Snapshot(ctx)
}

func isAbsent(field json.RawMessage) bool {
	return len(field) == 0 || bytes.Equal(bytes.TrimSpace(field), []byte("null"))
}

func firstByte(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
