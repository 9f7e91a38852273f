package ui

import (
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/storage"
	"github.com/xolan/croplog/internal/vocabulary"
)

// EntriesLoadedMsg carries a fresh copy of the collection to every view.
type EntriesLoadedMsg struct {
	Entries []entry.CropEntry
	Resolve func(id string) vocabulary.Plant
	Warning *storage.ParseWarning
	Err     error
}

// DeleteRequestMsg asks the root model to delete an entry.
type DeleteRequestMsg struct {
	ID string
}

// EntryDeletedMsg reports the outcome of a DeleteRequestMsg.
type EntryDeletedMsg struct {
	ID  string
	Err error
}

// ReloadRequestMsg asks the root model to reload the collection.
type ReloadRequestMsg struct{}
