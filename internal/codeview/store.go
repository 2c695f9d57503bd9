// Package codeview holds the state of the auxiliary "view source" panel:
// which source files the active page registered and whether the panel is
// open.
package codeview

import (
	"slices"

	"github.com/san-kum/moire/internal/observable"
)

// Store is owned by the view tree that renders the panel.
type Store struct {
	files         *observable.Value[[]string]
	open          *observable.Value[bool]
	inlineTrigger *observable.Value[bool]
}

func NewStore() *Store {
	return &Store{
		files:         observable.NewWithEqual([]string{}, slices.Equal[[]string]),
		open:          observable.NewComparable(false),
		inlineTrigger: observable.NewComparable(false),
	}
}

// RegisterCodeFiles replaces the file list.
func (s *Store) RegisterCodeFiles(files []string) {
	s.files.Set(slices.Clone(files))
}

// ClearCodeFiles empties the file list.
func (s *Store) ClearCodeFiles() {
	s.files.Set([]string{})
}

func (s *Store) SetCodeViewerOpen(open bool) {
	s.open.Set(open)
}

func (s *Store) SetUseInlineCodeTrigger(inline bool) {
	s.inlineTrigger.Set(inline)
}

// Files returns a copy of the registered paths in order.
func (s *Store) Files() []string { return slices.Clone(s.files.Get()) }

func (s *Store) IsOpen() bool { return s.open.Get() }

func (s *Store) UseInlineTrigger() bool { return s.inlineTrigger.Get() }

func (s *Store) SubscribeFiles(fn func([]string)) func() {
	return s.files.Subscribe(func(files []string) { fn(slices.Clone(files)) })
}

func (s *Store) SubscribeOpen(fn func(bool)) func() {
	return s.open.Subscribe(fn)
}
