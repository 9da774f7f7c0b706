package entry

import "slices"

// Store owns the ordered entry collection and the edit cursor.
// It is not safe for concurrent use; a single UI loop drives it.
type Store struct {
	clock   Clock
	entries []Entry
	lastID  int64

	editing   int64
	isEditing bool
}

func NewStore(clock Clock) *Store {
	return &Store{clock: clock}
}

// Add validates f and appends a new entry with a fresh id.
func (s *Store) Add(f Fields) (Entry, error) {
	if err := f.Validate(); err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:          s.nextID(),
		Type:        f.Type,
		Description: f.Description,
		Amount:      f.Amount,
		Date:        DateOf(f.Date.Time),
	}
	s.entries = append(s.entries, e)

	return e, nil
}

// Update replaces the mutable fields of the entry with the given id,
// keeping its position and id.
func (s *Store) Update(id int64, f Fields) (Entry, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Entry{}, &NotFoundError{ID: id}
	}

	if err := f.Validate(); err != nil {
		return Entry{}, err
	}

	e := &s.entries[idx]
	e.Type = f.Type
	e.Description = f.Description
	e.Amount = f.Amount
	e.Date = DateOf(f.Date.Time)

	s.clearCursor(id)

	return *e, nil
}

// Delete removes the entry with the given id. Unknown ids are ignored.
func (s *Store) Delete(id int64) {
	s.clearCursor(id)

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	s.entries = slices.Delete(s.entries, idx, idx+1)
}

// BeginEdit points the edit cursor at id and returns the entry for pre-filling a form.
func (s *Store) BeginEdit(id int64) (Entry, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Entry{}, &NotFoundError{ID: id}
	}

	s.editing = id
	s.isEditing = true

	return s.entries[idx], nil
}

// CancelEdit abandons an edit in progress without touching the collection.
func (s *Store) CancelEdit() {
	s.editing = 0
	s.isEditing = false
}

// Editing returns the id under edit, if any.
func (s *Store) Editing() (int64, bool) {
	return s.editing, s.isEditing
}

// Submit updates the entry under edit, or adds a new one when nothing is being edited.
func (s *Store) Submit(f Fields) (Entry, error) {
	if id, ok := s.Editing(); ok {
		return s.Update(id, f)
	}

	return s.Add(f)
}

// Entries returns a copy of the collection in insertion order.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) Summary() Summary {
	return Summarize(s.entries)
}

// nextID derives ids from the creation time in milliseconds, bumping past
// the last issued id so ids stay unique even within the same millisecond.
func (s *Store) nextID() int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	s.lastID = id

	return id
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.ID == id })
}

func (s *Store) clearCursor(id int64) {
	if s.isEditing && s.editing == id {
		s.CancelEdit()
	}
}
