package store

import "github.com/rpggio/artvault/internal/domain/art"

// slots is the ordered record storage shared by every repository variant.
type slots struct {
	items []*art.Record
}

func (s *slots) Add(rec *art.Record) {
	s.items = append(s.items, rec)
}

func (s *slots) Update(index int, rec *art.Record) bool {
	if !s.inRange(index) {
		return false
	}
	s.items[index] = rec
	return true
}

func (s *slots) Remove(index int) bool {
	if !s.inRange(index) {
		return false
	}
	copy(s.items[index:], s.items[index+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return true
}

func (s *slots) Get(index int) *art.Record {
	if !s.inRange(index) {
		return nil
	}
	return s.items[index]
}

func (s *slots) Size() int {
	return len(s.items)
}

func (s *slots) Clear() {
	s.items = nil
}

func (s *slots) snapshot() []*art.Record {
	out := make([]*art.Record, len(s.items))
	copy(out, s.items)
	return out
}

func (s *slots) replace(records []*art.Record) {
	s.items = make([]*art.Record, len(records))
	copy(s.items, records)
}

func (s *slots) inRange(index int) bool {
	return index >= 0 && index < len(s.items)
}
