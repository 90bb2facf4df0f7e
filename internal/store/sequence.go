package store

// sequenceCollection holds the last issued ID per collection. Keeping the
// counters out of the collections themselves means deleting records never
// frees an ID for reissue.
const sequenceCollection = "secuencias"

// NextID reserves and returns the next identifier for a collection.
// IDs start at 1 and only ever grow.
func (s *Store) NextID(name string) (int, error) {
	unlock := s.Lock(sequenceCollection)
	defer unlock()

	counters := make(map[string]int)
	if err := s.Load(sequenceCollection, &counters); err != nil {
		return 0, err
	}

	next := counters[name] + 1
	counters[name] = next

	if err := s.Save(sequenceCollection, counters); err != nil {
		return 0, err
	}
	return next, nil
}
