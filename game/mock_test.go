package game

// scriptedSource replays faces in order, wrapping around at the end.
type scriptedSource struct {
	faces []int
	next  int
	calls int
}

func (s *scriptedSource) Intn(n int) int {
	face := s.faces[s.next%len(s.faces)]
	s.next++
	s.calls++
	return face % n
}
