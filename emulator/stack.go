package emulator

// Stack of program positions.
type Stack struct {
	Data []int
}

func (s *Stack) Push(pos int) {
	s.Data = append(s.Data, pos)
}

func (s *Stack) Pop() (pos int, ok bool) {
	pos, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Len() int {
	return len(s.Data)
}

func (s *Stack) Peek() (pos int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
