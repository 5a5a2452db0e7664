package scene

import "time"

type SaveResult struct {
	ID        string
	Name      string
	Packets   int
	Fails     []FlattenFailure
	CreatedAt time.Time
}

func (s *SaveResult) TotalPolygons() int {
	return s.Packets + len(s.Fails)
}
