package domain

// DuplicateGroup - города с совпадающим нормализованным названием
type DuplicateGroup struct {
	Key    string `json:"key"`
	Cities []City `json:"cities"`
}

// Size returns the number of rows in the group.
func (g DuplicateGroup) Size() int {
	return len(g.Cities)
}

// BatchStats - итог пакетной операции обслуживания
type BatchStats struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	NotFound  int `json:"not_found"`
	Failed    int `json:"failed"`
}

// Add merges counters of another batch.
func (s *BatchStats) Add(o BatchStats) {
	s.Processed += o.Processed
	s.Updated += o.Updated
	s.Unchanged += o.Unchanged
	s.NotFound += o.NotFound
	s.Failed += o.Failed
}
