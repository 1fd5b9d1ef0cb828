package domain

// PhotoCandidate - фотография из поиска, живёт только во время выбора
type PhotoCandidate struct {
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Likes       int    `json:"likes"`
	Description string `json:"description,omitempty"`
}

// AspectRatio returns width/height, zero for degenerate sizes.
func (p PhotoCandidate) AspectRatio() float64 {
	if p.Width <= 0 || p.Height <= 0 {
		return 0
	}
	return float64(p.Width) / float64(p.Height)
}
