package flashcard

import "sync"

// DefaultColors are the light card backgrounds handed out in rotation.
var DefaultColors = []string{
	"#E3F2FD", "#FCE4EC", "#F3E5F5", "#E8EAF6", "#E0F2F1",
	"#FFF9C4", "#FFECB3", "#FFE0B2", "#F1F8E9", "#E1F5FE",
	"#F0F4C3", "#D7CCC8", "#CFD8DC", "#C8E6C9", "#B2EBF2",
}

// Palette assigns colours round-robin. The index is never reset, so cards
// created by later batches continue the rotation.
type Palette struct {
	mu     sync.Mutex
	colors []string
	next   int
}

func NewPalette(colors []string) *Palette {
	if len(colors) == 0 {
		colors = DefaultColors
	}
	return &Palette{colors: colors}
}

// Next returns the next colour in the rotation.
func (p *Palette) Next() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	color := p.colors[p.next]
	p.next = (p.next + 1) % len(p.colors)
	return color
}
