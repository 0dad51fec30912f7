package flashcard

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Id prefixes by origin.
const (
	IDPrefixGenerated  = "gen"
	IDPrefixImportText = "import-txt"
	IDPrefixImportXLSX = "import-xlsx"
)

// IDGenerator creates card ids. index is the source line of the card.
type IDGenerator interface {
	NewID(prefix string, index int) string
}

// NanoIDGenerator builds "<prefix>-<unix millis>-<index>-<nanoid>". The
// random suffix keeps ids unique across batches created in the same
// millisecond.
type NanoIDGenerator struct {
	now func() time.Time
}

func NewNanoIDGenerator() *NanoIDGenerator {
	return &NanoIDGenerator{now: time.Now}
}

func (g *NanoIDGenerator) NewID(prefix string, index int) string {
	return fmt.Sprintf("%s-%d-%d-%s", prefix, g.now().UnixMilli(), index, gonanoid.Must(8))
}
