package receipt

import (
	"time"

	"github.com/tabtally/tabtally/internal/parsing"
)

// Receipt is a stored receipt: the structured record the parser produced for
// one upload, plus the upload's metadata. The parsed record itself is never
// mutated after creation except for the item selection flags, which belong
// to this layer.
type Receipt struct {
	ID          string                `json:"id"`
	Parsed      parsing.ParsedReceipt `json:"parsed"`
	Filename    string                `json:"filename"`
	ContentType string                `json:"content_type"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}
