package pixbuf

import "fmt"

// Color is an RGB triple with 8-bit components.
//
// Each component ranges from 0 to 255. Color is a plain value type:
// copy it freely, compare it with ==.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Named colors used throughout the toolkit. A freshly created Buffer is
// filled with Black.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Hex returns the color in "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
