package color

import (
	"errors"
	"net/http"
	"regexp"
	"root/generator"
	"root/model"
	"strings"

	"github.com/gin-gonic/gin"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var invalidHexMsg = "Invalid hex color! Expected a value like #1a2b3c."

// Accepts the "#rrggbb" form and the "#rgb" CSS shorthand
var hexColorPattern = regexp.MustCompile(`^#([0-9a-f]{6}|[0-9a-f]{3})$`)

// ColorResponse carries one color in its three textual encodings
type ColorResponse struct {
	Hex string `json:"hex"`
	RGB string `json:"rgb"`
	HSL string `json:"hsl"`
}

// Encode a color into the response body
func encodeColor(c model.Color) ColorResponse {
	return ColorResponse{
		Hex: c.Hex(),
		RGB: c.RGB(),
		HSL: c.HSL(),
	}
}

// Parse a hex color value, with or without the leading hash
func parseHexColor(hex string) (model.Color, error) {
	hex = strings.ToLower(strings.TrimSpace(hex))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	// Sscanf inside colorful.Hex stops at the first non-hex character
	// without erroring, so validate the whole string up front
	if !hexColorPattern.MatchString(hex) {
		return model.Color{}, errors.New("hex color must have 3 or 6 hex digits")
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return model.Color{}, err
	}

	r, g, b := parsed.RGB255()
	return model.Color{R: int(r), G: int(g), B: int(b)}, nil
}

// Handle Get Random Color
func HandleGetRandomColor(c *gin.Context) {
	randomColor := generator.RandomColor()
	c.JSON(http.StatusOK, encodeColor(randomColor))
}

// Handle Convert Color
func HandleConvertColor(c *gin.Context) {
	parsed, err := parseHexColor(c.Param("hex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidHexMsg})
		return
	}

	c.JSON(http.StatusOK, encodeColor(parsed))
}
