// Package category holds the display metadata of opportunity and news
// categories. Unknown codes resolve to the "other" entry.
package category

import (
	"strings"

	"github.com/gosimple/slug"
)

// Other is the fallback category code.
const Other = "other"

// ColorPair is the foreground/background couple used by badges and cards.
type ColorPair struct {
	Text       string `json:"text"`
	Background string `json:"background"`
}

// Meta is the display metadata of one category.
type Meta struct {
	Code  string    `json:"code"`
	Icon  string    `json:"icon"`
	Color ColorPair `json:"color"`
	Label string    `json:"label"`
}

var ordered = []Meta{
	{Code: "flight", Icon: "plane", Color: ColorPair{"#1D4ED8", "#DBEAFE"}, Label: "Voli"},
	{Code: "train", Icon: "train-front", Color: ColorPair{"#0F766E", "#CCFBF1"}, Label: "Treni"},
	{Code: "energy", Icon: "zap", Color: ColorPair{"#B45309", "#FEF3C7"}, Label: "Luce e gas"},
	{Code: "telecom", Icon: "smartphone", Color: ColorPair{"#7C3AED", "#EDE9FE"}, Label: "Telefonia"},
	{Code: "bank", Icon: "landmark", Color: ColorPair{"#047857", "#D1FAE5"}, Label: "Banche"},
	{Code: "insurance", Icon: "shield", Color: ColorPair{"#0369A1", "#E0F2FE"}, Label: "Assicurazioni"},
	{Code: "ecommerce", Icon: "shopping-bag", Color: ColorPair{"#BE185D", "#FCE7F3"}, Label: "Acquisti online"},
	{Code: "warranty", Icon: "badge-check", Color: ColorPair{"#4D7C0F", "#ECFCCB"}, Label: "Garanzie"},
	{Code: "tax", Icon: "receipt", Color: ColorPair{"#9A3412", "#FFEDD5"}, Label: "Fisco"},
	{Code: "class_action", Icon: "users", Color: ColorPair{"#B91C1C", "#FEE2E2"}, Label: "Class action"},
	{Code: Other, Icon: "file-text", Color: ColorPair{"#374151", "#F3F4F6"}, Label: "Altro"},
}

var byCode = func() map[string]Meta {
	m := make(map[string]Meta, len(ordered))
	for _, meta := range ordered {
		m[meta.Code] = meta
	}
	return m
}()

// Normalize turns free-form input ("Class Action", "class-action") into a
// category code ("class_action").
func Normalize(code string) string {
	return strings.ReplaceAll(slug.Make(code), "-", "_")
}

// Lookup returns the metadata for code, or the "other" entry.
func Lookup(code string) Meta {
	if meta, ok := byCode[code]; ok {
		return meta
	}
	if meta, ok := byCode[Normalize(code)]; ok {
		return meta
	}
	return byCode[Other]
}

// Icon returns the icon name for code.
func Icon(code string) string { return Lookup(code).Icon }

// Color returns the color pair for code.
func Color(code string) ColorPair { return Lookup(code).Color }

// Label returns the Italian label for code.
func Label(code string) string { return Lookup(code).Label }

// All returns every category, "other" last.
func All() []Meta {
	out := make([]Meta, len(ordered))
	copy(out, ordered)
	return out
}

// Codes returns every known category code.
func Codes() []string {
	out := make([]string, len(ordered))
	for i, meta := range ordered {
		out[i] = meta.Code
	}
	return out
}
