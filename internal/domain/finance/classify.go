package finance

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var mercadoLivreAliases = []string{"mercado livre", "mercadolivre", "mercado_livre", "meli"}

// ClassifyService maps a free-text service label to one of the three service
// classes. Shopee keywords win, then Mercado Livre and its aliases; anything
// else is an avulso (standalone) delivery.
func ClassifyService(label string) ServiceClass {
	normalized := NormalizeName(label)

	if strings.Contains(normalized, "shopee") {
		return ServiceShopee
	}
	for _, alias := range mercadoLivreAliases {
		if strings.Contains(normalized, alias) {
			return ServiceMercadoLivre
		}
	}
	// "ml" only counts as a whole token, otherwise it matches inside
	// unrelated words.
	for _, token := range strings.Fields(normalized) {
		if token == "ml" {
			return ServiceMercadoLivre
		}
	}
	return ServiceAvulso
}

var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeName folds a courier or service name for lookup: diacritics
// stripped, lower-cased, whitespace collapsed. "José  da Silva" and
// "jose da silva" normalize to the same key.
func NormalizeName(name string) string {
	folded, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		folded = name
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// NormalizeBase dedups base labels by uppercase trim; blank bases map to the
// catch-all label.
func NormalizeBase(base string) string {
	b := strings.ToUpper(strings.TrimSpace(base))
	if b == "" {
		return UnassignedBase
	}
	return b
}
