// Package catalog contiene las reglas puras del catálogo de artículos:
// el enum cerrado de categorías y la generación de códigos legibles.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pakoelda-code/wom-partes/internal/domain"
)

// Categorías admitidas (enum cerrado).
const (
	CategoryElectronica  = "ELECTRÓNICA"
	CategoryFerreteria   = "FERRETERÍA"
	CategoryPapeleria    = "PAPELERÍA"
	CategoryAmbientacion = "AMBIENTACIÓN"
	CategoryVarios       = "VARIOS"
)

// prefixes mapea cada categoría a la letra que encabeza sus códigos.
var prefixes = map[string]string{
	CategoryElectronica:  "E",
	CategoryFerreteria:   "F",
	CategoryPapeleria:    "P",
	CategoryAmbientacion: "A",
	CategoryVarios:       "V",
}

// Categories devuelve las categorías válidas en orden estable.
func Categories() []string {
	return []string{
		CategoryElectronica,
		CategoryFerreteria,
		CategoryPapeleria,
		CategoryAmbientacion,
		CategoryVarios,
	}
}

// IsValidCategory indica si la categoría pertenece al enum.
func IsValidCategory(category string) bool {
	_, ok := prefixes[category]
	return ok
}

// Prefix devuelve la letra de código de una categoría.
func Prefix(category string) (string, error) {
	p, ok := prefixes[category]
	if !ok {
		return "", domain.ErrInvalidCategory
	}
	return p, nil
}

// FormatCode compone un código {prefijo}-{secuencia:04d}. La secuencia crece
// sin límite: a partir de 10000 el código simplemente se alarga.
func FormatCode(prefix string, seq int) string {
	return fmt.Sprintf("%s-%04d", prefix, seq)
}

// ParseSequence extrae el número de secuencia de un código con el prefijo dado.
// Devuelve 0 si el código no corresponde a ese prefijo.
func ParseSequence(prefix, code string) int {
	rest, ok := strings.CutPrefix(code, prefix+"-")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
