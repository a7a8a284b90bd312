package catalog

import (
	"fmt"
	"strings"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
)

// ReplaceMode política de ReplaceBrandPrices.
type ReplaceMode string

const (
	// ModeMerge actualiza o crea las categorías recibidas; el resto queda intacto.
	ModeMerge ReplaceMode = "merge"
	// ModeReplace borra todos los productos de la marca y crea los recibidos.
	ModeReplace ReplaceMode = "replace"
)

// ParseReplaceMode interpreta "merge" o "replace" (sin distinguir mayúsculas).
func ParseReplaceMode(s string) (ReplaceMode, error) {
	switch ReplaceMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	}
	return "", fmt.Errorf("%w: modo %q (merge | replace)", domain.ErrInvalidInput, s)
}
