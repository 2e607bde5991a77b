// Package repository mediates between the domain models and the database.
// Repositories enforce existence and uniqueness rules before mutating and
// translate storage failures into typed apperr values.
package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/apperr"
)

// writeError translates a failed insert or update: a unique-key violation
// becomes CONFLICT, anything else INTERNAL. Drivers are opened with
// TranslateError so both postgres and sqlite report gorm.ErrDuplicatedKey.
func writeError(source, conflictMsg string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict(source, conflictMsg).WithCause(err)
	}
	return apperr.Internal(source, "storage failure").WithCause(err)
}

// missingIDs returns the ids in want that have no matching row, preserving
// the caller's order.
func missingIDs(want []uint, got map[uint]bool) []uint {
	var missing []uint
	for _, id := range want {
		if !got[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// formatIDs renders ids for an error message, sorted for stable output.
func formatIDs(ids []uint) string {
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
