package usecase

import (
	"strings"

	"life-admin/internal/record"
)

// cleanTitle trims the title and rejects an empty one.
func (uc *implUseCase) cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", record.ErrInvalidPayload
	}
	return title, nil
}
