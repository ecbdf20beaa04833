package helper

import (
	"cinema_api/model"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueMovieSlug appends -1, -2, ... until no movie other than
// exceptId uses the slug. Pass 0 for a new movie.
func GenerateUniqueMovieSlug(tx *gorm.DB, title string, exceptId uint) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "movie"
	}
	result := base
	for i := 1; ; i++ {
		var count int64
		if err := tx.Model(&model.Movie{}).Where("slug = ? AND id <> ?", result, exceptId).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
	}
}
