package helper

import (
	"cinema_api/model"
	"cinema_api/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// CreateMovieWithScreenings inserts the movie and all of its screenings in one
// transaction. Screen numbers are checked before anything is written.
func CreateMovieWithScreenings(db *gorm.DB, input model.MoviePostInput) (model.MovieWithScreeningsOutput, error) {
	var result model.MovieWithScreeningsOutput
	if err := CheckScreenNumbers(db, input.Screenings); err != nil {
		return result, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		movie := new(model.Movie)
		if err := copier.Copy(movie, &input); err != nil {
			return err
		}
		s, err := GenerateUniqueMovieSlug(tx, movie.Title, 0)
		if err != nil {
			return err
		}
		movie.Slug = s
		if _, err := repository.New[model.Movie](tx).Insert(movie); err != nil {
			return err
		}

		screenings := make([]model.ScreeningOutput, 0, len(input.Screenings))
		for _, in := range input.Screenings {
			out, err := CreateScreening(tx, movie.ID, in)
			if err != nil {
				return err
			}
			screenings = append(screenings, out)
		}
		result = model.MovieWithScreeningsOutput{
			MovieOutput: model.NewMovieOutput(*movie),
			Screenings:  screenings,
		}
		return nil
	})
	return result, err
}

// UpdateMovie overwrites every mutable field. It returns nil, nil when the
// movie does not exist.
func UpdateMovie(db *gorm.DB, id uint, input model.MoviePutInput) (*model.Movie, error) {
	movies := repository.New[model.Movie](db)
	movie, err := movies.GetById(id)
	if err != nil || movie == nil {
		return nil, err
	}
	if movie.Title != input.Title {
		s, err := GenerateUniqueMovieSlug(db, input.Title, movie.ID)
		if err != nil {
			return nil, err
		}
		movie.Slug = s
	}
	movie.Title = input.Title
	movie.Rating = input.Rating
	movie.Description = input.Description
	movie.RuntimeMins = input.RuntimeMins
	return movies.Update(movie)
}

// DeleteMovie removes a movie with its screenings and their seat rows. Movies
// whose screenings have tickets are kept and ErrHasTickets is returned.
func DeleteMovie(db *gorm.DB, id uint) (*model.Movie, error) {
	var deleted *model.Movie
	err := db.Transaction(func(tx *gorm.DB) error {
		movies := repository.New[model.Movie](tx)
		movie, err := movies.GetById(id)
		if err != nil {
			return err
		}
		if movie == nil {
			return ErrMovieNotFound
		}

		var tickets int64
		if err := tx.Model(&model.Ticket{}).
			Joins("JOIN screenings ON screenings.id = tickets.screening_id").
			Where("screenings.movie_id = ?", id).
			Count(&tickets).Error; err != nil {
			return err
		}
		if tickets > 0 {
			return ErrHasTickets
		}

		screeningIds := tx.Model(&model.Screening{}).Select("id").Where("movie_id = ?", id)
		if _, err := repository.NewJunction[model.ScreeningSeat](tx).DeleteWhere("screening_id IN (?)", screeningIds); err != nil {
			return err
		}
		if _, err := repository.NewJunction[model.Screening](tx).DeleteWhere("movie_id = ?", id); err != nil {
			return err
		}
		deleted, err = movies.DeleteById(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
