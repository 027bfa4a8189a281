package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
)

// Movies fetches the catalog and prints it as a numbered list. The
// numbers are remembered, so "show 2" or "fav 2" refer to this listing.
func (a *App) Movies(ctx context.Context) error {
	movies, err := a.client.ListMovies(ctx)
	if err != nil {
		a.showError(err)
		return err
	}
	a.movies = movies

	for i, m := range movies {
		marker := " "
		if a.user.HasFavorite(m.ID) {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%2d %s %s (%s, dir. %s)", i+1, marker, m.Title, m.Genre.Name, m.Director.Name))
	}
	return nil
}

// movieAt resolves a 1-based index argument against the last listing,
// fetching the catalog first if none was shown yet.
func (a *App) movieAt(ctx context.Context, usage string, args []string) (models.Movie, error) {
	if len(args) != 1 {
		printlnFn("Usage: " + usage)
		return models.Movie{}, fmt.Errorf("usage: %s", usage)
	}

	if len(a.movies) == 0 {
		movies, err := a.client.ListMovies(ctx)
		if err != nil {
			a.showError(err)
			return models.Movie{}, err
		}
		a.movies = movies
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.movies) {
		printlnFn(fmt.Sprintf("Pick a number between 1 and %d.", len(a.movies)))
		return models.Movie{}, fmt.Errorf("index out of range: %q", args[0])
	}
	return a.movies[n-1], nil
}

// Show prints the synopsis of a movie from the last listing.
func (a *App) Show(ctx context.Context, args []string) error {
	m, err := a.movieAt(ctx, "show <n>", args)
	if err != nil {
		return err
	}

	printlnFn(m.Title)
	printlnFn(m.Description)
	printlnFn(fmt.Sprintf("Genre: %s. Director: %s.", m.Genre.Name, m.Director.Name))
	return nil
}

// Genre looks up the genre of a movie from the last listing and prints
// its description.
func (a *App) Genre(ctx context.Context, args []string) error {
	m, err := a.movieAt(ctx, "genre <n>", args)
	if err != nil {
		return err
	}

	g, err := a.client.GetGenre(ctx, m.Genre.Name)
	if err != nil {
		a.showError(err)
		return err
	}

	printlnFn(g.Name)
	printlnFn(g.Description)
	return nil
}

// Director looks up the director of a movie from the last listing and
// prints the biography.
func (a *App) Director(ctx context.Context, args []string) error {
	m, err := a.movieAt(ctx, "director <n>", args)
	if err != nil {
		return err
	}

	d, err := a.client.GetDirector(ctx, m.Director.Name)
	if err != nil {
		a.showError(err)
		return err
	}

	printlnFn(d.Name)
	printlnFn(d.Bio)
	if d.Birth != "" {
		years := d.Birth
		if d.Death != "" {
			years = years + " – " + d.Death
		}
		printlnFn(years)
	}
	return nil
}

// ToggleFavorite adds the movie to the favorite set if it is not there,
// removes it otherwise. Membership is decided against the locally
// cached user record; the record is then replaced with the server's
// response, so the cache and the prompt marker stay truthful.
func (a *App) ToggleFavorite(ctx context.Context, args []string) error {
	m, err := a.movieAt(ctx, "fav <n>", args)
	if err != nil {
		return err
	}

	var u models.User
	if a.user.HasFavorite(m.ID) {
		u, err = a.client.RemoveFavorite(ctx, a.user.Username, m.ID)
	} else {
		u, err = a.client.AddFavorite(ctx, a.user.Username, m.ID)
	}
	if err != nil {
		a.showError(err)
		return err
	}
	a.setUser(u)

	if u.HasFavorite(m.ID) {
		printlnFn(fmt.Sprintf("%s added to favorites.", m.Title))
	} else {
		printlnFn(fmt.Sprintf("%s removed from favorites.", m.Title))
	}
	return nil
}

// Favorites prints the user's favorite movies with full titles. The
// favorite set holds only ids, so titles are resolved against the
// catalog.
func (a *App) Favorites(ctx context.Context) error {
	ids, err := a.client.ListFavorites(ctx, a.user.Username)
	if err != nil {
		a.showError(err)
		return err
	}

	if len(ids) == 0 {
		printlnFn("No favorites yet. Use 'fav <n>' after 'movies'.")
		return nil
	}

	if len(a.movies) == 0 {
		movies, err := a.client.ListMovies(ctx)
		if err != nil {
			a.showError(err)
			return err
		}
		a.movies = movies
	}

	byID := make(map[string]models.Movie, len(a.movies))
	for _, m := range a.movies {
		byID[m.ID] = m
	}
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			printlnFn(fmt.Sprintf("* %s (%s)", m.Title, m.Genre.Name))
		} else {
			printlnFn("* " + id)
		}
	}
	return nil
}
