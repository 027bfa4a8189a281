package devserver

import (
	"github.com/google/uuid"

	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
)

func newID() string {
	return uuid.NewString()
}

// seedMovies returns a small catalog so the client has something to
// browse out of the box. IDs are regenerated per server instance.
func seedMovies() []models.Movie {
	return []models.Movie{
		{
			ID:          newID(),
			Title:       "The Silence of the Lambs",
			Description: "A young FBI cadet must receive the help of an incarcerated and manipulative cannibal killer to catch another serial killer.",
			Genre: models.Genre{
				Name:        "Thriller",
				Description: "Thriller film, also known as suspense film, is a broad film genre that involves excitement and suspense in the audience.",
			},
			Director: models.Director{
				Name:  "Jonathan Demme",
				Bio:   "Robert Jonathan Demme was an American director, producer, and screenwriter.",
				Birth: "1944",
				Death: "2017",
			},
			Featured: true,
		},
		{
			ID:          newID(),
			Title:       "Spirited Away",
			Description: "During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches, and spirits.",
			Genre: models.Genre{
				Name:        "Animated",
				Description: "Animation is a method in which figures are manipulated to appear as moving images.",
			},
			Director: models.Director{
				Name:  "Hayao Miyazaki",
				Bio:   "Hayao Miyazaki is a Japanese animator, director, producer, screenwriter, author, and manga artist.",
				Birth: "1941",
			},
		},
		{
			ID:          newID(),
			Title:       "Parasite",
			Description: "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
			Genre: models.Genre{
				Name:        "Thriller",
				Description: "Thriller film, also known as suspense film, is a broad film genre that involves excitement and suspense in the audience.",
			},
			Director: models.Director{
				Name:  "Bong Joon-ho",
				Bio:   "Bong Joon-ho is a South Korean film director and screenwriter.",
				Birth: "1969",
			},
		},
		{
			ID:          newID(),
			Title:       "Alien",
			Description: "The crew of a commercial spacecraft encounter a deadly lifeform after investigating an unknown transmission.",
			Genre: models.Genre{
				Name:        "Science Fiction",
				Description: "Science fiction film is a genre that uses speculative, fictional science-based depictions of phenomena.",
			},
			Director: models.Director{
				Name:  "Ridley Scott",
				Bio:   "Sir Ridley Scott is an English film director and producer.",
				Birth: "1937",
			},
		},
		{
			ID:          newID(),
			Title:       "Portrait of a Lady on Fire",
			Description: "On an isolated island in Brittany at the end of the eighteenth century, a female painter is obliged to paint a wedding portrait of a young woman.",
			Genre: models.Genre{
				Name:        "Drama",
				Description: "In film and television, drama is a category of narrative fiction intended to be more serious than humorous in tone.",
			},
			Director: models.Director{
				Name:  "Céline Sciamma",
				Bio:   "Céline Sciamma is a French screenwriter and film director.",
				Birth: "1978",
			},
		},
	}
}
