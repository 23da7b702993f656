// Package catalog holds the static book catalog and its query operations.
package catalog

import (
	"math/rand"
	"strings"

	"github.com/bookshookapp/bookshook-bot/internal/errors"
)

// Book is a single catalog entry.
type Book struct {
	Title  string
	Author string
}

// Display renders the book the way it is shown to users and encoded in
// button payloads: "Title - Author".
func (b Book) Display() string {
	return b.Title + " - " + b.Author
}

// Field extracts the text a search predicate matches against.
type Field func(Book) string

// Field extractors.
var (
	ByTitle   Field = func(b Book) string { return b.Title }
	ByAuthor  Field = func(b Book) string { return b.Author }
	ByDisplay Field = func(b Book) string { return b.Display() }
)

// Shelf pairs a genre with its books, preserving declaration order.
type Shelf struct {
	Genre string
	Books []Book
}

// Catalog is an immutable genre -> books mapping. Read-only after New,
// safe for concurrent use.
type Catalog struct {
	genres []string
	books  map[string][]Book
}

// New builds a catalog from shelves. Genre order follows the shelf order.
func New(shelves []Shelf) *Catalog {
	c := &Catalog{
		genres: make([]string, 0, len(shelves)),
		books:  make(map[string][]Book, len(shelves)),
	}
	for _, s := range shelves {
		c.genres = append(c.genres, s.Genre)
		c.books[s.Genre] = s.Books
	}
	return c
}

// Genres returns the genre names in declaration order.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}

// BooksIn returns the books of a genre.
func (c *Catalog) BooksIn(genre string) ([]Book, error) {
	books, ok := c.books[genre]
	if !ok {
		return nil, errors.NotFound("unknown genre: " + genre)
	}
	return books, nil
}

// Sample returns up to n books from a genre, chosen uniformly at random
// without replacement. A genre with fewer than n books yields all of them.
func (c *Catalog) Sample(genre string, n int) ([]Book, error) {
	books, err := c.BooksIn(genre)
	if err != nil {
		return nil, err
	}
	return Pick(books, n), nil
}

// Search returns the books of a genre whose extracted field contains the
// query, case-insensitively. An unknown genre is an error; zero matches
// is an empty slice with a nil error.
func (c *Catalog) Search(genre, query string, field Field) ([]Book, error) {
	books, err := c.BooksIn(genre)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matches []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(field(b)), needle) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

// Pick returns up to n books from the given slice, chosen uniformly at
// random without replacement. The input slice is not modified.
func Pick(books []Book, n int) []Book {
	if len(books) == 0 {
		return nil
	}
	if n > len(books) {
		n = len(books)
	}

	shuffled := make([]Book, len(books))
	copy(shuffled, books)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
