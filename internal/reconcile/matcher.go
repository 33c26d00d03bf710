package reconcile

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/wlsync/internal/plex"
	"github.com/vmunix/wlsync/internal/radarr"
)

// Match resolves a watchlist item to at most one library movie.
//
// Priority order, first match wins:
//  1. Exact IMDB id match
//  2. Exact TMDB id match
//  3. Case-insensitive exact (title, year) match
//
// Each rule scans the entire library before falling through, so a movie
// carrying the matching IMDB id beats an earlier movie that only collides on
// title/year. Identifier matches are authoritative; title/year is a fallback
// for entries where Plex supplied no usable GUID. No fuzzy matching: a false
// positive updates the wrong movie, a false negative just skips one.
func Match(item plex.Item, movies []radarr.Movie) *radarr.Movie {
	if item.IMDBID != "" {
		for i := range movies {
			if movies[i].IMDBID == item.IMDBID {
				return &movies[i]
			}
		}
	}

	if item.TMDBID != "" {
		for i := range movies {
			if movies[i].TMDBID != 0 && strconv.FormatInt(movies[i].TMDBID, 10) == item.TMDBID {
				return &movies[i]
			}
		}
	}

	if item.Title != "" {
		want := normalizeTitle(item.Title)
		for i := range movies {
			if movies[i].Year == item.Year && strings.EqualFold(normalizeTitle(movies[i].Title), want) {
				return &movies[i]
			}
		}
	}

	return nil
}

// normalizeTitle puts a title into NFC form so that composed and decomposed
// spellings of the same accented title compare equal. Case folding is left to
// strings.EqualFold.
func normalizeTitle(s string) string {
	return norm.NFC.String(s)
}
