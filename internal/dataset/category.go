package dataset

import (
	"sort"
	"strings"
)

// categoryGenres maps each broad category to the genre tokens that fall
// under it. A genre can belong to several categories ("rap metal" is both
// hip hop and metal).
var categoryGenres = map[string][]string{
	"Electronic": {
		"electroclash", "witch house", "new rave", "alternative dance",
		"hyperpop", "edm", "big room", "trance", "electronica", "idm",
		"breakcore", "jungle", "speedcore", "vaporwave", "chillwave",
		"downtempo", "melodic bass",
	},
	"Pop": {
		"pop", "new wave", "art pop", "hyperpop", "soft pop",
		"dance pop", "j-pop", "dream pop", "bedroom pop", "alt pop",
		"moroccan pop", "french pop", "iranian pop", "persian pop",
	},
	"Rock/Metal": {
		"art rock", "proto-punk", "rock", "gothic rock", "post-punk",
		"darkwave", "garage rock", "post-rock", "grunge", "post-grunge",
		"alternative rock", "alternative metal", "djent",
		"progressive metal", "progressive rock", "indie rock",
		"shoegaze", "nu metal", "rap metal", "classic rock",
		"hard rock", "space rock", "surf rock",
		"emo", "math rock", "midwest emo", "screamo", "post-hardcore",
	},
	"Alternative/Indie": {
		"indie", "alt", "alternative", "alternative dance",
		"alternative rock", "alternative metal",
		"indie rock", "lo-fi indie", "alternaive", "neo-psychedelic",
		"midwest emo",
	},
	"Folk": {
		"folk", "folk punk", "anti-folk", "indie folk", "georgian folk",
	},
	"Classical": {
		"chamber music", "classical", "classical piano",
		"opera", "orchestral", "requiem",
	},
	"Hip Hop/Rap": {
		"brooklyn drill", "melodic rap", "hip hop", "rap", "chicago drill",
		"drill", "g-funk", "gangster rap", "old school hip hop",
		"west coast hip hop", "rap metal",
		"east coast hip hop", "trap", "detroit hip hop",
		"southern hip hop",
		"uk drill", "new york drill",
		"grime", "uk grime", "cloud rap", "rage rap",
		"alternative hip hop", "jazz rap",
		"boom bap", "experimental hip hop", "hiphop",
		"arabic hip hop", "moroccan rap", "latin hip hop", "latin trap",
	},
	"R&B": {
		"dark r&b", "r&b", "alternative r&b", "soul", "afro r&b",
	},
	"Jazz": {
		"cool jazz", "jazz", "swing music",
		"bebop", "hard bop", "jazz blues",
		"vocal jazz", "big band",
	},
	"Other": {
		"bhajan", "vocal", "anime", "gregorian chant",
		"new age", "christmas", "soundtrack",
	},
	"International": {
		"bhajan", "arabic hip hop", "moroccan rap", "moroccan pop", "french pop",
		"iranian pop", "persian pop", "latin hip hop", "latin trap",
	},
}

var genreCategory map[string][]string

func init() {
	genreCategory = make(map[string][]string)
	for category, genres := range categoryGenres {
		for _, genre := range genres {
			genreCategory[genre] = append(genreCategory[genre], category)
		}
	}
}

// DetectCategories maps a genres field to the broad categories its tokens
// fall under, semicolon-joined and sorted. Genre matching is
// case-insensitive; unknown genres contribute nothing, and an empty or
// fully unknown field yields "".
func DetectCategories(genres string) string {
	found := make(map[string]bool)
	for _, genre := range SplitList(genres) {
		for _, category := range genreCategory[strings.ToLower(genre)] {
			found[category] = true
		}
	}
	if len(found) == 0 {
		return ""
	}

	categories := make([]string, 0, len(found))
	for category := range found {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return strings.Join(categories, "; ")
}
