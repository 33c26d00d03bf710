package radarr

// Movie is the subset of a Radarr movie record the reconciler needs. The full
// record is only handled inside UpdateQualityProfile, where it must round-trip
// untouched.
type Movie struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Year             int    `json:"year"`
	IMDBID           string `json:"imdbId"`
	TMDBID           int64  `json:"tmdbId"`
	QualityProfileID int    `json:"qualityProfileId"`
}

// QualityProfile is a named quality profile definition.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
