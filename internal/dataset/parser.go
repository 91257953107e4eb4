// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// releaseDateLayout is the MovieLens date format, e.g. 01-Jan-1995.
const releaseDateLayout = "02-Jan-2006"

// itemFixedFields precede the genre flags in u.item.
const itemFixedFields = 5

// parseGenre parses a "name|index" line.
func parseGenre(fields []string) (name string, index int, err error) {
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	name = strings.TrimSpace(fields[0])
	if name == "" {
		return "", 0, fmt.Errorf("missing genre name")
	}
	index, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return "", 0, fmt.Errorf("invalid genre index %q: %w", fields[1], err)
	}
	if index < 0 {
		return "", 0, fmt.Errorf("invalid genre index: %d", index)
	}
	return name, index, nil
}

// parseUser parses an "id|age|gender|occupation|zip" line.
func parseUser(fields []string) (*recommend.User, error) {
	if len(fields) < 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid age %q: %w", fields[1], err)
	}
	if age < 0 {
		return nil, fmt.Errorf("invalid age: %d", age)
	}
	return recommend.NewUser(id,
		age,
		strings.TrimSpace(fields[2]),
		strings.TrimSpace(fields[3]),
		strings.TrimSpace(fields[4]),
	), nil
}

// parseItem parses a u.item line. Genre flags set to "1" select the genre
// at the same position in genres; positions without a known name are ignored.
func parseItem(fields, genres []string) (*recommend.Movie, error) {
	if len(fields) < itemFixedFields {
		return nil, fmt.Errorf("expected at least %d fields, got %d", itemFixedFields, len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(fields[1])
	if title == "" {
		return nil, fmt.Errorf("missing title")
	}

	var released time.Time
	if raw := strings.TrimSpace(fields[2]); raw != "" {
		released, err = time.Parse(releaseDateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid release date %q: %w", raw, err)
		}
	}

	var movieGenres []string
	for i, flag := range fields[itemFixedFields:] {
		if strings.TrimSpace(flag) == "1" && i < len(genres) && genres[i] != "" {
			movieGenres = append(movieGenres, genres[i])
		}
	}

	m := recommend.NewMovie(id, title, released, movieGenres...)
	m.IMDbURL = strings.TrimSpace(fields[4])
	return m, nil
}

// ratingRecord is one parsed u.data line.
type ratingRecord struct {
	UserID  int
	MovieID int
	Rate    float64
	RatedAt time.Time
}

// parseRating parses a "user movie rating [timestamp]" line.
func parseRating(fields []string) (ratingRecord, error) {
	if len(fields) < 3 {
		return ratingRecord{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	userID, err := parseID(fields[0])
	if err != nil {
		return ratingRecord{}, err
	}
	movieID, err := parseID(fields[1])
	if err != nil {
		return ratingRecord{}, err
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return ratingRecord{}, fmt.Errorf("invalid rating %q: %w", fields[2], err)
	}

	rec := ratingRecord{UserID: userID, MovieID: movieID, Rate: rate}
	if len(fields) > 3 {
		ts, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
		if err != nil {
			return ratingRecord{}, fmt.Errorf("invalid timestamp %q: %w", fields[3], err)
		}
		rec.RatedAt = time.Unix(ts, 0).UTC()
	}
	return rec, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id: %d", id)
	}
	return id, nil
}
