package models

import (
	"fmt"
	"strings"
)

// TasteType is the kind of consumed media or experience.
type TasteType string

const (
	TasteSong   TasteType = "SONG"
	TasteMovie  TasteType = "MOVIE"
	TasteSeries TasteType = "SERIES"
	TasteBook   TasteType = "BOOK"
	TasteGame   TasteType = "GAME"
	TasteFood   TasteType = "FOOD"
	TasteOther  TasteType = "OTHER"
)

var AllTasteTypes = []TasteType{TasteSong, TasteMovie, TasteSeries, TasteBook, TasteGame, TasteFood, TasteOther}

func ParseTasteType(s string) (TasteType, error) {
	t := TasteType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown taste type %q", s)
	}
	return t, nil
}

func (t TasteType) Valid() bool {
	_, _, ok := t.describe()
	return ok
}

func (t TasteType) Label() string {
	l, _, _ := t.describe()
	return l
}

func (t TasteType) Icon() string {
	_, i, _ := t.describe()
	return i
}

func (t TasteType) describe() (string, string, bool) {
	switch t {
	case TasteSong:
		return "Song", "🎵", true
	case TasteMovie:
		return "Movie", "🎬", true
	case TasteSeries:
		return "Series", "📺", true
	case TasteBook:
		return "Book", "📚", true
	case TasteGame:
		return "Game", "🎮", true
	case TasteFood:
		return "Food", "🍜", true
	case TasteOther:
		return "Other", "✨", true
	}
	return "", "", false
}

// PlaceStatus tracks whether a place was visited or is wished for.
type PlaceStatus string

const (
	PlaceVisited     PlaceStatus = "VISITED"
	PlaceWantToVisit PlaceStatus = "WANT_TO_VISIT"
	PlaceFavorite    PlaceStatus = "FAVORITE"
)

var AllPlaceStatuses = []PlaceStatus{PlaceVisited, PlaceWantToVisit, PlaceFavorite}

func ParsePlaceStatus(s string) (PlaceStatus, error) {
	p := PlaceStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown place status %q", s)
	}
	return p, nil
}

func (p PlaceStatus) Valid() bool {
	_, _, ok := p.describe()
	return ok
}

func (p PlaceStatus) Label() string {
	l, _, _ := p.describe()
	return l
}

func (p PlaceStatus) Icon() string {
	_, i, _ := p.describe()
	return i
}

func (p PlaceStatus) describe() (string, string, bool) {
	switch p {
	case PlaceVisited:
		return "Visited", "✅", true
	case PlaceWantToVisit:
		return "Want to visit", "📌", true
	case PlaceFavorite:
		return "Favorite", "⭐", true
	}
	return "", "", false
}

// PlaceType classifies a place.
type PlaceType string

const (
	PlaceCafe       PlaceType = "CAFE"
	PlaceRestaurant PlaceType = "RESTAURANT"
	PlacePark       PlaceType = "PARK"
	PlaceMuseum     PlaceType = "MUSEUM"
	PlaceCity       PlaceType = "CITY"
	PlaceBeach      PlaceType = "BEACH"
	PlaceMountain   PlaceType = "MOUNTAIN"
	PlaceHotel      PlaceType = "HOTEL"
	PlaceOther      PlaceType = "OTHER"
)

var AllPlaceTypes = []PlaceType{PlaceCafe, PlaceRestaurant, PlacePark, PlaceMuseum, PlaceCity, PlaceBeach, PlaceMountain, PlaceHotel, PlaceOther}

func ParsePlaceType(s string) (PlaceType, error) {
	p := PlaceType(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown place type %q", s)
	}
	return p, nil
}

func (p PlaceType) Valid() bool {
	_, _, ok := p.describe()
	return ok
}

func (p PlaceType) Label() string {
	l, _, _ := p.describe()
	return l
}

func (p PlaceType) Icon() string {
	_, i, _ := p.describe()
	return i
}

func (p PlaceType) describe() (string, string, bool) {
	switch p {
	case PlaceCafe:
		return "Cafe", "☕", true
	case PlaceRestaurant:
		return "Restaurant", "🍽", true
	case PlacePark:
		return "Park", "🌳", true
	case PlaceMuseum:
		return "Museum", "🏛", true
	case PlaceCity:
		return "City", "🏙", true
	case PlaceBeach:
		return "Beach", "🏖", true
	case PlaceMountain:
		return "Mountain", "⛰", true
	case PlaceHotel:
		return "Hotel", "🏨", true
	case PlaceOther:
		return "Other", "📍", true
	}
	return "", "", false
}
