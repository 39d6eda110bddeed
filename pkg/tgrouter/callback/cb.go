package callback

import (
	"strconv"
	"strings"
)

const (
	ShowRecipe    = "show_recipe"
	AddToFavorite = "add_to_favorite"
)

// CallbackData is a button payload of the form "<query>_<value>", e.g. "show_recipe_42".
// The query may itself contain underscores; the value is everything after the last one.
type CallbackData struct {
	Query string
	Value int64
}

func New(query string, value int64) CallbackData {
	return CallbackData{Query: query, Value: value}
}

func (cd CallbackData) String() string {
	return cd.Query + "_" + strconv.FormatInt(cd.Value, 10)
}

// Parse splits a payload; ok is false for anything that is not "<query>_<positive int>".
func Parse(data string) (cd CallbackData, ok bool) {
	idx := strings.LastIndexByte(data, '_')
	if idx <= 0 || idx == len(data)-1 {
		return CallbackData{}, false
	}

	value, err := strconv.ParseInt(data[idx+1:], 10, 64)
	if err != nil || value <= 0 {
		return CallbackData{}, false
	}

	return CallbackData{Query: data[:idx], Value: value}, true
}

func Query(data string) string {
	cd, _ := Parse(data)
	return cd.Query
}

func Value(data string) int64 {
	cd, _ := Parse(data)
	return cd.Value
}
