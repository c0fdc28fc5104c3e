package entities

import (
	"encoding/json"
	"strconv"
)

// ReviewRequest accepts the rating either as a JSON number or as the string
// the form client sends; it is coerced to an integer either way.
type ReviewRequest struct {
	Name    string      `json:"name"`
	Rating  RatingValue `json:"rating"`
	Comment string      `json:"comment"`
}

type RatingValue int

func (r *RatingValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = RatingValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Mirrors the form client's parseInt: garbage becomes zero.
		n = 0
	}
	*r = RatingValue(n)
	return nil
}
