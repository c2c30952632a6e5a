package apiserver

type ChordResponse struct {
	Root  string   `json:"root"`
	Tones []string `json:"tones"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
