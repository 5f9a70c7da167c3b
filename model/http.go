package model

type NoteResponse struct {
	Name       string   `json:"name"`
	Letter     int      `json:"letter"`
	PitchClass int      `json:"pitch_class"`
	Sharps     int      `json:"sharps"`
	Flats      int      `json:"flats"`
	Octave     *int     `json:"octave,omitempty"`
	HardPitch  *int     `json:"hard_pitch,omitempty"`
	Frequency  *float64 `json:"frequency,omitempty"`
	MidiKey    *uint8   `json:"midi_key,omitempty"`
	Enharmonic string   `json:"enharmonic,omitempty"`
}

type IntervalResponse struct {
	Name       string `json:"name"`
	Quality    string `json:"quality"`
	Base       string `json:"base"`
	Displace   int    `json:"displace"`
	HalfSteps  int    `json:"half_steps"`
	LetterDiff int    `json:"letter_diff"`
}

type ScaleResponse struct {
	Name     string   `json:"name"`
	Root     string   `json:"root"`
	Mode     string   `json:"mode"`
	Spelling []string `json:"spelling"`
}

type ModesResponse struct {
	Modes []string `json:"modes"`
}

type ChordClassifyRequestBody struct {
	Root  string   `json:"root"`
	Notes []string `json:"notes"`
}

type ChordBuildRequestBody struct {
	Root       string   `json:"root"`
	Quality    string   `json:"quality"`
	Extensions []string `json:"extensions"`
}

type ChordResponse struct {
	Symbol     string   `json:"symbol"`
	Root       string   `json:"root"`
	Bass       string   `json:"bass,omitempty"`
	Triad      string   `json:"triad,omitempty"`
	Extensions string   `json:"extensions,omitempty"`
	Notes      []string `json:"notes"`
}

type TuningBody struct {
	A4 float64 `json:"a4"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
