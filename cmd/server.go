package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ScottMorse/Music-Tools/chord"
	"github.com/ScottMorse/Music-Tools/midikey"
	"github.com/ScottMorse/Music-Tools/model"
	"github.com/ScottMorse/Music-Tools/scale"
	"github.com/ScottMorse/Music-Tools/theory"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, chord.ErrUnclassifiedChord):
		return http.StatusUnprocessableEntity
	case errors.Is(err, scale.ErrInvalidModeName):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func noteResponse(n theory.Note, prefer theory.Preference, gross bool) model.NoteResponse {
	res := model.NoteResponse{
		Name:       n.Name(),
		Letter:     n.Letter(),
		PitchClass: n.PitchClass(),
		Sharps:     n.Sharps(),
		Flats:      n.Flats(),
	}
	if e, err := n.Enharmonic(prefer, gross); err == nil {
		res.Enharmonic = e.Name()
	}
	if octave, ok := n.Octave(); ok {
		res.Octave = &octave
		if hp, err := n.HardPitch(); err == nil {
			res.HardPitch = &hp
		}
		if hz, err := n.Frequency(); err == nil {
			res.Frequency = &hz
		}
		if key, err := midikey.Key(n); err == nil {
			res.MidiKey = &key
		}
	}
	return res
}

func parsePrefer(r *http.Request) theory.Preference {
	switch r.URL.Query().Get("prefer") {
	case "sharp":
		return theory.PreferSharp
	case "flat":
		return theory.PreferFlat
	}
	return theory.PreferNone
}

func HandleNote(w http.ResponseWriter, r *http.Request) {
	n, err := parseNoteArg(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	gross := r.URL.Query().Get("gross") == "true"
	writeJSON(w, noteResponse(n, parsePrefer(r), gross))
}

func HandleInterval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	displace := 0
	if raw := q.Get("displace"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &displace); err != nil {
			writeError(w, http.StatusBadRequest, theory.ErrInvalidDisplacement)
			return
		}
	}
	iv, err := theory.NewInterval(q.Get("quality"), q.Get("base"), displace)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	writeJSON(w, model.IntervalResponse{
		Name:       iv.Name(),
		Quality:    iv.Quality(),
		Base:       iv.Base(),
		Displace:   iv.Displace(),
		HalfSteps:  iv.Difference(),
		LetterDiff: iv.LetterDifference(),
	})
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := parseNoteArg(vars["root"])
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	m, err := scale.New(root, vars["mode"])
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	names, err := m.StringSpelling()
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	writeJSON(w, model.ScaleResponse{
		Name:     m.Name(),
		Root:     m.Root().NoteName(),
		Mode:     m.ModeName(),
		Spelling: names,
	})
}

func HandleModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.ModesResponse{Modes: scale.Names()})
}

func chordResponse(c chord.Classification, notes []theory.Note) model.ChordResponse {
	res := model.ChordResponse{
		Symbol:     c.Symbol(),
		Root:       c.Root.NoteName(),
		Triad:      c.Triad,
		Extensions: c.Extensions,
	}
	if c.Inverted {
		res.Bass = c.Bass.NoteName()
	}
	for _, n := range notes {
		res.Notes = append(res.Notes, n.NoteName())
	}
	return res
}

func HandleChordClassify(w http.ResponseWriter, r *http.Request) {
	var body model.ChordClassifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	root, err := theory.NewNote(body.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	notes := make([]theory.Note, 0, len(body.Notes)+1)
	notes = append(notes, root)
	for _, name := range body.Notes {
		n, err := theory.NewNote(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		notes = append(notes, n)
	}
	got, err := chord.Classify(root, notes[1:]...)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	writeJSON(w, chordResponse(got, notes))
}

func HandleChordBuild(w http.ResponseWriter, r *http.Request) {
	var body model.ChordBuildRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	root, err := parseNoteArg(body.Root)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	built, err := chord.Build(root, body.Quality, body.Extensions...)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	notes := built.Notes()
	res := model.ChordResponse{Root: built.Root().NoteName()}
	for _, n := range notes {
		res.Notes = append(res.Notes, n.NoteName())
	}
	// the built chord's symbol comes from classifying its own notes
	if got, err := chord.Classify(notes[0], notes[1:]...); err == nil {
		res.Symbol = got.Symbol()
		res.Triad = got.Triad
		res.Extensions = got.Extensions
	}
	writeJSON(w, res)
}

func HandleGetTuning(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.TuningBody{A4: theory.ReferenceFrequency()})
}

func HandlePutTuning(w http.ResponseWriter, r *http.Request) {
	var body model.TuningBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := theory.SetReferenceFrequency(body.A4); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, model.TuningBody{A4: theory.ReferenceFrequency()})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request", "id", id, "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

// NewRouter builds the HTTP API router.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestIDMiddleware)
	router.HandleFunc("/note/{name}", HandleNote).Methods("GET")
	router.HandleFunc("/interval", HandleInterval).Methods("GET")
	router.HandleFunc("/scale/{root}/{mode}", HandleScale).Methods("GET")
	router.HandleFunc("/modes", HandleModes).Methods("GET")
	router.HandleFunc("/chord/classify", HandleChordClassify).Methods("POST")
	router.HandleFunc("/chord/build", HandleChordBuild).Methods("POST")
	router.HandleFunc("/tuning", HandleGetTuning).Methods("GET")
	router.HandleFunc("/tuning", HandlePutTuning).Methods("PUT")
	return router
}
