// Command server exposes the termpairs inflection and substitution
// engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/forms?lemma=<lemma>&gender=<kk|kvk|hk>
//	GET  /api/inflect?lemma=<lemma>&gender=<g>&case=<nf|þf|þgf|ef>&number=<et|ft>[&definite=true]
//	GET  /api/plural?word=<english word or phrase>
//	POST /api/substitute   body: {"template":"...","term":{...}}
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/icelandic-nmt/termpairs"
)

// ---- JSON response types ------------------------------------------------

type formJSON struct {
	Text     string `json:"text"`
	Case     string `json:"case"`
	Number   string `json:"number"`
	Definite bool   `json:"definite"`
}

type formsResponse struct {
	Lemma  string     `json:"lemma"`
	Gender string     `json:"gender"`
	Forms  []formJSON `json:"forms"`
}

type inflectResponse struct {
	Form string `json:"form"`
}

type pluralResponse struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

type termJSON struct {
	Lemma           string `json:"lemma"`
	Gender          string `json:"gender"`
	EnglishSingular string `json:"english_singular"`
	EnglishPlural   string `json:"english_plural,omitempty"`
}

type substituteRequest struct {
	// Template is a template-file line: English skeleton, tab,
	// Icelandic skeleton, with annotated placeholders.
	Template string   `json:"template"`
	Term     termJSON `json:"term"`
}

type substituteResponse struct {
	English   string `json:"english"`
	Icelandic string `json:"icelandic"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func genderParam(r *http.Request) (termpairs.Gender, error) {
	g, ok := termpairs.ParseGender(r.URL.Query().Get("gender"))
	if !ok {
		return "", fmt.Errorf("missing or unknown 'gender' query parameter (want kk, kvk or hk)")
	}
	return g, nil
}

// ---- handlers -----------------------------------------------------------

func handleForms(lx *termpairs.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		gender, err := genderParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		forms := lx.NounForms(lemma, gender)
		if len(forms) == 0 {
			writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q (%s) not found", lemma, gender))
			return
		}
		out := make([]formJSON, 0, len(forms))
		for _, f := range forms {
			out = append(out, formJSON{
				Text:     f.Text,
				Case:     string(f.Case),
				Number:   string(f.Number),
				Definite: f.Definite,
			})
		}
		writeJSON(w, http.StatusOK, formsResponse{Lemma: lemma, Gender: string(gender), Forms: out})
	}
}

func handleInflect(lx *termpairs.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		lemma := q.Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		gender, err := genderParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		c := termpairs.Case(q.Get("case"))
		n := termpairs.Number(q.Get("number"))
		definite, _ := strconv.ParseBool(q.Get("definite"))

		form, err := lx.Inflect(lemma, gender, c, n, definite)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, termpairs.ErrNoInflection) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, inflectResponse{Form: form})
	}
}

func handlePlural(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	writeJSON(w, http.StatusOK, pluralResponse{Singular: word, Plural: termpairs.EnglishPlural(word)})
}

func handleSubstitute(lx *termpairs.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req substituteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON: "+err.Error())
			return
		}
		tmpl, err := termpairs.ParseTemplate(req.Template)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		gender, ok := termpairs.ParseGender(req.Term.Gender)
		if !ok {
			writeError(w, http.StatusBadRequest, "term: unknown gender (want kk, kvk or hk)")
			return
		}
		if req.Term.Lemma == "" || req.Term.EnglishSingular == "" {
			writeError(w, http.StatusBadRequest, "term: lemma and english_singular are required")
			return
		}
		enPlural := req.Term.EnglishPlural
		if enPlural == "" {
			enPlural = termpairs.EnglishPlural(req.Term.EnglishSingular)
		}
		term := &termpairs.Term{
			Lemma:    req.Term.Lemma,
			Gender:   gender,
			Singular: req.Term.EnglishSingular,
			Plural:   enPlural,
		}

		pair, err := tmpl.Substitute(term, lx)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, termpairs.ErrNoInflection) {
				status = http.StatusUnprocessableEntity
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, substituteResponse{
			English:   pair.English,
			Icelandic: pair.Icelandic,
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	lexiconPath := flag.String("lexicon", "data/lexicon.csv", "path to the morphological lexicon file")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading lexicon from %s …", *lexiconPath)
	lx, err := termpairs.NewLexicon(*lexiconPath)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Println("lexicon loaded")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/forms", handleForms(lx))
	mux.HandleFunc("/api/inflect", handleInflect(lx))
	mux.HandleFunc("/api/plural", handlePlural)
	mux.HandleFunc("/api/substitute", handleSubstitute(lx))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
