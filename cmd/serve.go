package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pmoretti/easyscore/fingering"
	"github.com/pmoretti/easyscore/instrument"
	"github.com/pmoretti/easyscore/model"
	"github.com/pmoretti/easyscore/musicxml"
	"github.com/pmoretti/easyscore/pitch"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the simplifier over HTTP",
	Long:  `Serves the simplifier over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(servePort)
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func optionsFromQuery(r *http.Request) processOptions {
	opts := defaultProcessOptions()
	q := r.URL.Query()
	if v := q.Get("instrument"); v != "" {
		opts.instrumentId = v
	}
	if v := q.Get("style"); v != "" {
		opts.style = v
	}
	if v := q.Get("threshold"); v != "" {
		opts.threshold = v
	}
	if v := q.Get("rehearsal"); v != "" {
		opts.rehearsal = v
	}
	opts.noPairing = q.Get("pairing") == "false"
	opts.noFingerings = q.Get("fingerings") == "false"
	opts.accidentalsOnly = q.Get("accidentals_only") == "true"
	// uploads carry no meaningful filename to derive a title from
	opts.noTitleCredit = true
	return opts
}

// HandleSimplify transforms the MusicXML document in the request body
// and returns the transformed document. Options ride in query params.
func HandleSimplify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		writeError(w, 400, "request body must be a MusicXML document")
		return
	}

	score, err := musicxml.Parse(body)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	summary, err := processScore(score, "", optionsFromQuery(r))
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	out, err := musicxml.Serialize(score)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.recordare.musicxml+xml")
	w.Header().Set("X-Run-Id", summary.RunId)
	if summary.Partial() {
		w.Header().Set("X-Run-Partial", "true")
	}
	w.Write(out)
}

// HandleInstruments lists the known instruments with their chart and
// threshold availability.
func HandleInstruments(w http.ResponseWriter, r *http.Request) {
	res := make([]model.InstrumentOverview, 0)
	for _, id := range instrument.Ids() {
		info, err := instrument.Get(id)
		if err != nil {
			continue
		}
		_, chartErr := fingering.ChartFor(id)
		overview := model.InstrumentOverview{
			Id:       info.Id,
			Name:     info.Name,
			HasChart: chartErr == nil,
		}
		if info.Threshold != nil {
			overview.Threshold = pitch.String(*info.Threshold)
		}
		res = append(res, overview)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// NewRouter wires the HTTP routes. Exported so tests can drive the
// handlers without a listening socket.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/simplify", HandleSimplify).Methods("POST")
	router.HandleFunc("/instruments", HandleInstruments).Methods("GET")
	return cors.Default().Handler(router)
}

func serve(port int) {
	fmt.Printf("Listening on :%v\n", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), NewRouter()))
}
