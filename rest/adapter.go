package rest

import (
	"encoding/json"
	"io"
	"net/http"
)

// Adapt exposes a Controller as an http.Handler. The JSON body is decoded
// into the generic request; the controller's response is written back with
// error bodies rendered as {"error": message}.
func Adapt(c Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// an empty body is handed to the validation chain as an empty
		// request so the 400 names the missing field
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
			return
		}

		res := c.Handle(Request{Body: body})

		w.WriteHeader(res.StatusCode)
		if res.Body == nil {
			return
		}

		if err, ok := res.Body.(error); ok {
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		_ = json.NewEncoder(w).Encode(res.Body)
	})
}
