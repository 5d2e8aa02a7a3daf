package agentmapper

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agentmapper/agentmapper/pkg/models"
	"github.com/agentmapper/agentmapper/pkg/store"
)

// registerCollection wires the uniform CRUD surface for one entity
// collection:
//
//	GET    /api/<path>        - list the collection
//	POST   /api/<path>        - add an entity, returns it with its id
//	PUT    /api/<path>/{id}   - apply a partial update
//	DELETE /api/<path>/{id}   - delete by id
//
// Updates and deletes on an unknown id are no-ops and still answer 204,
// matching the store's silent-miss semantics.
func registerCollection[E any, P any](
	api *mux.Router,
	path string,
	st *store.Store,
	list func(store.State) []E,
	add func(E) E,
	update func(models.ID, P),
	remove func(models.ID),
) {
	api.HandleFunc("/"+path, func(w http.ResponseWriter, r *http.Request) {
		items := list(st.Snapshot())
		if items == nil {
			items = []E{}
		}
		respondJSON(w, http.StatusOK, items)
	}).Methods("GET")

	api.HandleFunc("/"+path, func(w http.ResponseWriter, r *http.Request) {
		var entity E
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		created := add(entity)
		respondJSON(w, http.StatusCreated, created)
	}).Methods("POST")

	api.HandleFunc("/"+path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := models.ParseID(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid ID")
			return
		}
		var patch P
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		update(id, patch)
		respondJSON(w, http.StatusNoContent, nil)
	}).Methods("PUT")

	api.HandleFunc("/"+path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := models.ParseID(mux.Vars(r)["id"])
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid ID")
			return
		}
		remove(id)
		respondJSON(w, http.StatusNoContent, nil)
	}).Methods("DELETE")
}
