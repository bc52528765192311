package owners

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path"

	"petclinic/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// EndpointName es el nombre con el que el cliente invoca este endpoint.
const EndpointName = "OwnerEndpoint"

// RegisterRoutes publica las operaciones del endpoint en /connect/OwnerEndpoint/{method}.
// La política de acceso se declara acá; el Endpoint no la conoce.
func RegisterRoutes(r chi.Router, ep *Endpoint, policy middleware.Policy) {
	r.Route("/connect/"+EndpointName, func(er chi.Router) {
		er.Use(middleware.Access(policy))
		er.NotFound(func(w http.ResponseWriter, r *http.Request) {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrTypeEndpoint,
				"method '"+path.Base(r.URL.Path)+"' not found in "+EndpointName)
		})
		er.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Allow", http.MethodPost)
			middleware.WriteError(w, http.StatusMethodNotAllowed, middleware.ErrTypeEndpoint,
				"endpoint methods must be called with POST, got "+r.Method)
		})

		er.Post("/findByLastName", findByLastNameHandler(ep))
		er.Post("/findById", findByIDHandler(ep))
		er.Post("/save", saveHandler(ep))
	})
}

type findByLastNameParams struct {
	LastName string `json:"lastName"`
}

type findByIDParams struct {
	ID *int `json:"id"`
}

type saveParams struct {
	Owner *Owner `json:"owner"`
}

// findByLastNameHandler godoc
// @Summary Buscar owners por apellido
// @Description Devuelve todos los owners cuyo apellido es exactamente lastName (sin match parcial). Lista vacía si no hay coincidencias.
// @Tags OwnerEndpoint
// @Accept json
// @Produce json
// @Param payload body findByLastNameParams true "Parámetros"
// @Success 200 {array} Owner
// @Failure 400 {object} middleware.ErrorBody "json inválido"
// @Failure 401 {object} middleware.ErrorBody "endpoint sin acceso anónimo"
// @Failure 500 {object} middleware.ErrorBody "falla del store"
// @Router /connect/OwnerEndpoint/findByLastName [post]
func findByLastNameHandler(ep *Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p findByLastNameParams
		if !decodeParams(w, r, &p) {
			return
		}

		items, err := ep.FindByLastName(r.Context(), p.LastName)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if items == nil {
			items = []Owner{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// findByIDHandler godoc
// @Summary Buscar owner por id
// @Description Devuelve el owner o null si no existe (no es un error).
// @Tags OwnerEndpoint
// @Accept json
// @Produce json
// @Param payload body findByIDParams true "Parámetros"
// @Success 200 {object} Owner "owner o null"
// @Failure 400 {object} middleware.ErrorBody "json inválido / id ausente"
// @Failure 401 {object} middleware.ErrorBody "endpoint sin acceso anónimo"
// @Failure 500 {object} middleware.ErrorBody "falla del store"
// @Router /connect/OwnerEndpoint/findById [post]
func findByIDHandler(ep *Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p findByIDParams
		if !decodeParams(w, r, &p) {
			return
		}
		if p.ID == nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrTypeValidation, "parameter 'id' is required")
			return
		}

		o, err := ep.FindByID(r.Context(), *p.ID)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		// o == nil se serializa como null
		writeJSON(w, http.StatusOK, o)
	}
}

// saveHandler godoc
// @Summary Guardar owner
// @Description Inserta (sin id) o actualiza (con id) el owner y devuelve el id resultante. No hay validación de campos.
// @Tags OwnerEndpoint
// @Accept json
// @Produce json
// @Param payload body saveParams true "Parámetros"
// @Success 200 {integer} int "id del owner"
// @Failure 400 {object} middleware.ErrorBody "json inválido / owner ausente"
// @Failure 401 {object} middleware.ErrorBody "endpoint sin acceso anónimo"
// @Failure 500 {object} middleware.ErrorBody "falla del store"
// @Router /connect/OwnerEndpoint/save [post]
func saveHandler(ep *Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p saveParams
		if !decodeParams(w, r, &p) {
			return
		}
		if p.Owner == nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrTypeValidation, "parameter 'owner' is required")
			return
		}

		id, err := ep.Save(r.Context(), *p.Owner)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, id)
	}
}

// decodeParams acepta body vacío como {}. Escribe 400 y devuelve false si el JSON es inválido
// o trae algo después del objeto de parámetros.
func decodeParams(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		if err = dec.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = errors.New("unexpected data after parameters object")
		}
	}
	middleware.WriteError(w, http.StatusBadRequest, middleware.ErrTypeValidation, "invalid json: "+err.Error())
	return false
}

// writeStoreError propaga el mensaje del store tal cual.
func writeStoreError(w http.ResponseWriter, err error) {
	middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrTypeEndpoint, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
