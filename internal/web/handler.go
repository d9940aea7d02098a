package web

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/bestiary/internal/armory"
	"github.com/louisbranch/bestiary/internal/encounter"
	"github.com/louisbranch/bestiary/internal/web/httpx"
	"github.com/louisbranch/bestiary/internal/web/templates"
)

// tracerName identifies spans emitted by the web handlers.
const tracerName = "github.com/louisbranch/bestiary/internal/web"

// SeedFunc produces the seed for one roll. Production callers pass
// random.NewSeed; tests substitute a fixed function to pin the outcome.
type SeedFunc func() (int64, error)

// rollResponse is the wire shape of a random enemy draw.
type rollResponse struct {
	EnemyAttack string `json:"enemy_attack"`
	WeaponUse   string `json:"weapon_use"`
}

// NewHandler builds the HTTP handler for the web server.
func NewHandler(factories []armory.Factory, seed SeedFunc) http.Handler {
	h := handlers{factories: factories, seed: seed}

	mux := http.NewServeMux()
	mux.Handle("/", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.home)))
	mux.Handle("/random_enemy", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.randomEnemy)))

	return httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic())
}

type handlers struct {
	factories []armory.Factory
	seed      SeedFunc
}

// home serves the demo page. The root pattern matches every unregistered
// path, so anything other than "/" itself is a 404.
func (h handlers) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	templ.Handler(templates.Home()).ServeHTTP(w, r)
}

// randomEnemy rolls one family and writes its description pair as JSON.
func (h handlers) randomEnemy(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer(tracerName).Start(r.Context(), "encounter.roll")
	defer span.End()

	seed, err := h.seed()
	if err != nil {
		log.Printf("generate roll seed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "seed generation failed")
		return
	}

	result, err := encounter.RollFrom(h.factories, encounter.RollRequest{Seed: seed})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	span.SetAttributes(attribute.String("bestiary.theme", result.Theme.String()))

	if err := httpx.WriteJSON(w, http.StatusOK, rollResponse{
		EnemyAttack: result.EnemyAttack,
		WeaponUse:   result.WeaponUse,
	}); err != nil {
		log.Printf("write roll response: %v", err)
	}
}

// writeJSONError logs encoding failures instead of surfacing them; the
// response status has already been committed by then.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	if err := httpx.WriteJSONError(w, status, message); err != nil {
		log.Printf("write error response: %v", err)
	}
}
