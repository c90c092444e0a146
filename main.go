package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/bookingmx/cityconnect/citygraph"
	"github.com/bookingmx/cityconnect/handlers"
	"github.com/bookingmx/cityconnect/repository"
	"github.com/bookingmx/cityconnect/services"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	godotenv.Load()

	network, err := buildNetwork(os.Getenv("NETWORK_FILE"))
	if err != nil {
		log.Fatalf("could not build city network: %v", err)
	}
	log.Printf("city network ready: %d cities, %d connections",
		network.LocationCount(), network.ConnectionCount())

	reservationRepo := buildReservationRepository(os.Getenv("DATABASE_URL"))

	display := services.NewDisplayService(network)
	reservations := services.NewReservationService(reservationRepo)

	router := mux.NewRouter()
	router.Use(handlers.CORS)
	handlers.NewCityHandler(network, display).RegisterRoutes(router)
	handlers.NewReservationHandler(reservations).RegisterRoutes(router)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("server running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

// buildNetwork loads the network record file when configured and falls
// back to the built-in seed otherwise.
func buildNetwork(path string) (*citygraph.Graph, error) {
	if path != "" {
		log.Printf("loading city network from %s", path)
		return citygraph.LoadNetworkFromFile(path)
	}
	return seedNetwork()
}

// seedNetwork builds the default Mexican city network with
// great-circle distances as weights.
func seedNetwork() (*citygraph.Graph, error) {
	g := citygraph.NewGraph()
	cities := []struct {
		id, name, region string
		lat, lon         float64
	}{
		{"cdmx", "Mexico City", "CDMX", 19.4326, -99.1332},
		{"pue", "Puebla", "Puebla", 19.0414, -98.2063},
		{"gdl", "Guadalajara", "Jalisco", 20.6597, -103.3496},
		{"mty", "Monterrey", "Nuevo Leon", 25.6866, -100.3161},
	}
	for _, c := range cities {
		loc, err := citygraph.NewLocation(c.id, c.name, c.lat, c.lon, c.region)
		if err != nil {
			return nil, err
		}
		if err := g.InsertLocation(loc); err != nil {
			return nil, err
		}
	}
	pairs := [][2]string{
		{"cdmx", "pue"},
		{"cdmx", "gdl"},
		{"pue", "mty"},
		{"gdl", "mty"},
	}
	for _, p := range pairs {
		if err := g.ConnectByDistance(p[0], p[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildReservationRepository connects to PostgreSQL when DATABASE_URL
// is set and keeps reservations in memory otherwise.
func buildReservationRepository(databaseURL string) repository.ReservationRepository {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, keeping reservations in memory")
		return repository.NewMemoryReservationRepository()
	}
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	applyMigrations(db)
	return repository.NewPostgresReservationRepository(db)
}

// applyMigrations runs any SQL files under migrations/. Failures are
// logged, not fatal, so reruns against an up-to-date schema are fine.
func applyMigrations(db *sqlx.DB) {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		return
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Printf("could not read migration %s: %v", file, err)
			continue
		}
		if _, err := db.Exec(string(content)); err != nil {
			log.Printf("migration %s failed: %v", file, err)
			continue
		}
		log.Printf("migration %s applied", file)
	}
}
