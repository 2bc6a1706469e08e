package main

import (
	"log"
	"net/http"

	"finledger-server/src/api"
	"finledger-server/src/config"
	"finledger-server/src/db"
	sql "finledger-server/src/db/sql"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migrations failed: %v", err)
	}

	db.InitCache()

	// Router
	store := &sql.Store{Pool: pool}
	router := api.NewRouter(store)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
