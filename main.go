package main

import (
	"net/http"
	"os"

	"clementus360/taskflow/config"
	"clementus360/taskflow/middleware"
	"clementus360/taskflow/routes"
	"clementus360/taskflow/supabase"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	supabase.Init()

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("Server is running on port ", port)
	config.Logger.Fatal(http.ListenAndServe(":"+port, handler))
}
