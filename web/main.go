package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	earth := flag.String("earth", scene.DefaultEarthTexturePath, "Earth texture image (PNG or JPEG)")
	flag.Parse()

	webServer := server.NewServer(*port, *earth)

	log.Printf("Path Tracer Web Server")
	log.Printf("Stream a render with http://localhost:%d/api/render?scene=cornell-box", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
