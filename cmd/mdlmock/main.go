// Command mdlmock serves recorded web service responses over HTTP so clients can be developed and
// tested without a live site.
package main

import (
	"flag"
	"log"
	"moodle/internal/config"
	"moodle/internal/fixtures"
	"moodle/internal/server"

	"github.com/golang/glog"
)

func main() {
	configPath := flag.String("config", "mdlmock.yaml", "path to the YAML configuration file")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	store, err := fixtures.Load(cfg.FixturesDir)
	if err != nil {
		log.Fatalf("❌ Error loading fixtures: %v\n", err)
	}

	server.Start(store)
}
