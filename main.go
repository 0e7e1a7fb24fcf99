package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/newrelic/go-agent/v3/newrelic"
)

var (
	flagMode            = flag.String("mode", "convert", "Mode: convert, discover, compare or serve")
	flagPort            = flag.String("port", ":8080", "Service address (e.g. :8080)")
	flagNewRelicLicense = flag.String("newrelic-license", "", "NewRelic license")
	flagThreshold       = flag.Float64("threshold", 0.9, "Similarity needed for two names to match (compare mode)")
)

func main() {
	flag.Parse()
	var err error
	switch *flagMode {
	case "convert":
		err = convert(flag.Args(), os.Stdin, os.Stdout)
	case "discover":
		err = discover(os.Stdin, os.Stdout)
	case "compare":
		err = compare(flag.Args(), *flagThreshold, os.Stdout)
	case "serve":
		err = serve()
	default:
		err = fmt.Errorf("unknown mode %q", *flagMode)
	}
	if err != nil {
		log.Printf("%s failed: %v", *flagMode, err)
		os.Exit(1)
	}
}

func serve() error {
	newRelicApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName("asciize"),
		newrelic.ConfigLicense(*flagNewRelicLicense),
		newrelic.ConfigEnabled(*flagNewRelicLicense != ""),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		log.Printf("Can't initialize NewRelic, continuing without it: %v", err)
		newRelicApp = nil
	}

	handler := NewHandler(newRelicApp)
	log.Printf("Starting server on %s", *flagPort)
	err = http.ListenAndServe(*flagPort, handler.Mux())
	if errors.Is(err, http.ErrServerClosed) {
		log.Printf("server closed")
		return nil
	}
	return err
}
