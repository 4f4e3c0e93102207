/*
The wsprencode command prints the WSPR channel symbols for one or more stations.
*/
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func main() {
	var (
		callsign   = pflag.StringP("call", "c", "", "Callsign of the station")
		locator    = pflag.StringP("locator", "l", "", "Maidenhead locator (4, 6 or 8 characters)")
		power      = pflag.IntP("power", "p", 30, "Transmit power in dBm (0-60)")
		configFile = pflag.String("config", "", "YAML file with a list of stations")
		hex        = pflag.BoolP("hex", "x", false, "Print the packed message as hex bytes")
		format     = pflag.String("format", "digits", "Output format (digits, yaml)")
		verbose    = pflag.BoolP("verbose", "v", false, "Verbose logging")
		help       = pflag.BoolP("help", "h", false, "Display help text")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Encode a WSPR message into the 162 channel symbols.\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var stations []StationConfig
	switch {
	case *configFile != "":
		config, err := LoadConfig(*configFile)
		if err != nil {
			log.Fatal("cannot load configuration", "err", err)
		}
		stations = config.Stations
		log.Debug("configuration loaded", "file", *configFile, "stations", len(stations))
	case *callsign != "" && *locator != "":
		stations = []StationConfig{{Callsign: *callsign, Locator: *locator, Power: *power}}
	default:
		pflag.Usage()
		os.Exit(1)
	}

	results, err := encodeAll(stations)
	if err != nil {
		log.Fatal("cannot encode", "err", err)
	}

	switch *format {
	case "digits":
		err = writeDigits(os.Stdout, results, *hex)
	case "yaml":
		err = writeYAML(os.Stdout, results)
	default:
		log.Fatal("unknown output format", "format", *format)
	}
	if err != nil {
		log.Fatal("cannot write output", "err", err)
	}
}
