package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ftl/wsprencode/wspr"
)

// Result is the encoded form of one configured station.
type Result struct {
	Callsign string `yaml:"callsign"`
	Locator  string `yaml:"locator"`
	Power    int    `yaml:"power"`
	Message  string `yaml:"message"`
	Symbols  string `yaml:"symbols"`
}

// encodeAll encodes the given stations in parallel. The results keep the order of the stations.
func encodeAll(stations []StationConfig) ([]Result, error) {
	results := make([]Result, len(stations))

	var g errgroup.Group
	for i, config := range stations {
		g.Go(func() error {
			station, err := config.Station()
			if err != nil {
				return fmt.Errorf("station #%d: %w", i+1, err)
			}
			if !wspr.ValidPower(config.Power) {
				log.Warn("power is not a standard WSPR level", "callsign", config.Callsign, "dBm", config.Power)
			}

			msg, err := station.Message()
			if err != nil {
				return fmt.Errorf("station #%d: %w", i+1, err)
			}
			transmission, err := station.Encode()
			if err != nil {
				return fmt.Errorf("station #%d: %w", i+1, err)
			}
			log.Debug("encoded", "callsign", station.Callsign(), "locator", station.Locator(), "dBm", station.DBm(), "message", msg)

			results[i] = Result{
				Callsign: strings.TrimSpace(station.Callsign()),
				Locator:  station.Locator(),
				Power:    int(station.DBm()),
				Message:  msg.String(),
				Symbols:  transmission.String(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func writeDigits(w io.Writer, results []Result, withMessage bool) error {
	for _, r := range results {
		var err error
		if withMessage {
			_, err = fmt.Fprintf(w, "%s %s %d [%s] %s\n", r.Callsign, r.Locator, r.Power, r.Message, r.Symbols)
		} else {
			_, err = fmt.Fprintf(w, "%s %s %d %s\n", r.Callsign, r.Locator, r.Power, r.Symbols)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, results []Result) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(results)
}
