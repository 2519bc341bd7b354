package scenario

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golangdaddy/jaywalker/pkg/obstacle"
)

// LoadFile reads a custom scenario from a plain-text lane list. Each
// non-empty, non-comment line describes one lane, top to bottom:
//
//	<L|R> <vehicle> <spawn-interval>
//
// e.g. "R car 4s" or "L taxi 2500ms". Vehicles: car, fastcar, taxi,
// bicycle, ambulance. Lines starting with '#' are comments.
func LoadFile(path string) (Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer file.Close()

	sc := Scenario{
		Name:         strings.TrimSuffix(strings.TrimSuffix(path, ".street"), ".txt"),
		Description:  "Custom street loaded from " + path,
		StreetTopY:   100,
		StreetLength: streetLength,
		PlayerSize:   playerSize,
		PlayerStep:   playerStep,
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lane, err := parseLane(line)
		if err != nil {
			return Scenario{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sc.Lanes = append(sc.Lanes, lane)
	}
	if err := scanner.Err(); err != nil {
		return Scenario{}, fmt.Errorf("error reading scenario file: %w", err)
	}
	if len(sc.Lanes) == 0 {
		return Scenario{}, fmt.Errorf("scenario file %s defines no lanes", path)
	}

	return sc, nil
}

func parseLane(line string) (LaneSpec, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return LaneSpec{}, fmt.Errorf("want '<L|R> <vehicle> <interval>', got %q", line)
	}

	var dir obstacle.Direction
	switch strings.ToUpper(fields[0]) {
	case "L":
		dir = obstacle.Left
	case "R":
		dir = obstacle.Right
	default:
		return LaneSpec{}, fmt.Errorf("invalid direction %q", fields[0])
	}

	var vehicle VehicleSpec
	switch strings.ToLower(fields[1]) {
	case "car":
		vehicle = car(SpeedSlow, obstacle.AvoidBrake)
	case "fastcar":
		vehicle = car(SpeedFast, obstacle.AvoidNone)
	case "taxi":
		vehicle = taxi(SpeedMedium)
	case "bicycle":
		vehicle = bicycle()
	case "ambulance":
		vehicle = ambulance()
	default:
		return LaneSpec{}, fmt.Errorf("unknown vehicle %q", fields[1])
	}

	interval, err := time.ParseDuration(fields[2])
	if err != nil {
		return LaneSpec{}, fmt.Errorf("invalid spawn interval %q: %w", fields[2], err)
	}
	if interval <= 0 {
		return LaneSpec{}, fmt.Errorf("spawn interval must be positive, got %s", fields[2])
	}

	return LaneSpec{
		Direction: dir,
		Width:     laneWidth,
		Producers: []ProducerSpec{{Vehicle: vehicle, MaxFrequency: interval}},
	}, nil
}
