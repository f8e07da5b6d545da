// Command atc2json decodes an ALIVE ECG recording to JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	atc "github.com/ecgtools/go-atc"
)

var (
	inPath  string
	outPath string
	summary bool
	version bool
)

func init() {
	flag.StringVar(&inPath, "in", "", "Input .atc file (plain or gzip-wrapped)")
	flag.StringVar(&outPath, "out", "", "Output JSON path (defaults to stdout)")
	flag.BoolVar(&summary, "summary", false, "Emit a short summary instead of the full record")
	flag.BoolVar(&version, "version", false, "Display version information")
}

const VERSION = "1.0.0"

type recordSummary struct {
	DateRecorded  string         `json:"dateRecorded"`
	RecordingUUID string         `json:"recordingUuid"`
	SampleRateHz  uint16         `json:"sampleRateHz"`
	Leads         map[string]int `json:"leadSampleCounts"`
	Ticks         int            `json:"ticks"`
}

func main() {
	flag.Parse()

	if version {
		fmt.Printf("atc2json version %s\n", VERSION)
		os.Exit(0)
	}
	if inPath == "" {
		fmt.Println("Error: input path is required, use -in")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(inPath)
	if err != nil {
		fmt.Printf("Error opening %s: %v\n", inPath, err)
		os.Exit(1)
	}
	defer f.Close()

	rec, err := atc.DecodeReader(f)
	if err != nil {
		fmt.Printf("Error decoding %s: %v\n", inPath, err)
		os.Exit(1)
	}

	var out any = rec
	if summary {
		s := recordSummary{
			DateRecorded:  rec.Info.DateRecorded,
			RecordingUUID: rec.Info.RecordingUUID,
			SampleRateHz:  rec.Format.SampleRateHz,
			Leads:         make(map[string]int, len(rec.Leads)),
		}
		for lead, samples := range rec.Leads {
			s.Leads[string(lead)] = len(samples)
		}
		if rec.Annotation != nil {
			s.Ticks = len(rec.Annotation.Ticks)
		}
		out = s
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	b = append(b, '\n')

	if outPath == "" {
		os.Stdout.Write(b)
		return
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		fmt.Printf("Error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", outPath)
}
