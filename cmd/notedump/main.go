// notedump generates a phrase and prints its structure and note data as
// plain text, for eyeballing what the builder produced.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chriskillpack/thursday/phrase"
	"github.com/chriskillpack/thursday/rng"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("notedump: ")

	flagSeed := flag.Uint64("seed", 0, "rng seed, 0 picks one from entropy")
	flag.Parse()

	var src rng.Source
	if *flagSeed == 0 {
		src = rng.NewFromEntropy()
	} else {
		src = rng.NewDefault(*flagSeed)
	}

	ph := phrase.NewPhrase()
	ph.Fill(src, phrase.DefaultParameters())

	fmt.Printf("bpm=%d keyKind=%s timeSig=%d/%s scale=%s measures=%d key=%s\n",
		ph.Bpm, ph.KeyKind, ph.TimeSignature.Numerator, ph.TimeSignature.Denominator,
		ph.Scale.Name, ph.NumMeasures, ph.Key)

	fmt.Print("chords:")
	for _, c := range ph.ChordProgression.Chords {
		fmt.Print(" ", c)
	}
	fmt.Println()

	dumpVoices("lead", ph.LeadVoices)
	dumpVoices("chorus", ph.ChorusVoices)
}

func dumpVoices(label string, voices []phrase.VoiceData) {
	for i, v := range voices {
		fmt.Printf("%s[%d]: tone=%v notes=%d\n", label, i, v.Voice, len(v.Rhythm))
		for _, hit := range v.Rhythm {
			fmt.Printf("    start=%-6d length=%d\n", hit.Start, hit.Length)
		}
	}
}
