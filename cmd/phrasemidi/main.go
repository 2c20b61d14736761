// phrasemidi generates a phrase and writes its first lead voice out as a
// standard MIDI file: a single note track holding at most one BarBuf's
// worth of ticks.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chriskillpack/thursday"
	"github.com/chriskillpack/thursday/midiexport"
	"github.com/chriskillpack/thursday/phrase"
	"github.com/chriskillpack/thursday/rng"
	"github.com/chriskillpack/thursday/scale"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("phrasemidi: ")

	flagOut := flag.String("mid", "", "output MIDI filename")
	flagSeed := flag.Uint64("seed", 0, "rng seed, 0 picks one from entropy")
	flag.Parse()

	if *flagOut == "" {
		log.Fatal("missing -mid filename")
	}

	var src rng.Source
	if *flagSeed == 0 {
		src = rng.NewFromEntropy()
	} else {
		src = rng.NewDefault(*flagSeed)
	}

	ph := phrase.NewPhrase()
	ph.Fill(src, phrase.DefaultParameters())

	if len(ph.LeadVoices) == 0 {
		log.Fatal("generated phrase has no lead voice")
	}
	lead := ph.LeadVoices[0]

	bar := barFromRhythm(lead.Rhythm, ph.Scale, ph.Key)

	if err := midiexport.WriteBarFile(*flagOut, bar, ph.Bpm, 0); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s: bpm=%d key=%s scale=%s notes=%d\n",
		*flagOut, ph.Bpm, ph.Key, ph.Scale.Name, bar.NumNotes())
}

// barFromRhythm lays the rhythm's hits into a single bar, truncating
// anything past PPQN_MAX: MIDI export is a quick-look tool, not a full
// multi-bar renderer.
func barFromRhythm(rhythm []phrase.EncRhythm, sc scale.Scale, key scale.Pitch) *thursday.BarBuf {
	bar := thursday.NewBarBuf()

	cursor := uint32(0)
	for i, hit := range rhythm {
		if hit.Start >= uint32(thursday.PPQNMax) {
			break
		}

		if hit.Start > cursor {
			if err := bar.PushRestSimple(thursday.LengthPPQNCount(uint16(hit.Start - cursor))); err != nil {
				break
			}
			cursor = hit.Start
		}

		degree := sc.Intervals[i%len(sc.Intervals)]
		pitch := key.Add(degree)
		noteTicks := hit.Length
		if cursor+noteTicks > uint32(thursday.PPQNMax) {
			noteTicks = uint32(thursday.PPQNMax) - cursor
		}
		if noteTicks == 0 {
			continue
		}
		if err := bar.PushNoteSimple(thursday.LengthPPQNCount(uint16(noteTicks)), pitch.Index(), 4); err != nil {
			break
		}
		cursor += noteTicks
	}
	return bar
}
