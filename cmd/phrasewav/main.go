// phrasewav generates a phrase and renders it to a WAVE file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chriskillpack/thursday"
	"github.com/chriskillpack/thursday/internal/perform"
	"github.com/chriskillpack/thursday/phrase"
	"github.com/chriskillpack/thursday/rng"
	"github.com/chriskillpack/thursday/wav"
)

const outputHz = 44100

func main() {
	log.SetFlags(0)
	log.SetPrefix("phrasewav: ")

	flagOut := flag.String("wav", "", "output WAVE filename")
	flagSeed := flag.Uint64("seed", 0, "rng seed, 0 picks one from entropy")
	flag.Parse()

	if *flagOut == "" {
		log.Fatal("missing -wav filename")
	}

	var src rng.Source
	if *flagSeed == 0 {
		src = rng.NewFromEntropy()
	} else {
		src = rng.NewDefault(*flagSeed)
	}

	ph := phrase.NewPhrase()
	ph.Fill(src, phrase.DefaultParameters())

	voices, total := perform.Build(ph, outputHz)
	if len(voices) == 0 {
		log.Fatal("generated phrase has no notes")
	}

	wavF, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer wavF.Close()

	wavW, err := wav.NewWriter(wavF, outputHz)
	if err != nil {
		log.Fatal(err)
	}
	defer wavW.Finish()

	fmt.Printf("bpm=%d key=%s scale=%s measures=%d samples=%d\n",
		ph.Bpm, ph.Key, ph.Scale.Name, ph.NumMeasures, total)

	const chunkFrames = 2048
	chunk := make([]thursday.StereoSample, chunkFrames)

	var rendered uint32
	for rendered < total {
		n := chunkFrames
		if remaining := total - rendered; uint32(n) > remaining {
			n = int(remaining)
		}
		buf := chunk[:n]
		for i := range buf {
			buf[i] = thursday.StereoSample{}
		}
		perform.FillStereoSamples(voices, buf)
		if err := wavW.WriteFrame(buf); err != nil {
			log.Fatal(err)
		}
		rendered += uint32(n)
	}
}
