// playphrase generates a phrase and plays it live through portaudio, with a
// small interactive UI for muting and soloing voices while it plays.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/fatih/color"
	"github.com/gordonklaus/portaudio"

	"github.com/chriskillpack/thursday"
	"github.com/chriskillpack/thursday/internal/perform"
	"github.com/chriskillpack/thursday/phrase"
	"github.com/chriskillpack/thursday/rng"
)

var (
	flagHz   = flag.Int("hz", 44100, "output hz")
	flagSeed = flag.Uint64("seed", 0, "rng seed, 0 picks one from entropy")

	cyan   = color.New(color.FgCyan).SprintfFunc()
	green  = color.New(color.FgGreen).SprintfFunc()
	yellow = color.New(color.FgYellow).SprintfFunc()
)

const (
	escape     = "\x1b["
	hideCursor = escape + "?25l"
	showCursor = escape + "?25h"
)

// player drives live playback of a rendered phrase: the portaudio stream,
// the per-voice mute/solo UI state, and clean shutdown on Ctrl+C/Esc.
type player struct {
	ph     *phrase.Phrase
	voices []perform.Voice
	total  uint32

	stream *portaudio.Stream

	selected    int
	soloVoice   int
	playing     int32
	samplesDone uint32

	ctx            context.Context
	cancelFn       context.CancelFunc
	wg             sync.WaitGroup
	stopOnce       sync.Once
	terminated     bool
	keyboardDoneCh chan struct{}
}

func newPlayer(ph *phrase.Phrase, voices []perform.Voice, total uint32) *player {
	ctx, cancel := context.WithCancel(context.Background())
	return &player{
		ph:             ph,
		voices:         voices,
		total:          total,
		soloVoice:      -1,
		playing:        1,
		ctx:            ctx,
		cancelFn:       cancel,
		keyboardDoneCh: make(chan struct{}),
	}
}

func (p *player) run() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(*flagHz), portaudio.FramesPerBufferUnspecified, p.streamCallback)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	p.stream = stream
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	p.setupSignalHandlers()
	p.setupKeyboardHandlers()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)

	p.renderHeader()
	for {
		select {
		case <-p.ctx.Done():
			p.wg.Wait()
			return nil
		default:
		}
		if atomic.LoadUint32(&p.samplesDone) >= p.total {
			p.stop()
			p.wg.Wait()
			return nil
		}
	}
}

func (p *player) streamCallback(out []int16) {
	if atomic.LoadInt32(&p.playing) == 0 || atomic.LoadUint32(&p.samplesDone) >= p.total {
		for i := range out {
			out[i] = 0
		}
		return
	}

	frames := len(out) / 2
	buf := make([]thursday.StereoSample, frames)
	perform.FillStereoSamples(p.voices, buf)
	for i, s := range buf {
		out[2*i] = s.Left
		out[2*i+1] = s.Right
	}

	done := atomic.AddUint32(&p.samplesDone, uint32(frames))
	if done >= p.total {
		atomic.StoreInt32(&p.playing, 0)
	}
}

func (p *player) setupSignalHandlers() {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		select {
		case <-p.ctx.Done():
		case <-sigch:
			p.stop()
		}
	}()
}

func (p *player) setupKeyboardHandlers() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		keyboard.Listen(func(key keys.Key) (stop bool, err error) {
			if key.Code == keys.CtrlC || key.Code == keys.Escape {
				p.stop()
				return true, nil
			}
			p.handleKeyPress(key)
			return false, nil
		})
		close(p.keyboardDoneCh)
	}()
}

func (p *player) handleKeyPress(key keys.Key) {
	switch key.Code {
	case keys.Left:
		p.selected = max(p.selected-1, 0)
		p.renderHeader()
	case keys.Right:
		p.selected = min(p.selected+1, len(p.voices)-1)
		p.renderHeader()
	case keys.Space:
		var next int32
		if atomic.LoadInt32(&p.playing) == 0 {
			next = 1
		}
		atomic.StoreInt32(&p.playing, next)
		p.renderHeader()
	case keys.RuneKey:
		if len(key.Runes) == 0 || p.selected >= len(p.voices) {
			return
		}
		switch key.Runes[0] {
		case 'q':
			p.voices[p.selected].Muted = !p.voices[p.selected].Muted
		case 's':
			if p.soloVoice == p.selected {
				p.soloVoice = -1
				for i := range p.voices {
					p.voices[i].Muted = false
				}
			} else {
				p.soloVoice = p.selected
				for i := range p.voices {
					p.voices[i].Muted = i != p.selected
				}
			}
		}
		p.renderHeader()
	}
}

func (p *player) stop() {
	p.stopOnce.Do(func() {
		atomic.StoreInt32(&p.playing, 0)
		p.cancelFn()
		if p.stream != nil {
			p.stream.Stop()
			p.stream.Close()
		}
		if !p.terminated {
			portaudio.Terminate()
			p.terminated = true
		}
	})
}

func (p *player) renderHeader() {
	fmt.Print(escape + "2J" + escape + "H")
	fmt.Println(cyan("bpm=%d key=%s scale=%s measures=%d", p.ph.Bpm, p.ph.Key, p.ph.Scale.Name, p.ph.NumMeasures))
	for i, v := range p.voices {
		marker := "  "
		if i == p.selected {
			marker = green("> ")
		}
		status := ""
		if v.Muted {
			status = yellow("muted")
		}
		fmt.Printf("%s%-16s %s\n", marker, v.Label, status)
	}
	fmt.Println("left/right select, q mute, s solo, space pause, esc quit")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("playphrase: ")
	flag.Parse()

	var src rng.Source
	if *flagSeed == 0 {
		src = rng.NewFromEntropy()
	} else {
		src = rng.NewDefault(*flagSeed)
	}

	ph := phrase.NewPhrase()
	ph.Fill(src, phrase.DefaultParameters())

	voices, total := perform.Build(ph, uint32(*flagHz))
	if len(voices) == 0 {
		log.Fatal("generated phrase has no notes")
	}

	p := newPlayer(ph, voices, total)
	if err := p.run(); err != nil {
		log.Fatal(err)
	}
}
