// Package sound plays square-wave beeps for breakout events through the
// system speaker.
package sound

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultQueue  = 32
	defaultVolume = 0.3
	floorGain     = 0.01 // gain a beep decays to by its end
)

var openSpeaker = speaker.Init

// Note is one beep: a square wave at Freq starting Delay after the event.
type Note struct {
	Freq     float64
	Duration time.Duration
	Delay    time.Duration
}

// arpeggio spaces equal-length notes step apart.
func arpeggio(d, step time.Duration, freqs ...float64) []Note {
	notes := make([]Note, len(freqs))
	for i, f := range freqs {
		notes[i] = Note{Freq: f, Duration: d, Delay: time.Duration(i) * step}
	}
	return notes
}

// Notes returns the beeps for an event. Events without a sound return nil.
func Notes(ev breakout.Event) []Note {
	switch ev.Kind {
	case breakout.EventPaddleHit:
		// Pitch follows where the ball met the paddle
		return []Note{{Freq: 440 + ev.Offset*100, Duration: 50 * time.Millisecond}}
	case breakout.EventBrickHit:
		return []Note{{Freq: 200 + float64(ev.Points)*3, Duration: 80 * time.Millisecond}}
	case breakout.EventPowerUpCollected:
		return []Note{
			{Freq: 800, Duration: 100 * time.Millisecond},
			{Freq: 1000, Duration: 100 * time.Millisecond, Delay: 50 * time.Millisecond},
		}
	case breakout.EventBallLost:
		return []Note{
			{Freq: 200, Duration: 300 * time.Millisecond},
			{Freq: 150, Duration: 300 * time.Millisecond, Delay: 150 * time.Millisecond},
		}
	case breakout.EventLevelComplete:
		return arpeggio(150*time.Millisecond, 100*time.Millisecond, 523, 659, 784, 1047)
	case breakout.EventGameOver:
		return arpeggio(200*time.Millisecond, 150*time.Millisecond, 392, 330, 294, 247)
	case breakout.EventVictory:
		return arpeggio(150*time.Millisecond, 100*time.Millisecond, 523, 659, 784, 1047, 1319, 1568)
	}
	return nil
}

// tone is a square wave whose gain ramps exponentially from volume down
// to floorGain over its length.
type tone struct {
	freq   float64
	volume float64
	phase  float64
	pos    int
	length int
	rate   beep.SampleRate
}

func newTone(freq float64, d time.Duration, volume float64, rate beep.SampleRate) *tone {
	return &tone{freq: freq, volume: volume, length: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		val := -1.0
		if t.phase < 0.5 {
			val = 1.0
		}
		progress := float64(t.pos) / float64(t.length)
		gain := t.volume * math.Pow(floorGain/t.volume, progress)
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Streamer renders an event's beeps into one streamer, or nil when the
// event is silent. Volume outside (floorGain, 1] is clamped.
func Streamer(ev breakout.Event, volume float64, rate beep.SampleRate) beep.Streamer {
	notes := Notes(ev)
	if len(notes) == 0 {
		return nil
	}
	volume = min(max(volume, floorGain*2), 1)

	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		t := newTone(n.Freq, n.Duration, volume, rate)
		if n.Delay > 0 {
			voices = append(voices, beep.Seq(beep.Silence(rate.N(n.Delay)), t))
			continue
		}
		voices = append(voices, t)
	}
	if len(voices) == 1 {
		return voices[0]
	}
	return beep.Mix(voices...)
}

// Player is a breakout.EventSink that plays beeps on the speaker.
// Notify never blocks: events are queued and dropped when the queue is full.
type Player struct {
	events  chan breakout.Event
	done    chan struct{}
	mixer   *beep.Mixer
	volume  float64
	dropped atomic.Uint64
	wg      sync.WaitGroup
	once    sync.Once
	started bool
}

// NewPlayer creates a player with a queue of the given size.
// A non-positive size uses the default.
func NewPlayer(queue int) *Player {
	if queue <= 0 {
		queue = defaultQueue
	}
	return &Player{
		events: make(chan breakout.Event, queue),
		done:   make(chan struct{}),
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// SetVolume sets the beep volume in (0, 1]. Call before Start.
func (p *Player) SetVolume(v float64) {
	p.volume = v
}

// Start opens the speaker and begins consuming events.
func (p *Player) Start() error {
	if err := openSpeaker(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true

	p.wg.Add(1)
	go p.loop()
	return nil
}

func (p *Player) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case ev := <-p.events:
			s := Streamer(ev, p.volume, sampleRate)
			if s == nil {
				continue
			}
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

// Notify queues an event for playback.
func (p *Player) Notify(ev breakout.Event) {
	select {
	case p.events <- ev:
	default:
		p.dropped.Add(1)
	}
}

// Dropped reports how many events were discarded because the queue was full.
func (p *Player) Dropped() uint64 {
	return p.dropped.Load()
}

// Close stops playback. It is safe to call more than once.
func (p *Player) Close() {
	p.once.Do(func() {
		close(p.done)
		p.wg.Wait()
		if p.started {
			speaker.Lock()
			p.mixer.Clear()
			speaker.Unlock()
		}
	})
}
