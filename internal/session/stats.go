package session

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// Counters accumulate between stats samples.
type Counters struct {
	Frames      int64
	Iterations  int64
	Generations int64
	Commits     int64
}

// Stats is one sample taken by the stats task.
type Stats struct {
	FPS        float64
	IPS        float64
	Population int
	Generation int64
	Level      int
	// Paused is true whenever nothing advances, toggled or at rate zero.
	Paused     bool
	Uptime     time.Duration
}

// String renders the sample for the HUD and logs.
func (s Stats) String() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %s  pop %s  %.1f fps  %.1f ips  lod %d  %s  up %s",
		humanize.Comma(s.Generation),
		humanize.Comma(int64(s.Population)),
		s.FPS, s.IPS, s.Level, state,
		durafmt.Parse(s.Uptime.Truncate(time.Second)).LimitFirstN(2).Format(shortUnits),
	)
}

// sampler turns counter deltas into per-second rates.
type sampler struct {
	at   time.Time
	last Counters
}

func (p *sampler) sample(now time.Time, c Counters) (fps, ips float64) {
	if p.at.IsZero() {
		p.at, p.last = now, c
		return 0, 0
	}
	dt := now.Sub(p.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	fps = float64(c.Frames-p.last.Frames) / dt
	ips = float64(c.Iterations-p.last.Iterations) / dt
	p.at, p.last = now, c
	return fps, ips
}
